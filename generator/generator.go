// Package generator creates files filled with random data, used as synthetic
// test inputs for I/O and storage benchmarking.
package generator

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mandelsoft/vfs/pkg/vfs"

	aerrors "go.hackfix.me/genfile/app/errors"
)

// DefaultChunkSize is the number of bytes written per I/O operation, unless
// overridden with WithChunkSize.
const DefaultChunkSize int64 = 1 << 20

// ProgressFunc is an observer invoked after each written chunk with the
// total number of bytes written so far and the requested size.
type ProgressFunc func(written, total int64)

// Generator creates files of arbitrary sizes filled with random data under a
// fixed output directory. The directory must already exist; the Generator
// never creates it.
type Generator struct {
	fs        vfs.FileSystem
	dir       string
	chunkSize int64
	randSrc   io.Reader
	progress  ProgressFunc
	timeNow   func() time.Time
	logger    *slog.Logger
}

// New creates a Generator that writes to dir on the given filesystem.
func New(fsys vfs.FileSystem, dir string, opts ...Option) (*Generator, error) {
	g := &Generator{fs: fsys, dir: dir}
	for _, opt := range append(DefaultOptions(), opts...) {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Result describes the outcome of a single generation run.
type Result struct {
	State        State
	Path         string
	BytesWritten int64
	Elapsed      time.Duration
}

// Generate ensures that a file named filename containing size random bytes
// exists in the output directory. If the file already exists, it is left
// untouched and the result state is StateSkipped. A size of zero or less
// produces an empty file. On failure a truncated file may remain on disk; no
// cleanup is attempted.
func (g *Generator) Generate(filename string, size int64) (Result, error) {
	res := Result{State: StateNotStarted, Path: filepath.Join(g.dir, filename)}

	_, err := g.fs.Stat(res.Path)
	switch {
	case err == nil:
		res.State = StateSkipped
		g.logger.Debug("target file exists", "path", res.Path)
		return res, nil
	case !vfs.IsErrNotExist(err):
		res.State = StateFailed
		return res, aerrors.NewWithCause("failed checking target file", err,
			"path", res.Path)
	}

	start := g.timeNow()
	res.State = StateWriting

	f, err := g.fs.OpenFile(res.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		res.State = StateFailed
		return res, aerrors.NewWithCause("failed creating target file", err,
			"path", res.Path)
	}
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, g.chunkSize)
	for res.BytesWritten < size {
		n := g.chunkSize
		if rem := size - res.BytesWritten; rem < n {
			n = rem
		}

		chunk := buf[:n]
		if _, err = io.ReadFull(g.randSrc, chunk); err != nil {
			res.State = StateFailed
			return res, aerrors.NewWithCause("failed reading random data", err,
				"path", res.Path)
		}
		if _, err = f.Write(chunk); err != nil {
			res.State = StateFailed
			return res, aerrors.NewWithCause("failed writing target file", err,
				"path", res.Path)
		}

		res.BytesWritten += n
		if g.progress != nil {
			g.progress(res.BytesWritten, size)
		}
	}

	if err = f.Close(); err != nil {
		res.State = StateFailed
		return res, aerrors.NewWithCause("failed closing target file", err,
			"path", res.Path)
	}

	res.State = StateCompleted
	res.Elapsed = g.timeNow().Sub(start)
	g.logger.Debug("generation completed", "path", res.Path,
		"bytes", res.BytesWritten, "elapsed", res.Elapsed)

	return res, nil
}
