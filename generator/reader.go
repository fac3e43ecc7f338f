package generator

import (
	"errors"
	"io"
	"path/filepath"
	"time"

	aerrors "go.hackfix.me/genfile/app/errors"
)

// ReadResult describes a completed read benchmark run.
type ReadResult struct {
	Path      string
	BytesRead int64
	Elapsed   time.Duration
}

// Read sequentially reads a previously generated file in chunks, measuring
// the elapsed wall-clock time. The data itself is discarded; only the byte
// count is reported.
func (g *Generator) Read(filename string) (ReadResult, error) {
	res := ReadResult{Path: filepath.Join(g.dir, filename)}

	start := g.timeNow()

	f, err := g.fs.Open(res.Path)
	if err != nil {
		return res, aerrors.NewWithCause("failed opening target file", err,
			"path", res.Path)
	}
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, g.chunkSize)
	for {
		n, rerr := f.Read(buf)
		res.BytesRead += int64(n)
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return res, aerrors.NewWithCause("failed reading target file", rerr,
				"path", res.Path)
		}
	}

	res.Elapsed = g.timeNow().Sub(start)
	g.logger.Debug("read completed", "path", res.Path,
		"bytes", res.BytesRead, "elapsed", res.Elapsed)

	return res, nil
}
