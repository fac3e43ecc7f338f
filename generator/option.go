package generator

import (
	"crypto/rand"
	"errors"
	"io"
	"log/slog"
	"time"
)

// Option is a function that allows configuring the Generator.
type Option func(*Generator) error

// WithChunkSize sets the number of bytes written per I/O operation.
func WithChunkSize(size int64) Option {
	return func(g *Generator) error {
		if size <= 0 {
			return errors.New("chunk size must be greater than 0")
		}
		g.chunkSize = size
		return nil
	}
}

// WithLogger sets the logger used by the Generator.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		g.logger = logger.With("component", "generator")
		return nil
	}
}

// WithProgress sets an observer invoked after every written chunk with the
// total number of bytes written so far and the requested size.
func WithProgress(fn ProgressFunc) Option {
	return func(g *Generator) error {
		g.progress = fn
		return nil
	}
}

// WithRandSource sets the source the file content is drawn from.
func WithRandSource(r io.Reader) Option {
	return func(g *Generator) error {
		g.randSrc = r
		return nil
	}
}

// WithTimeNow sets the function used to retrieve the current system time.
func WithTimeNow(timeNowFn func() time.Time) Option {
	return func(g *Generator) error {
		g.timeNow = timeNowFn
		return nil
	}
}

// DefaultOptions returns the default Generator options.
func DefaultOptions() []Option {
	return []Option{
		WithChunkSize(DefaultChunkSize),
		WithLogger(slog.Default()),
		WithRandSource(rand.Reader),
		WithTimeNow(time.Now),
	}
}
