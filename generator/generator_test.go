package generator

import (
	"log/slog"
	"testing"
	"time"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock steps forward a fixed interval on every call, making elapsed
// times deterministic.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// byteSource fills every read with a single repeated byte.
type byteSource byte

func (s byteSource) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(s)
	}
	return len(p), nil
}

func newTestGenerator(t *testing.T, dir string, opts ...Option) (*Generator, vfs.FileSystem) {
	t.Helper()

	fs := memoryfs.New()
	require.NoError(t, fs.MkdirAll("/test_files", 0o755))

	clock := &fakeClock{
		now:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		step: time.Second,
	}
	opts = append([]Option{
		WithLogger(slog.New(slog.DiscardHandler)),
		WithTimeNow(clock.Now),
	}, opts...)

	g, err := New(fs, dir, opts...)
	require.NoError(t, err)

	return g, fs
}

func TestGenerateExactSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		size      int64
		chunkSize int64
	}{
		{name: "zero", size: 0, chunkSize: 16},
		{name: "negative_writes_nothing", size: -5, chunkSize: 16},
		{name: "single_partial_chunk", size: 10, chunkSize: 16},
		{name: "exact_chunk_boundary", size: 32, chunkSize: 16},
		{name: "final_partial_chunk", size: 33, chunkSize: 16},
		{name: "single_byte", size: 1, chunkSize: 16},
		{name: "default_chunk_size", size: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := []Option{}
			if tt.chunkSize > 0 {
				opts = append(opts, WithChunkSize(tt.chunkSize))
			}
			g, fs := newTestGenerator(t, "/test_files", opts...)

			res, err := g.Generate("out.bin", tt.size)
			require.NoError(t, err)

			assert.Equal(t, StateCompleted, res.State)
			assert.Equal(t, "/test_files/out.bin", res.Path)
			assert.Equal(t, max(tt.size, 0), res.BytesWritten)
			assert.Equal(t, time.Second, res.Elapsed)

			data, err := vfs.ReadFile(fs, res.Path)
			require.NoError(t, err)
			assert.Len(t, data, int(max(tt.size, 0)))
		})
	}
}

func TestGenerateSkipsExistingFile(t *testing.T) {
	t.Parallel()

	g, fs := newTestGenerator(t, "/test_files")

	orig := []byte("do not touch")
	err := vfs.WriteFile(fs, "/test_files/out.bin", orig, 0o644)
	require.NoError(t, err)

	// Even with a different requested size the existing file must be preserved.
	res, err := g.Generate("out.bin", 1000)
	require.NoError(t, err)

	assert.Equal(t, StateSkipped, res.State)
	assert.Zero(t, res.BytesWritten)

	data, err := vfs.ReadFile(fs, "/test_files/out.bin")
	require.NoError(t, err)
	assert.Equal(t, orig, data)
}

func TestGenerateProgress(t *testing.T) {
	t.Parallel()

	type call struct{ written, total int64 }
	var calls []call

	g, _ := newTestGenerator(t, "/test_files",
		WithChunkSize(8),
		WithProgress(func(written, total int64) {
			calls = append(calls, call{written, total})
		}),
	)

	res, err := g.Generate("out.bin", 20)
	require.NoError(t, err)
	require.Equal(t, StateCompleted, res.State)

	assert.Equal(t, []call{{8, 20}, {16, 20}, {20, 20}}, calls)
}

func TestGenerateContentFromSource(t *testing.T) {
	t.Parallel()

	g, fs := newTestGenerator(t, "/test_files",
		WithChunkSize(4), WithRandSource(byteSource(0xab)))

	res, err := g.Generate("out.bin", 10)
	require.NoError(t, err)
	require.Equal(t, StateCompleted, res.State)

	data, err := vfs.ReadFile(fs, "/test_files/out.bin")
	require.NoError(t, err)
	require.Len(t, data, 10)
	for _, b := range data {
		require.Equal(t, byte(0xab), b)
	}
}

func TestGenerateMissingOutputDir(t *testing.T) {
	t.Parallel()

	// The output directory is never created by the Generator.
	g, _ := newTestGenerator(t, "/missing")

	res, err := g.Generate("out.bin", 10)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed creating target file")
	assert.Equal(t, StateFailed, res.State)
}

func TestGenerateInvalidChunkSize(t *testing.T) {
	t.Parallel()

	fs := memoryfs.New()
	_, err := New(fs, "/test_files", WithChunkSize(0))
	assert.ErrorContains(t, err, "chunk size must be greater than 0")
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "not started", StateNotStarted.String())
	assert.Equal(t, "writing", StateWriting.String())
	assert.Equal(t, "skipped", StateSkipped.String())
	assert.Equal(t, "completed", StateCompleted.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", State(42).String())
}
