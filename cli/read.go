package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"

	actx "go.hackfix.me/genfile/app/context"
	"go.hackfix.me/genfile/generator"
)

// Read reads a generated file back sequentially and reports throughput.
type Read struct {
	Filename string `arg:"" help:"Name of the file to read."`
}

// Run the read command.
func (c *Read) Run(appCtx *actx.Context) error {
	out := appCtx.Config.Output
	opts := []generator.Option{
		generator.WithLogger(appCtx.Logger),
		generator.WithTimeNow(appCtx.TimeNow),
	}
	if out.ChunkSize.Valid {
		opts = append(opts, generator.WithChunkSize(out.ChunkSize.V))
	}

	gen, err := generator.New(appCtx.FS, out.Dir.V, opts...)
	if err != nil {
		return err
	}

	res, err := gen.Read(c.Filename)
	if err != nil {
		return err
	}

	throughput := "n/a"
	if secs := res.Elapsed.Seconds(); secs > 0 {
		throughput = humanize.IBytes(uint64(float64(res.BytesRead)/secs)) + "/s"
	}
	fmt.Fprintf(appCtx.Stdout, "Read %s (%s) in %s (%s)\n",
		c.Filename, humanize.IBytes(uint64(res.BytesRead)), res.Elapsed, throughput)

	return nil
}
