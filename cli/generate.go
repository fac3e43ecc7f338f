package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"

	actx "go.hackfix.me/genfile/app/context"
	"go.hackfix.me/genfile/generator"
	"go.hackfix.me/genfile/xsize"
)

// Generate creates a file of the given size filled with random data in the
// output directory. If the file already exists, it is left untouched.
type Generate struct {
	Filename string `arg:"" help:"Name of the file to create."`
	Size     string `arg:"" help:"Size of the file, e.g. '1MB', '2.5GB', or a plain number of bytes."`
}

// Run the generate command.
func (c *Generate) Run(appCtx *actx.Context) error {
	size, err := xsize.Parse(c.Size)
	if err != nil {
		return err
	}

	out := appCtx.Config.Output
	opts := []generator.Option{
		generator.WithLogger(appCtx.Logger),
		generator.WithTimeNow(appCtx.TimeNow),
	}
	if out.ChunkSize.Valid {
		opts = append(opts, generator.WithChunkSize(out.ChunkSize.V))
	}

	threshold := xsize.GB
	if out.ProgressThreshold.Valid {
		threshold = out.ProgressThreshold.V
	}
	withProgress := size > threshold
	if withProgress {
		opts = append(opts, generator.WithProgress(func(written, total int64) {
			fmt.Fprintf(appCtx.Stdout, "\rProgress: %.1f%%",
				float64(written)/float64(total)*100)
		}))
	}

	gen, err := generator.New(appCtx.FS, out.Dir.V, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(appCtx.Stdout, "Generating %s (%s)...\n",
		c.Filename, humanize.IBytes(uint64(max(size, 0))))

	res, err := gen.Generate(c.Filename, size)
	if err != nil {
		return err
	}

	switch res.State {
	case generator.StateSkipped:
		fmt.Fprintf(appCtx.Stdout, "%s already exists, skipping\n", c.Filename)
	case generator.StateCompleted:
		if withProgress {
			// Terminate the progress line.
			fmt.Fprintln(appCtx.Stdout)
		}
		fmt.Fprintf(appCtx.Stdout, "Completed %s in %s\n", c.Filename, res.Elapsed)
		fmt.Fprintf(appCtx.Stdout, "Successfully created %s\n", c.Filename)
	}

	return nil
}
