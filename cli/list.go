package cli

import (
	"cmp"
	"os"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/mandelsoft/vfs/pkg/vfs"

	actx "go.hackfix.me/genfile/app/context"
	aerrors "go.hackfix.me/genfile/app/errors"
)

// List displays the files in the output directory.
type List struct{}

// Run the list command.
func (c *List) Run(appCtx *actx.Context) error {
	dir := appCtx.Config.Output.Dir.V
	entries, err := vfs.ReadDir(appCtx.FS, dir)
	if err != nil {
		return aerrors.NewWithCause("failed reading output directory", err,
			"dir", dir)
	}

	files := make([]os.FileInfo, 0, len(entries))
	for _, fi := range entries {
		if !fi.IsDir() {
			files = append(files, fi)
		}
	}
	if len(files) == 0 {
		return nil
	}
	slices.SortFunc(files, func(a, b os.FileInfo) int {
		return cmp.Compare(a.Name(), b.Name())
	})

	data := make([][]string, len(files))
	for i, fi := range files {
		data[i] = []string{
			fi.Name(),
			humanize.IBytes(uint64(fi.Size())),
			humanize.RelTime(fi.ModTime(), appCtx.TimeNow(), "ago", "from now"),
		}
	}

	err = renderTable([]string{"Name", "Size", "Modified"}, data, appCtx.Stdout)
	if err != nil {
		return aerrors.NewWithCause("failed rendering file table", err)
	}

	return nil
}
