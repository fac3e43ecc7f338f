package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"go.hackfix.me/genfile/app"
	aerrors "go.hackfix.me/genfile/app/errors"
)

func main() {
	stdout := colorable.NewColorable(os.Stdout)
	a, err := app.New("genfile",
		filepath.Join(xdg.ConfigHome, "genfile", "config.json"),
		app.WithFDs(
			os.Stdin,
			stdout,
			colorable.NewColorable(os.Stderr),
		),
		app.WithFS(osfs.New()),
		app.WithLogger(
			isatty.IsTerminal(os.Stdout.Fd()),
			isatty.IsTerminal(os.Stderr.Fd()),
		),
		app.WithTimeNow(time.Now),
	)
	if err != nil {
		aerrors.Print(stdout, err)
		os.Exit(1)
	}
	if err = a.Run(os.Args[1:]); err != nil {
		aerrors.Print(stdout, err)
		os.Exit(1)
	}
}
