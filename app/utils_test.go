package app

import (
	"bytes"
	"time"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
)

var timeNow = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func timeNowFn() time.Time {
	return timeNow
}

type testApp struct {
	*App
	fs             vfs.FileSystem
	stdout, stderr *bytes.Buffer
}

// newTestApp creates an App backed by an in-memory filesystem with the
// default output directory already in place, since genfile never creates it.
func newTestApp() (*testApp, error) {
	fs := memoryfs.New()
	if err := fs.MkdirAll("/test_files", 0o755); err != nil {
		return nil, err
	}

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	app, err := New("genfile", "/config.json",
		WithTimeNow(timeNowFn),
		WithFDs(&bytes.Buffer{}, stdout, stderr),
		WithFS(fs),
		WithLogger(false, false),
	)
	if err != nil {
		return nil, err
	}

	return &testApp{App: app, fs: fs, stdout: stdout, stderr: stderr}, nil
}

func (ta *testApp) Run(args ...string) error {
	return ta.App.Run(args)
}

func (ta *testApp) writeConfig(data string) error {
	return vfs.WriteFile(ta.fs, "/config.json", []byte(data), 0o644)
}

func (ta *testApp) fileSize(path string) (int64, bool) {
	fi, err := ta.fs.Stat(path)
	if err != nil {
		return 0, false
	}
	return fi.Size(), true
}
