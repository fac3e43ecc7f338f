package context

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// VersionInfo contains the application version metadata embedded in the
// binary at build time.
type VersionInfo struct {
	Semantic string
	Revision string
	Dirty    bool
}

// GetVersion extracts the version metadata from the build information.
func GetVersion() (*VersionInfo, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, errors.New("failed reading build information")
	}

	v := &VersionInfo{Semantic: bi.Main.Version}
	if v.Semantic == "" || v.Semantic == "(devel)" {
		v.Semantic = "devel"
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			v.Revision = s.Value
		case "vcs.modified":
			v.Dirty = s.Value == "true"
		}
	}

	return v, nil
}

// String implements fmt.Stringer.
func (v *VersionInfo) String() string {
	if v.Revision == "" {
		return v.Semantic
	}

	rev := v.Revision
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if v.Dirty {
		rev += "-dirty"
	}

	return fmt.Sprintf("%s (%s)", v.Semantic, rev)
}
