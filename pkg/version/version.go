// Package version reports build information for pagebar.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags.
var (
	Version   string
	BuildDate string
)

// Info describes the running binary.
type Info struct {
	Version   string
	Revision  string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get collects build information from ldflags and the embedded build info.
func Get() Info {
	info := Info{
		Version:   Version,
		Revision:  "unknown",
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	dirty := false

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value[:min(len(s.Value), 7)]
		case "vcs.modified":
			dirty = s.Value == "true"
		case "vcs.time":
			if info.BuildDate == "" {
				info.BuildDate = s.Value
			}
		}
	}

	if dirty {
		info.Revision += "-dirty"
	}

	return info
}

// Short returns the version, falling back to the VCS revision.
func (i Info) Short() string {
	if i.Version != "" {
		return i.Version
	}

	return i.Revision
}

func (i Info) String() string {
	s := fmt.Sprintf("%s (%s, %s)", i.Short(), i.GoVersion, i.Platform)
	if i.BuildDate != "" {
		s += " built " + i.BuildDate
	}

	return s
}
