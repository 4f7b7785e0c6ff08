// Package version reports what build of tailtint is running.
//
// Release builds stamp Version, Commit and Date with ldflags. Binaries from
// "go install github.com/jmylchreest/tailtint/cmd/tailtint@vX.Y.Z" carry no
// ldflags, so any field left at its default is filled from the module and
// VCS data the Go toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

const unknown = "unknown"

var (
	// Version is the release version, e.g. via
	// -ldflags "-X github.com/jmylchreest/tailtint/internal/version.Version=v1.2.3".
	Version = "dev"

	// Commit is the git revision of the build.
	Commit = unknown

	// Date is the build or commit time in RFC3339 format.
	Date = unknown

	// GoVersion is the Go version used to build the binary.
	GoVersion = runtime.Version()
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info holds all version information for the application.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Dirty     bool   `json:"dirty,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the version information, preferring ldflags values over
// embedded build data.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := readBuildInfo(); ok {
		info = withBuildInfo(info, bi)
	}
	return info
}

// withBuildInfo fills defaulted fields of info from bi.
func withBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	stampedCommit := info.Commit != unknown
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if !stampedCommit {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == unknown {
				if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
					info.Date = t.UTC().Format(time.RFC3339)
				}
			}
		case "vcs.modified":
			info.Dirty = !stampedCommit && s.Value == "true"
		}
	}
	return info
}

// String returns a human-readable version string.
func String() string {
	info := GetInfo()
	if info.Commit == unknown {
		return fmt.Sprintf("tailtint version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	commit := shortCommit(info.Commit)
	if info.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("tailtint version %s (commit: %s, built: %s, %s, %s)",
		info.Version, commit, info.Date, info.GoVersion, info.Platform)
}

// Short returns the version alone, for --version.
func Short() string {
	return GetInfo().Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
