// Package version reports the pinview build.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/pinview/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/pinview/internal/version.Commit=abc1234"
//
// Anything left empty is filled from the module build info, then from
// "dev" placeholders.
var (
	// Version is the release tag
	Version = ""
	// Commit is the short git hash, with "-dirty" for modified trees
	Commit = ""
)

const shortHashLen = 7

func init() {
	if Version == "" || Commit == "" {
		fillFromBuildInfo(readVCS())
	}
	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// vcsInfo holds the vcs.* build settings the go tool embeds.
type vcsInfo struct {
	revision string
	modified bool
	time     string
}

func readVCS() vcsInfo {
	var v vcsInfo
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			v.revision = s.Value
		case "vcs.modified":
			v.modified = s.Value == "true"
		case "vcs.time":
			v.time = s.Value
		}
	}
	return v
}

func fillFromBuildInfo(v vcsInfo) {
	if Commit == "" && v.revision != "" {
		Commit = shortHash(v.revision)
		if v.modified {
			Commit += "-dirty"
		}
	}
	// Build info carries no tags, so date the dev build by its commit
	if Version == "" && v.time != "" {
		if t, err := time.Parse(time.RFC3339, v.time); err == nil {
			Version = "dev-" + t.Format("20060102")
		}
	}
}

func shortHash(rev string) string {
	if len(rev) > shortHashLen {
		return rev[:shortHashLen]
	}
	return rev
}

// IsDev reports whether this is an untagged build.
func IsDev() bool {
	return strings.HasPrefix(Version, "dev-")
}

// Full returns the version with its commit.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
