// Package version provides build version information for SDK clients.
//
// Version is set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/sdkpipe/sdkpipe/version.Version=1.2.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time. It falls back to VCS metadata when built
// from a module checkout.
var Version = "dev"

// String returns the version, including the short commit hash when the
// build carries VCS metadata.
func String() string {
	commit, dirty := vcsInfo()
	if commit == "" {
		return Version
	}
	if dirty {
		return fmt.Sprintf("%s-%s-dirty", Version, commit)
	}
	return fmt.Sprintf("%s-%s", Version, commit)
}

// UserAgent returns the default User-Agent value for outbound requests.
func UserAgent() string {
	return "sdkpipe/" + String()
}

func vcsInfo() (commit string, dirty bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
			if len(commit) > 7 {
				commit = commit[:7]
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	return commit, dirty
}
