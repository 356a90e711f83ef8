// Package version holds build information injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/philipparndt/geomodel/version.Version=v1.2.0"
package version

import "fmt"

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with commit and build date. Development
// builds only report "dev".
func GetFullVersion() string {
	if Version == "dev" {
		return "dev"
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, shortCommit(GitCommit), BuildDate)
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
