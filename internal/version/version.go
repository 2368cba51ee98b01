package version

import "fmt"

var (
	// Version is the semantic version of the build, overridden via ldflags.
	Version = "0.1.0"
	// Commit is the git SHA the binary was built from (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full returns a human-readable version string with commit and build time.
func Full() string {
	return fmt.Sprintf("chainkit-mutate %s, commit: %s, built at: %s", Version, Commit, BuildTime)
}
