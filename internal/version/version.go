// Package version contains build version information.
package version

// Version is the current application version.
var Version = "1.0.0"

// GitCommit is the git commit hash.
// This value is set at build time via ldflags.
var GitCommit = "unknown"

// BuildDate is the build date.
// This value is set at build time via ldflags.
var BuildDate = "unknown"

// String returns the full version line shown by --version.
func String() string {
	return Version + " (commit " + GitCommit + ", built " + BuildDate + ")"
}
