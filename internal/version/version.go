package version

import "fmt"

var (
	// Version is the semantic version of riskctl. Overridden at build time.
	Version = "dev"
	// Commit is the git commit hash. Overridden at build time.
	Commit = "unknown"
	// BuildDate is the build timestamp. Overridden at build time.
	BuildDate = "unknown"
)

// String formats the build information for display.
func String() string {
	return fmt.Sprintf("riskctl %s (commit %s, built %s)", Version, Commit, BuildDate)
}
