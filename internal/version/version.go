package version

import "fmt"

// These variables can be set at build time using ldflags.
var (
	Version = "dev"
	Commit  = ""
)

// String returns the full version string.
func String() string {
	if Commit == "" {
		return Version
	}
	// Truncate commit hash to 7 chars, or use full length if shorter
	commitShort := Commit
	if len(Commit) > 7 {
		commitShort = Commit[:7]
	}
	return fmt.Sprintf("%s (%s)", Version, commitShort)
}
