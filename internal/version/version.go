package version

import "fmt"

// Set at build time with -ldflags "-X".
var (
	Version   = "0.1.0"
	GitCommit = ""
)

// HumanVersion returns the version with the commit appended when known.
func HumanVersion() string {
	if GitCommit == "" {
		return fmt.Sprintf("v%s", Version)
	}
	return fmt.Sprintf("v%s (%s)", Version, GitCommit)
}
