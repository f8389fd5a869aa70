// Package buildinfo carries the version stamped into the campaignclean
// binary with -ldflags "-X".
package buildinfo

import "fmt"

// Overridden at link time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String is the version line shown by --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
