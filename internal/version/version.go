// Package version holds build information injected at link time
package version

import "fmt"

// Set with -ldflags "-X github.com/arthur-debert/rxpipe/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Format renders the build information with the given layout. The layout
// takes Version, Commit and Date in that order.
func Format(layout string) string {
	return fmt.Sprintf(layout, Version, Commit, Date)
}
