// Package version exposes build metadata injected at link time.
package version

import "fmt"

// Populated via -ldflags, e.g.
//
//	go build -ldflags "-X funcflow/pkg/version.Version=v1.0.0"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the build metadata as a single human-readable line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
