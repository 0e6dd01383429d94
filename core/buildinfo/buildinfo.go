// Package buildinfo carries the version stamp logged at startup.
package buildinfo

// Release builds overwrite these via -ldflags, e.g.
//
//	-X 'github.com/sushihelp/supportbot/core/buildinfo.Version=v0.3.0'
//	-X 'github.com/sushihelp/supportbot/core/buildinfo.Commit=abcdef0'
//	-X 'github.com/sushihelp/supportbot/core/buildinfo.Date=2026-09-01T12:00:00Z'
//
// The defaults identify a local development build.
var (
	// Version is the release tag of the binary.
	Version = "dev"
	// Commit is the VCS revision the binary was built from.
	Commit = "local"
	// Date is the build timestamp in RFC3339.
	Date = ""
)
