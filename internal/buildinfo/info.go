// Package buildinfo carries version metadata injected at link time:
//
//	go build -ldflags "-X github.com/cratchit-dev/cratchit/internal/buildinfo.Version=v0.1.0"
package buildinfo

var (
	// Version is the release tag.
	Version = "dev"
	// Commit is the source revision.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
