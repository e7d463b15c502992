// Package buildinfo carries the version stamped into neuroplot binaries.
//
// Set with ldflags:
//
//	go build -ldflags "-X github.com/neuroviz/neuroplot/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/neuroviz/neuroplot/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/neuroplot
package buildinfo

import (
	"fmt"
	"strings"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the multi-line block printed by "neuroplot version".
func String() string {
	return fmt.Sprintf("version: %s\ncommit:  %s\nbuilt:   %s", Version, Commit, Date)
}

// Template is the cobra --version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s)\n", Version, shortCommit())
}

// ServerHeader identifies the figure server in HTTP responses.
func ServerHeader() string {
	return "neuroplot/" + strings.TrimPrefix(Version, "v")
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
