package finfo

import (
	"fmt"
	"runtime"
)

// Version is the semantic version of finfo.
const Version = "0.1.0"

// Variables populated at build time via -ldflags:
//
//	go build -ldflags="-X github.com/simonhull/finfo.gitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/simonhull/finfo.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/finfo
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)

// VersionInfo contains build details.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// GetVersionInfo returns the version and build details of this binary.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// String returns e.g. "0.1.0 (commit abc1234, built 2025-01-02T15:04:05Z, go1.26.0)".
func (v VersionInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s)", v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
}
