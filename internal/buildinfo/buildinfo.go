// Package buildinfo centralises build metadata for the statline
// binary. main() forwards the linker-injected values here so other
// packages can query them.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Set stores the build metadata received from linker-injected
// variables.
func Set(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Version returns the build version string.
func Version() string { return version }

// Commit returns the build commit hash.
func Commit() string { return commit }

// Date returns the build date string.
func Date() string { return date }

// Enrich fills a missing commit hash from runtime/debug build info,
// for binaries installed with go install rather than the release
// pipeline.
func Enrich() {
	if commit != "none" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			commit = setting.Value
		}
	}
}

// String returns a one-line version description for --version output.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}
