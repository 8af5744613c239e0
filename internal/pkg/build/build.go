// Package build provides information about the built binary.
// The values are set at build time via -ldflags.
package build

var (
	BuildVersion string = "dev"
	BuildDate    string = "-"
	GitCommit    string = "-"
)
