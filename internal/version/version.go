// Package version holds the release string reported by --version.
package version

// Version is overridden at build time with -ldflags "-X refinspect/internal/version.Version=...".
var Version = "0.3.0"
