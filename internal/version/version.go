// Package version holds the build version, overridable with
// -ldflags "-X kofamscan/internal/version.Version=...".
package version

// Version of the kofam-report tools.
var Version = "0.3.0"
