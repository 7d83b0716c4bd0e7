// Package version exposes the application version string.
package version

// Version is the current application version.
// Overridable at build time: -ldflags "-X .../internal/version.Version=x.y.z"
var Version = "1.3.0"
