// Package version exposes build metadata, overridable through ldflags.
package version

//nolint:gochecknoglobals // set at build time via -ldflags
var (
	name    = "evlog"
	version = "0.1.0"
	commit  = "unknown"
)

// Name returns the tool name.
func Name() string {
	return name
}

// Version returns the semantic version.
func Version() string {
	return version
}

// Commit returns the VCS commit the binary was built from.
func Commit() string {
	return commit
}
