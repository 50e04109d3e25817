package phpscoper

import "runtime"

var (
	// version is set via ldflags during build.
	// For development builds, this will show "dev"
	version = "dev"

	// commit is the git short hash, set via ldflags during build.
	commit = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or 'unknown'.
func Commit() string {
	return commit
}

// GoVersion returns the Go runtime version used to build the binary.
func GoVersion() string {
	return runtime.Version()
}
