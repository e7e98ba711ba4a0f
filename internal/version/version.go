package version

// Version information defaults. The real values are injected via
// ldflags in cmd/dockergen and copied into the cli package.
var (
	// Version is the release version.
	Version = "dev"
	// GitCommit is the git commit SHA the binary was built from.
	GitCommit = "unknown"
	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)
