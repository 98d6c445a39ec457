// Package version exposes the pdftab build identity.
package version

// Build-time variables set by ldflags, e.g.:
//
//	go build -ldflags "-X github.com/pdftab/pdftab/internal/version.Version=v1.0.0"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info returns the version, git commit and build date.
func Info() (string, string, string) {
	return Version, GitCommit, BuildDate
}