// Package version provides build-time version information.
package version

// These variables are set at build time using -ldflags
var (
	// Version is the semantic version
	Version = "0.1.0"

	// BuildTime is the UTC time when the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// Info is the build information as one value.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	BuildTime string `json:"buildTime" yaml:"buildTime"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{Version: Version, BuildTime: BuildTime, GitCommit: GitCommit}
}

func (i Info) String() string {
	return i.Version + " (commit " + i.GitCommit + ", built " + i.BuildTime + ")"
}
