package version

import (
	"fmt"
	"runtime"
)

// Set through -ldflags "-X github.com/openshift/org-registry/pkg/version.gitVersion=..."
var (
	gitVersion = "v0.0.0-unknown"
	gitCommit  = ""
	buildDate  = "1970-01-01T00:00:00Z"
)

// Info describes the running binary
type Info struct {
	GitVersion string
	GitCommit  string
	BuildDate  string
	GoVersion  string
}

func (i Info) String() string {
	return fmt.Sprintf("%s (commit %q, built %s, %s)", i.GitVersion, i.GitCommit, i.BuildDate, i.GoVersion)
}

// Get returns the build information
func Get() Info {
	return Info{
		GitVersion: gitVersion,
		GitCommit:  gitCommit,
		BuildDate:  buildDate,
		GoVersion:  runtime.Version(),
	}
}
