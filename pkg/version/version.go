// Package version reports which build of incl is running.
package version

import (
	"fmt"
	"runtime"
)

// Set by the linker, e.g.
//
//	go build -ldflags "-X github.com/Natali-13/cpp-preprocessor/pkg/version.Version=v0.3.0 -X github.com/Natali-13/cpp-preprocessor/pkg/version.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// AppName is the name the binary reports in logs and version output.
const AppName = "incl"

// Info describes a build of incl and the toolchain and target it was built for.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
	Platform  string // GOOS/GOARCH
}

// Get collects the linker-provided values and the running toolchain.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats i as printed by "incl version":
//
//	incl version v0.3.0 (commit: 1a2b3c4) built at 2026-01-05T10:00:00Z with go1.23.1 on linux/amd64
func (i Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s) built at %s with %s on %s",
		AppName, i.Version, i.Commit, i.BuildTime, i.GoVersion, i.Platform)
}
