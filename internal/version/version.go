// Package version exposes build metadata injected at link time:
//
//	go build -ldflags "-X git.home.luguber.info/inful/seogen/internal/version.Version=v1.2.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is the release version.
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders version, commit and build time. When ldflags were not set it
// falls back to the module version recorded by the Go toolchain.
func String() string {
	v := Version
	if v == "unknown" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	return fmt.Sprintf("seogen %s (commit %s, built %s)", v, GitCommit, BuildTime)
}
