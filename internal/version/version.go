// Package version reports the version of the swipetabs binary.
package version

import "runtime/debug"

// Version is set at build time via -ldflags.
var Version = "unknown"

func init() {
	if v := installedVersion(); v != "" {
		Version = v
	}
}

// installedVersion returns the module version embedded in binaries built with
// `go install <module>@<version>`. Binaries built with `go build` report no
// version.
func installedVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	if v := info.Main.Version; v != "(devel)" {
		return v
	}
	return ""
}
