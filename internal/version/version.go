// Package version exposes the build version string.
package version

import "runtime/debug"

// version is overridden at build time:
//
//	go build -ldflags "-X github.com/ivorkchan/subtle/internal/version.version=v1.2.3"
var version = ""

// String returns the build version: the ldflags value when set, otherwise
// the module version recorded in build info, otherwise "dev".
func String() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
