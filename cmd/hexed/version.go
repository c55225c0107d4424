package main

import "runtime/debug"

// version is set at build time via -ldflags "-X main.version=...".
var version = ""

// getVersion returns the ldflags version, then the module version from
// the build info, then "(devel)".
func getVersion() string {
	if version != "" {
		return version
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		if buildInfo.Main.Version != "" {
			return buildInfo.Main.Version
		}
	}
	return "(devel)"
}
