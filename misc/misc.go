// Package misc provides program identification helpers.
package misc

import (
	"runtime/debug"
	"strings"
)

// Set at build time with -ldflags "-X celc/misc.version=... -X celc/misc.gitHash=...".
var (
	appName = "celc"
	version = ""
	gitHash = ""
)

// GetAppName returns program name used in logs, reports and usage text.
func GetAppName() string {
	return appName
}

// GetVersion returns program version - either set at build time or derived
// from module build information.
func GetVersion() string {
	if len(version) > 0 {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "development"
}

// GetGitHash returns git revision recorded in build information, shortened
// to 12 characters.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				if len(s.Value) > 12 {
					return s.Value[:12]
				}
				return s.Value
			}
		}
	}
	return strings.Repeat("0", 12)
}
