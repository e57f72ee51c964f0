// Package version reports the build version of the running binary.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Current is set at build time with
// -ldflags "-X github.com/lrsproject/lrs/internal/shared/version.Current=v1.2.3".
var Current = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether version is a valid semver release without a
// prerelease suffix. "dev" and other local builds are not releases.
func IsRelease(version string) bool {
	v := Normalize(version)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}

// String returns the canonical form of Current, or Current unchanged when
// it is not semver.
func String() string {
	v := Normalize(Current)
	if !semver.IsValid(v) {
		return Current
	}
	return semver.Canonical(v)
}
