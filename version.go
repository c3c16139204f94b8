package headline

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the library version, a bare SemVer string with no
// leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionIsSemver reports whether the embedded version is valid SemVer.
func VersionIsSemver() bool {
	return semverRE.MatchString(Version())
}
