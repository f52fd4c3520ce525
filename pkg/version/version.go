// Package version exposes the calckit build version.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Build metadata, set with -ldflags "-X".
//
//nolint:gochecknoglobals // Populated by the linker.
var (
	version   = "0.1.0"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of the binary.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// String returns the version line printed by --version.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, gitCommit, buildDate)
}

// Compatible reports whether a file written by version other can be read by
// this binary: other must parse and must not have a greater major version.
func Compatible(other string) (bool, error) {
	theirs, err := semver.NewVersion(other)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", other, err)
	}
	ours, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("parsing binary version %q: %w", version, err)
	}
	return theirs.Major() <= ours.Major(), nil
}
