// Package versioning derives release versions from previously published tags.
package versioning

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lomakinroman97/release-orchestrator-server/internal/entities"
)

// Initial is the version used when there is nothing to increment.
const Initial = "1.0.0"

var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// Version is a parsed major.minor.patch triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse reads a strict major.minor.patch string, ignoring one leading "v".
func Parse(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(strings.TrimPrefix(s, "v"))
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", entities.ErrInvalidVersion, s)
	}

	parts := make([]int, 3)
	for i := range parts {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %v", entities.ErrInvalidVersion, s, err)
		}
		parts[i] = n
	}
	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}

// NextVersion returns the version following lastTag. Only the patch
// component is incremented; an empty or unparsable tag starts at Initial.
func NextVersion(lastTag string) string {
	return BumpPatch(lastTag)
}

// BumpMajor returns (major+1).0.0, or Initial for unparsable input or when
// the component cannot be incremented.
func BumpMajor(version string) string {
	v, err := Parse(version)
	if err != nil {
		return Initial
	}
	next, ok := increment(v.Major)
	if !ok {
		return Initial
	}
	return Version{Major: next}.String()
}

// BumpMinor returns major.(minor+1).0, or Initial for unparsable input.
func BumpMinor(version string) string {
	v, err := Parse(version)
	if err != nil {
		return Initial
	}
	next, ok := increment(v.Minor)
	if !ok {
		return Initial
	}
	return Version{Major: v.Major, Minor: next}.String()
}

// BumpPatch returns major.minor.(patch+1), or Initial for unparsable input.
func BumpPatch(version string) string {
	v, err := Parse(version)
	if err != nil {
		return Initial
	}
	next, ok := increment(v.Patch)
	if !ok {
		return Initial
	}
	return Version{Major: v.Major, Minor: v.Minor, Patch: next}.String()
}

// increment reports false when n+1 would overflow.
func increment(n int) (int, bool) {
	if n == math.MaxInt {
		return 0, false
	}
	return n + 1, true
}
