package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// versionPattern accepts one to three dot-separated numeric components.
var versionPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+){0,2}$`)

// Version represents a project version. Whatever shape the manifest
// declared, the parsed value always carries all three components; missing
// minor/patch default to 0.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a version string of the form
// "major[.minor[.patch]]" where every component is numeric.
func ParseVersion(s string) (*Version, error) {
	s = strings.TrimSpace(s)

	if !versionPattern.MatchString(s) {
		return nil, fmt.Errorf("invalid version format: %q (expected major[.minor[.patch]])", s)
	}

	parts := strings.Split(s, ".")
	components := [3]int{}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid version component %q: %w", part, err)
		}
		components[i] = n
	}

	return &Version{
		Major: components[0],
		Minor: components[1],
		Patch: components[2],
	}, nil
}

// String returns the fully expanded three-component form.
func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// SOVersion returns the derived two-component "major.minor" form used for
// shared-object style versioning. It is consistent with String by
// construction.
func (v *Version) SOVersion() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare compares two versions.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v *Version) Compare(other *Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}

	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}

	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}

	return 0
}
