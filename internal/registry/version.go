package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is an API revision. The zero Version is used by extension entry
// points, which are not tied to a core revision.
type Version struct {
	Major int
	Minor int
}

// ParseVersion accepts "1.2" or the feature macro form "CL_VERSION_1_2".
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	sep := "."
	if rest, ok := strings.CutPrefix(raw, "CL_VERSION_"); ok {
		raw, sep = rest, "_"
	}

	major, minor, ok := strings.Cut(raw, sep)
	if !ok {
		return Version{}, fmt.Errorf("invalid version %q", s)
	}
	maj, err := strconv.Atoi(major)
	if err != nil || maj < 0 {
		return Version{}, fmt.Errorf("invalid major version in %q", s)
	}
	mnr, err := strconv.Atoi(minor)
	if err != nil || mnr < 0 {
		return Version{}, fmt.Errorf("invalid minor version in %q", s)
	}
	return Version{Major: maj, Minor: mnr}, nil
}

// MustParseVersion is ParseVersion for constants known to be valid.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns -1, 0 or +1.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major != o.Major:
		if v.Major < o.Major {
			return -1
		}
		return 1
	case v.Minor != o.Minor:
		if v.Minor < o.Minor {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether v predates o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// IsZero reports whether v is the unversioned (extension) revision.
func (v Version) IsZero() bool {
	return v == Version{}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Macro returns the feature macro name, e.g. CL_VERSION_2_1.
func (v Version) Macro() string {
	return fmt.Sprintf("CL_VERSION_%d_%d", v.Major, v.Minor)
}
