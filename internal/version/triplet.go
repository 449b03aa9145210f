// Package version computes the protocol/feature flag sets and translation
// tables that every other component gates its behaviour on, given a
// (major, minor, preview) client version triplet.
package version

import "fmt"

// Triplet identifies a client build. Preview distinguishes pre-release
// builds that share a major.minor with a public release.
type Triplet struct {
	Major, Minor, Preview int
}

// Less reports whether t sorts before other, comparing Major, then Minor,
// then Preview in that order.
func (t Triplet) Less(other Triplet) bool {
	if t.Major != other.Major {
		return t.Major < other.Major
	}
	if t.Minor != other.Minor {
		return t.Minor < other.Minor
	}
	return t.Preview < other.Preview
}

// AtLeast reports whether t is the same as or newer than the given
// major.minor[.preview].
func (t Triplet) AtLeast(major, minor int, preview ...int) bool {
	p := 0
	if len(preview) > 0 {
		p = preview[0]
	}
	other := Triplet{major, minor, p}
	return !t.Less(other)
}

func (t Triplet) String() string {
	if t.Preview > 0 {
		return fmt.Sprintf("%d.%d.%d", t.Major, t.Minor, t.Preview)
	}
	return fmt.Sprintf("%d.%d", t.Major, t.Minor)
}
