// Package rerr defines the two error kinds the replay decoder ever raises:
// malformed or out-of-range bytes, and versions/features the decoder has
// not been taught to handle.
package rerr

import (
	"errors"
	"fmt"
)

// InvalidData is the sentinel matched by errors.Is for any byte-level
// inconsistency: short reads, range check failures, unknown enum wire
// values, unknown opcodes, malformed type properties, non-monotonic
// timestamps, misaligned cipher blocks, and so on.
var InvalidData = errors.New("invalid data")

// NotSupported is the sentinel matched by errors.Is for a version,
// container kind, or feature the decoder has not been told how to handle.
var NotSupported = errors.New("not supported")

// Error carries a capture site (typically "package.Function") alongside
// one of the two sentinel kinds, so a caller can report both what went
// wrong and exactly where the check fired.
type Error struct {
	kind error
	Site string
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (at %s)", e.kind, e.Msg, e.Site)
}

func (e *Error) Unwrap() error { return e.kind }

// Invalid builds an InvalidData error captured at site.
func Invalid(site, format string, args ...any) error {
	return &Error{kind: InvalidData, Site: site, Msg: fmt.Sprintf(format, args...)}
}

// NotSupportedf builds a NotSupported error captured at site.
func NotSupportedf(site, format string, args ...any) error {
	return &Error{kind: NotSupported, Site: site, Msg: fmt.Sprintf(format, args...)}
}

// IsInvalid reports whether err is (or wraps) InvalidData.
func IsInvalid(err error) bool { return errors.Is(err, InvalidData) }

// IsNotSupported reports whether err is (or wraps) NotSupported.
func IsNotSupported(err error) bool { return errors.Is(err, NotSupported) }
