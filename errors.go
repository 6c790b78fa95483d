package uriparse

import (
	"errors"
	"fmt"

	"github.com/terorie/uriparse/pct"
	"github.com/terorie/uriparse/rfc3986"
)

// Sentinel errors, one per error kind in spec.md §7, wrapped by SyntaxError
// where the kind arises from parsing. A few kinds are defined where the
// grammar actually detects them (pct, rfc3986) and re-exported here under
// their spec names, rather than duplicated as distinct values, so callers
// can match on a single uriparse.Err* identity regardless of which internal
// package produced it.
var (
	ErrInvalidURI       = errors.New("uriparse: invalid URI-reference")
	ErrTooLarge         = errors.New("uriparse: input exceeds configured size limit")
	ErrNoScheme         = errors.New("uriparse: reference has no scheme")
	ErrNoAuthority      = errors.New("uriparse: reference has no authority")
	ErrNoHost           = errors.New("uriparse: reference has no host")
	ErrNotAnAbsoluteURI = errors.New("uriparse: base reference is not absolute")

	// ErrLength is spec §7's "length" kind: an operation's input or result
	// exceeds a configured bound. ParseWithLimits/Parse report it as
	// ErrTooLarge specifically; ErrLength is the general-purpose alias other
	// length-bounded operations can return.
	ErrLength = ErrTooLarge

	ErrIllegalReserved = pct.ErrIllegalReserved
	ErrIllegalNull     = pct.ErrIllegalNull
	ErrIncompletePct   = pct.ErrIncompletePct
	ErrBadPctDigit     = pct.ErrBadPctDigit
	ErrNoSpace         = pct.ErrNoSpace
	ErrPortOverflow    = rfc3986.ErrPortOverflow

	// ErrMismatch, ErrSyntax, ErrInvalid and ErrNotFound round out spec §7's
	// taxonomy for kinds this module currently reports through a more
	// specific sentinel above, a SyntaxError-wrapped grammar error, or a Go
	// "(value, ok)" return (segment/param/capture lookups) rather than an
	// error value. They are exported so a caller that only has the abstract
	// kind name can still errors.Is against something. ErrOutOfRange is
	// returned directly by the index-taking SegmentsRef and ParamsRef
	// methods when the index is out of range.
	ErrMismatch   = errors.New("uriparse: value does not match the expected component")
	ErrSyntax     = errors.New("uriparse: malformed syntax")
	ErrInvalid    = errors.New("uriparse: invalid argument")
	ErrNotFound   = errors.New("uriparse: not found")
	ErrOutOfRange = errors.New("uriparse: index out of range")
)

// SyntaxError wraps an underlying grammar error with the operation and
// input that produced it (spec §7), mirroring the teacher's fasturl.Error
// (url / op / error) triple.
type SyntaxError struct {
	Op    string
	Input string
	Err   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("uriparse: %s %q: %v", e.Op, e.Input, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
