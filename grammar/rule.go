// Package grammar implements the composable parsing-combinator toolkit that
// the rfc3986 package's ABNF productions are built from (spec §4.3). It is
// the Go analogue of boost.url's grammar/bnf headers (see original_source/
// include/boost/url/grammar and bnf).
package grammar

import "fmt"

// Kind is the error taxonomy of spec.md §4.3.2 / §7.
type Kind int

const (
	// Mismatch means the rule does not apply at the current position; a
	// caller composing alternatives may try the next one.
	Mismatch Kind = iota
	// EndOfRange is the range-rule terminator sentinel. It never escapes
	// package grammar.
	EndOfRange
	// Syntax means the rule committed to a production that then failed;
	// callers must not retry with an alternative.
	Syntax
)

func (k Kind) String() string {
	switch k {
	case Mismatch:
		return "mismatch"
	case EndOfRange:
		return "end_of_range"
	case Syntax:
		return "syntax"
	default:
		return "unknown"
	}
}

// ParseError reports a failed parse, with enough context to diagnose it:
// which rule failed, the taxonomy kind, and the byte offset into the
// original input where the failure was detected.
type ParseError struct {
	Rule   string
	Kind   Kind
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s at offset %d: %v", e.Rule, e.Kind, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: %s at offset %d", e.Rule, e.Kind, e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Cursor is the iterator a Rule advances. It is a byte offset into an
// immutable input string, kept separate from the string itself so that
// rules can be composed without copying the input.
type Cursor struct {
	Input string
	Pos   int
}

// Done reports whether the cursor has reached the end of input.
func (c *Cursor) Done() bool { return c.Pos >= len(c.Input) }

// Peek returns the byte at the cursor without advancing, and false at end of
// input.
func (c *Cursor) Peek() (byte, bool) {
	if c.Done() {
		return 0, false
	}
	return c.Input[c.Pos], true
}

// Rest returns the unconsumed suffix of the input.
func (c *Cursor) Rest() string { return c.Input[c.Pos:] }

// Rule is the protocol every grammar primitive implements: parse(it, end) ->
// Result<T> from spec §4.3.1, expressed as a method taking and mutating a
// *Cursor. On success the cursor advances past the consumed prefix and value
// is the parsed value. On failure the returned error is a *ParseError and the
// cursor's post-state is documented per rule (most rewind to the position at
// call time).
type Rule[T any] interface {
	Parse(c *Cursor) (T, error)
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc[T any] func(c *Cursor) (T, error)

// Parse implements Rule.
func (f RuleFunc[T]) Parse(c *Cursor) (T, error) { return f(c) }

// mismatch is a convenience constructor for the common rewind-and-fail path.
func mismatch(rule string, pos int) error {
	return &ParseError{Rule: rule, Kind: Mismatch, Offset: pos}
}

func syntaxErr(rule string, pos int, err error) error {
	return &ParseError{Rule: rule, Kind: Syntax, Offset: pos, Err: err}
}
