package grammar

import (
	"github.com/terorie/uriparse/charset"
	"github.com/terorie/uriparse/pct"
)

// Delim consumes exactly one byte equal to b (spec §4.3.3).
type Delim struct {
	Byte byte
	Name string
}

func (d Delim) Parse(c *Cursor) (byte, error) {
	b, ok := c.Peek()
	if !ok || b != d.Byte {
		return 0, mismatch(d.name(), c.Pos)
	}
	c.Pos++
	return b, nil
}

func (d Delim) name() string {
	if d.Name != "" {
		return d.Name
	}
	return "delim"
}

// DelimSet consumes exactly one byte that is a member of Set.
type DelimSet struct {
	Set  charset.Set
	Name string
}

func (d DelimSet) Parse(c *Cursor) (byte, error) {
	b, ok := c.Peek()
	if !ok || !d.Set.Contains(b) {
		return 0, mismatch(d.name(), c.Pos)
	}
	c.Pos++
	return b, nil
}

func (d DelimSet) name() string {
	if d.Name != "" {
		return d.Name
	}
	return "delim-set"
}

// Token consumes a maximal run of bytes from Set. It fails with Mismatch if
// the run is shorter than Min or longer than Max. Max <= 0 means unbounded
// (spec §4.3.3).
type Token struct {
	Set  charset.Set
	Min  int
	Max  int
	Name string
}

func (t Token) Parse(c *Cursor) (string, error) {
	start := c.Pos
	end := charset.FindIfNot(c.Input, start, t.Set)
	n := end - start
	if n < t.Min {
		return "", mismatch(t.name(), start)
	}
	if t.Max > 0 && n > t.Max {
		return "", mismatch(t.name(), start)
	}
	c.Pos = end
	return c.Input[start:end], nil
}

func (t Token) name() string {
	if t.Name != "" {
		return t.Name
	}
	return "token"
}

// PctRun consumes a maximal run of bytes from Set, additionally passing
// through well-formed %HH escapes regardless of Set membership (spec
// §4.3.3, §4.2). This is the combinator every RFC 3986 production that
// allows pct-encoded octets — userinfo, reg-name, path segments, query,
// fragment — is built from; it never fails (an empty run is a valid
// match), same as Token with Min 0.
type PctRun struct {
	Set  charset.Set
	Name string
}

func (t PctRun) Parse(c *Cursor) (string, error) {
	start := c.Pos
	end := pct.ScanAllowed(c.Input, start, t.Set)
	c.Pos = end
	return c.Input[start:end], nil
}

func (t PctRun) name() string {
	if t.Name != "" {
		return t.Name
	}
	return "pct-run"
}

// Optional wraps a Rule so that a Mismatch never fails: it returns the
// parsed value and true, or the zero value and false. The cursor rewinds to
// its entry position on a Mismatch; a Syntax error still propagates (spec
// §4.3.3 — optional relays fatal errors, it only absorbs Mismatch).
func Optional[T any](r Rule[T]) RuleFunc[OptionalValue[T]] {
	return func(c *Cursor) (OptionalValue[T], error) {
		start := c.Pos
		v, err := r.Parse(c)
		if err == nil {
			return OptionalValue[T]{Value: v, Present: true}, nil
		}
		var pe *ParseError
		if asParseError(err, &pe) && pe.Kind == Mismatch {
			c.Pos = start
			return OptionalValue[T]{}, nil
		}
		return OptionalValue[T]{}, err
	}
}

// OptionalValue is the value produced by Optional: Present distinguishes an
// absent match from a present-but-zero-value match.
type OptionalValue[T any] struct {
	Value   T
	Present bool
}

func asParseError(err error, out **ParseError) bool {
	pe, ok := err.(*ParseError)
	if ok {
		*out = pe
	}
	return ok
}

// Squelch parses with r but discards its value, useful inside a sequence
// built by hand where only the consumed span matters.
func Squelch[T any](r Rule[T]) RuleFunc[struct{}] {
	return func(c *Cursor) (struct{}, error) {
		_, err := r.Parse(c)
		return struct{}{}, err
	}
}

// Variant tries each rule in order and returns the first that matches. A
// Mismatch tries the next alternative; a Syntax error is fatal and aborts
// the whole Variant immediately (spec §4.3.3).
func Variant[T any](name string, rules ...Rule[T]) RuleFunc[T] {
	return func(c *Cursor) (T, error) {
		start := c.Pos
		var zero T
		for _, r := range rules {
			c.Pos = start
			v, err := r.Parse(c)
			if err == nil {
				return v, nil
			}
			var pe *ParseError
			if asParseError(err, &pe) && pe.Kind == Mismatch {
				continue
			}
			return zero, err
		}
		c.Pos = start
		return zero, mismatch(name, start)
	}
}

// Tuple2 parses r1 then r2 in sequence, rewinding entirely on failure (spec
// §4.3.3 "tuple").
func Tuple2[A, B any](r1 Rule[A], r2 Rule[B]) RuleFunc[struct {
	A A
	B B
}] {
	type pair = struct {
		A A
		B B
	}
	return func(c *Cursor) (pair, error) {
		start := c.Pos
		a, err := r1.Parse(c)
		if err != nil {
			c.Pos = start
			return pair{}, err
		}
		b, err := r2.Parse(c)
		if err != nil {
			c.Pos = start
			return pair{}, err
		}
		return pair{A: a, B: b}, nil
	}
}

// Tuple3 parses r1, r2, r3 in sequence, rewinding entirely on failure.
func Tuple3[A, B, D any](r1 Rule[A], r2 Rule[B], r3 Rule[D]) RuleFunc[struct {
	A A
	B B
	D D
}] {
	type triple = struct {
		A A
		B B
		D D
	}
	return func(c *Cursor) (triple, error) {
		start := c.Pos
		a, err := r1.Parse(c)
		if err != nil {
			c.Pos = start
			return triple{}, err
		}
		b, err := r2.Parse(c)
		if err != nil {
			c.Pos = start
			return triple{}, err
		}
		d, err := r3.Parse(c)
		if err != nil {
			c.Pos = start
			return triple{}, err
		}
		return triple{A: a, B: b, D: d}, nil
	}
}
