package grammar

// ErasedRule is a type-erased Rule, used where Range needs a homogeneous
// container of rules whose element type varies by call site (spec §4.3.3,
// §9 "type erasure"). Implementations typically close over a concrete
// Rule[T] and box its result as any.
type ErasedRule interface {
	// ParseErased behaves like Rule.Parse but returns its value as any.
	ParseErased(c *Cursor) (any, error)
}

// erasedFunc adapts any Rule[T] to ErasedRule without an explicit wrapper
// type per T. This is the "small-buffer optimization" of spec §4.3.4 reduced
// to its Go equivalent: the closure captures r by value (a small struct, in
// the common case) so no heap box beyond the interface's own word pair is
// needed for primitive rules; only rules with large captured state spill to
// a heap allocation, same as before erasure.
type erasedFunc func(c *Cursor) (any, error)

func (f erasedFunc) ParseErased(c *Cursor) (any, error) { return f(c) }

// Erase wraps a Rule[T] as an ErasedRule.
func Erase[T any](r Rule[T]) ErasedRule {
	return erasedFunc(func(c *Cursor) (any, error) {
		return r.Parse(c)
	})
}

// Range is the non-owning, lazily-iterating value produced by parsing
// zero-or-more elements out of an input slice (spec §4.3.3 "range",
// §4.3.4 "range value"). It is safely copyable as long as the underlying
// input string outlives it.
type Range struct {
	input string
	first ErasedRule // element rule for the first element, if distinct
	next  ErasedRule // element rule for subsequent elements
	min   int
	max   int
	end   int // byte offset into input where matching stopped
}

// NewRange validates that input contains between min and max elements as
// parsed by elem (used for both the first and subsequent elements), and
// returns a Range over it. max <= 0 means unbounded.
func NewRange(input string, elem ErasedRule, min, max int) (Range, error) {
	return NewRangeFirst(input, elem, elem, min, max)
}

// NewRangeFirst is the two-rule variant of NewRange, where the first
// element parses differently from subsequent ones (spec §4.3.3, used e.g.
// for a path whose first segment rule differs from later segments).
func NewRangeFirst(input string, first, next ErasedRule, min, max int) (Range, error) {
	r := Range{input: input, first: first, next: next, min: min, max: max}
	n := 0
	c := &Cursor{Input: input}
	for !c.Done() {
		rule := next
		if n == 0 {
			rule = first
		}
		if _, err := rule.ParseErased(c); err != nil {
			var pe *ParseError
			if asParseError(err, &pe) && pe.Kind == Mismatch {
				break
			}
			return Range{}, err
		}
		n++
		if max > 0 && n > max {
			return Range{}, mismatch("range", c.Pos)
		}
	}
	if n < min {
		return Range{}, mismatch("range", c.Pos)
	}
	r.end = c.Pos
	return r, nil
}

// End returns the byte offset into Input() where the range stopped
// matching — the length a caller should treat as consumed by the whole
// repeated production (spec §4.3.4's range value, extended with the span
// fact a caller needs to confirm the rest of the input is something else).
func (r Range) End() int { return r.end }

// Iterate calls visit once per element in textual order, stopping early if
// visit returns false. Each call re-parses lazily from the cursor's current
// position; the range itself owns no per-element storage.
func (r Range) Iterate(visit func(v any) bool) error {
	c := &Cursor{Input: r.input}
	n := 0
	for !c.Done() {
		rule := r.next
		if n == 0 {
			rule = r.first
		}
		v, err := rule.ParseErased(c)
		if err != nil {
			var pe *ParseError
			if asParseError(err, &pe) && pe.Kind == Mismatch {
				return nil
			}
			return err
		}
		n++
		if !visit(v) {
			return nil
		}
	}
	return nil
}

// Count returns the number of elements in the range, re-parsing to count
// them (ranges do not cache their length).
func (r Range) Count() int {
	n := 0
	_ = r.Iterate(func(any) bool { n++; return true })
	return n
}

// Input returns the slice the range was parsed from.
func (r Range) Input() string { return r.input }
