package pct

import "github.com/terorie/uriparse/charset"

// DecodedString is a "validated encoded string" (spec §3.2): a byte slice
// known to be well-formed percent-encoding, together with its cached decoded
// length, so that repeated size queries after construction are O(1) and the
// decoded form can be produced lazily without re-validating. This is the Go
// analogue of boost.url's pct_string_view / decode_view (see SPEC_FULL.md §3).
type DecodedString struct {
	encoded     string
	permitted   charset.Set
	opts        DecodeOpts
	decodedLen  int
	initialized bool
}

// NewDecodedString validates s against permitted/opts and returns a
// DecodedString with its decoded length precomputed.
func NewDecodedString(s string, permitted charset.Set, opts DecodeOpts) (DecodedString, error) {
	n, err := DecodedSize(s, permitted, opts)
	if err != nil {
		return DecodedString{}, err
	}
	return DecodedString{encoded: s, permitted: permitted, opts: opts, decodedLen: n, initialized: true}, nil
}

// Encoded returns the original, still-encoded bytes.
func (d DecodedString) Encoded() string { return d.encoded }

// Len returns the number of bytes the decoded form would occupy, in O(1).
func (d DecodedString) Len() int { return d.decodedLen }

// Decode materializes the decoded string. Callers that only need the length
// should prefer Len to avoid the allocation.
func (d DecodedString) Decode() string {
	if !d.initialized || !containsEscapeOrPlus(d.encoded, d.opts) {
		return d.encoded
	}
	dest := make([]byte, d.decodedLen)
	DecodeUnchecked(dest, d.encoded, d.opts)
	return string(dest)
}

func containsEscapeOrPlus(s string, opts DecodeOpts) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '%' || (s[i] == '+' && opts.PlusToSpace) {
			return true
		}
	}
	return false
}

// At decodes and returns the single byte at decoded offset i without
// materializing the full decoded string. It walks the encoded form once;
// callers iterating the whole view should use Decode instead.
func (d DecodedString) At(i int) (byte, bool) {
	if i < 0 || i >= d.decodedLen {
		return 0, false
	}
	pos := 0
	for p := 0; p < len(d.encoded); {
		var c byte
		var adv int
		switch {
		case d.encoded[p] == '%':
			c = byte(charset.HexValue(d.encoded[p+1])<<4 | charset.HexValue(d.encoded[p+2]))
			adv = 3
		case d.encoded[p] == '+' && d.opts.PlusToSpace:
			c = ' '
			adv = 1
		default:
			c = d.encoded[p]
			adv = 1
		}
		if pos == i {
			return c, true
		}
		pos++
		p += adv
	}
	return 0, false
}
