package rfc3986

import (
	"github.com/terorie/uriparse/charset"
	"github.com/terorie/uriparse/grammar"
)

// dotDelim matches the "." separating IPv4address octets (spec §4.3.5).
var dotDelim = grammar.Delim{Byte: '.', Name: "ipv4-dot"}

// ParseIPv4Address matches IPv4address = dec-octet "." dec-octet "." dec-octet
// "." dec-octet (spec §4.3.5). Each octet must be 1*3DIGIT valued 0-255 with
// no leading zero unless the octet itself is "0". Returns the four octets
// and the number of input bytes consumed from the start of s, or ok=false.
func ParseIPv4Address(s string) (octets [4]byte, n int, ok bool) {
	c := &grammar.Cursor{Input: s}
	var oct decOctetRule
	for i := 0; i < 4; i++ {
		if i > 0 {
			if _, err := dotDelim.Parse(c); err != nil {
				return octets, 0, false
			}
		}
		v, err := oct.Parse(c)
		if err != nil {
			return octets, 0, false
		}
		octets[i] = v
	}
	return octets, c.Pos, true
}

// decOctetRule matches dec-octet = DIGIT / %x31-39 DIGIT / "1" 2DIGIT /
// "2" %x30-34 DIGIT / "25" %x30-35 (spec §4.3.5) as a grammar.Rule[byte].
// It is hand-written rather than built from Token because the production
// needs the longest digit prefix that ALSO satisfies a numeric-range and
// no-leading-zero constraint, which no primitive combinator expresses
// directly.
type decOctetRule struct{}

func (decOctetRule) Parse(c *grammar.Cursor) (byte, error) {
	start := c.Pos
	end := charset.FindIfNot(c.Input, start, charset.Digit)
	if end == start {
		return 0, &grammar.ParseError{Rule: "dec-octet", Kind: grammar.Mismatch, Offset: start}
	}
	if end-start > 3 {
		end = start + 3
	}
	for l := end - start; l >= 1; l-- {
		digits := c.Input[start : start+l]
		if l > 1 && digits[0] == '0' {
			continue // leading zero only allowed for the single digit "0"
		}
		val := 0
		for i := 0; i < l; i++ {
			val = val*10 + int(digits[i]-'0')
		}
		if val > 255 {
			continue
		}
		c.Pos = start + l
		return byte(val), nil
	}
	return 0, &grammar.ParseError{Rule: "dec-octet", Kind: grammar.Mismatch, Offset: start}
}
