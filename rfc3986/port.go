package rfc3986

import (
	"errors"

	"github.com/terorie/uriparse/charset"
	"github.com/terorie/uriparse/grammar"
)

// ErrPortOverflow is returned by ParsePort when the digit run exceeds the
// range of a 16-bit port number (spec §7).
var ErrPortOverflow = errors.New("rfc3986: port number overflows uint16")

// portRule matches port = *DIGIT (spec §3.2.3, §4.3.5).
var portRule = grammar.Token{Set: charset.Digit, Name: "port"}

// ParsePort matches port = *DIGIT and returns the matched span length along
// with the numeric value when non-empty (spec §4.3.5). An empty port (the
// colon present but no digits, or no port at all) is valid and yields
// err == nil, hasValue=false.
func ParsePort(s string) (value uint16, hasValue bool, n int, err error) {
	c := &grammar.Cursor{Input: s}
	digits, _ := portRule.Parse(c) // Min 0, so this never errors.
	if len(digits) == 0 {
		return 0, false, 0, nil
	}
	var v int
	for i := 0; i < len(digits); i++ {
		v = v*10 + int(digits[i]-'0')
		if v > 0xFFFF {
			return 0, false, c.Pos, ErrPortOverflow
		}
	}
	return uint16(v), true, c.Pos, nil
}
