// Package rfc3986 expresses the RFC 3986 ABNF productions using the
// grammar combinators and charset predicates, mirroring the grammar layer
// of boost.url's rfc/ headers (original_source/include/boost/url/rfc) but
// built on package grammar instead of C++ templates.
package rfc3986

import (
	"github.com/terorie/uriparse/charset"
	"github.com/terorie/uriparse/grammar"
)

// schemeFirst matches the leading ALPHA of a scheme.
var schemeFirst = grammar.DelimSet{Set: charset.Alpha, Name: "scheme-first"}

// schemeRest matches the *( ALPHA / DIGIT / "+" / "-" / "." ) tail; Min 0
// since a one-letter scheme is valid.
var schemeRest = grammar.Token{Set: charset.SchemeChar, Name: "scheme-rest"}

var schemeTuple = grammar.Tuple2[byte, string](schemeFirst, schemeRest)

// Scheme matches scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ) and
// returns the matched span (spec §3.1, §4.3.5).
func Scheme(c *grammar.Cursor) (string, error) {
	start := c.Pos
	if _, err := schemeTuple.Parse(c); err != nil {
		c.Pos = start
		return "", grammarMismatch("scheme", start)
	}
	return c.Input[start:c.Pos], nil
}

func grammarMismatch(rule string, pos int) error {
	return &grammar.ParseError{Rule: rule, Kind: grammar.Mismatch, Offset: pos}
}

func grammarSyntax(rule string, pos int) error {
	return &grammar.ParseError{Rule: rule, Kind: grammar.Syntax, Offset: pos}
}
