package rfc3986

import (
	"github.com/terorie/uriparse/charset"
	"github.com/terorie/uriparse/grammar"
	"github.com/terorie/uriparse/pct"
)

// fragmentRule matches fragment = *( pchar / "/" / "?" ) (spec §3.5, §4.3.5).
var fragmentRule = grammar.PctRun{Set: charset.QueryOrFragmentChar, Name: "fragment"}

// ParseFragment matches fragment = *( pchar / "/" / "?" ) and returns the
// consumed length (spec §3.4, §4.3.5).
func ParseFragment(s string) int {
	c := &grammar.Cursor{Input: s}
	_, _ = fragmentRule.Parse(c)
	return c.Pos
}

// DecodeFragment percent-decodes a matched fragment span. Unlike query
// components, fragments don't follow form-encoding convention: '+' is left
// literal (spec §9 open question 2).
func DecodeFragment(raw string) (string, error) {
	return decodeWithRecycler(raw, charset.QueryOrFragmentChar, pct.DefaultDecodeOpts())
}
