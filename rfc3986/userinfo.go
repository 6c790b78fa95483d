package rfc3986

import (
	"github.com/terorie/uriparse/charset"
	"github.com/terorie/uriparse/grammar"
	"github.com/terorie/uriparse/pct"
)

// userinfoRule matches userinfo = *( unreserved / pct-encoded / sub-delims /
// ":" ) as a grammar.PctRun combinator (spec §3.2.1, §4.3.5).
var userinfoRule = grammar.PctRun{Set: charset.UserInfoChar, Name: "userinfo"}

// ParseUserinfo scans the maximal run of userinfo bytes starting at s[0],
// stopping at the first byte that cannot continue the production (notably
// the authority's trailing "@"). It does not itself require the "@" to be
// present; callers check for it to decide whether a userinfo component was
// actually present in the authority.
func ParseUserinfo(s string) (n int) {
	c := &grammar.Cursor{Input: s}
	_, _ = userinfoRule.Parse(c)
	return c.Pos
}

// DecodeUserinfo percent-decodes a matched userinfo span.
func DecodeUserinfo(raw string) (string, error) {
	return decodeWithRecycler(raw, charset.UserInfoChar, pct.DefaultDecodeOpts())
}
