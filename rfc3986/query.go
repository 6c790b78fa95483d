package rfc3986

import (
	"github.com/terorie/uriparse/charset"
	"github.com/terorie/uriparse/grammar"
	"github.com/terorie/uriparse/pct"
)

// queryRule matches query = *( pchar / "/" / "?" ) (spec §3.4, §4.3.5).
var queryRule = grammar.PctRun{Set: charset.QueryOrFragmentChar, Name: "query"}

// ParseQuery matches query = *( pchar / "/" / "?" ) and returns the consumed
// length (spec §3.4, §4.3.5). It does not split on "&"/"="; package params
// does that once the raw query span has been located.
func ParseQuery(s string) int {
	c := &grammar.Cursor{Input: s}
	_, _ = queryRule.Parse(c)
	return c.Pos
}

// DecodeQueryComponent percent-decodes one key or value of a query
// parameter. PlusToSpace is on by default for query components, matching
// the x-www-form-urlencoded convention the corpus's query-string helpers
// assume (spec §9 open question 2).
func DecodeQueryComponent(raw string) (string, error) {
	return decodeWithRecycler(raw, charset.QueryOrFragmentChar, pct.DecodeOpts{
		AllowNull:   true,
		PlusToSpace: true,
	})
}

// EncodeQueryComponent percent-encodes one key or value of a query
// parameter, escaping "&" and "=" even though QueryOrFragmentChar would
// otherwise permit them unescaped, so the component round-trips through
// param splitting.
func EncodeQueryComponent(s string) string {
	permitted := charset.QueryOrFragmentChar.Minus(charset.New("&="))
	return pct.EncodeString(s, permitted, pct.EncodeOpts{SpaceToPlus: true})
}
