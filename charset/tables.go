package charset

// RFC 3986 Appendix A character classes, built from the Set algebra in
// charset.go. These are the building blocks shared by package pct (which
// bytes may appear unescaped) and package rfc3986 (which bytes a grammar
// rule accepts).

var (
	// Alpha is ALPHA (RFC 5234 B.1).
	Alpha = Range('a', 'z').Union(Range('A', 'Z'))

	// Digit is DIGIT (RFC 5234 B.1).
	Digit = Range('0', '9')

	// HexDig is HEXDIG (RFC 5234 B.1).
	HexDig = Digit.Union(Range('a', 'f')).Union(Range('A', 'F'))

	// Unreserved is unreserved = ALPHA / DIGIT / "-" / "." / "_" / "~" (§2.3).
	Unreserved = Alpha.Union(Digit).Union(New("-._~"))

	// SubDelims is sub-delims (§2.2).
	SubDelims = New("!$&'()*+,;=")

	// PChar is pchar minus pct-encoded, i.e. the unescaped bytes allowed in a
	// path segment: unreserved / sub-delims / ":" / "@" (§3.3).
	PChar = Unreserved.Union(SubDelims).Union(New(":@"))

	// SchemeChar is the set of bytes allowed after the first ALPHA of a
	// scheme: ALPHA / DIGIT / "+" / "-" / "." (§3.1).
	SchemeChar = Alpha.Union(Digit).Union(New("+-."))

	// UserInfoChar is the unescaped bytes of userinfo: unreserved /
	// sub-delims / ":" (§3.2.1).
	UserInfoChar = Unreserved.Union(SubDelims).Union(New(":"))

	// RegNameChar is the unescaped bytes of reg-name: unreserved / sub-delims
	// (§3.2.2).
	RegNameChar = Unreserved.Union(SubDelims)

	// QueryOrFragmentChar is pchar / "/" / "?" (§3.4, §4.1).
	QueryOrFragmentChar = PChar.Union(New("/?"))

	// GenDelims is gen-delims (§2.2).
	GenDelims = New(":/?#[]@")

	// Reserved is reserved = gen-delims / sub-delims (§2.2).
	Reserved = GenDelims.Union(SubDelims)
)
