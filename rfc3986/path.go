package rfc3986

import (
	"github.com/terorie/uriparse/charset"
	"github.com/terorie/uriparse/pct"
)

// segmentNoColonChar is pchar minus ":", used by segment-nz-nc so a
// path-noscheme first segment can never be confused with a scheme (§3.3).
var segmentNoColonChar = charset.Unreserved.Union(charset.SubDelims).Plus('@')

// scanSegment scans one segment = *pchar starting at s[0] and returns its
// length (possibly zero).
func scanSegment(s string) int {
	return pct.ScanAllowed(s, 0, charset.PChar)
}

// ParsePathAbempty matches path-abempty = *( "/" segment ) and returns the
// consumed length and number of segments (spec §4.3.5, §3.4).
func ParsePathAbempty(s string) (n int, segments int) {
	pos := 0
	for pos < len(s) && s[pos] == '/' {
		pos++
		pos += scanSegment(s[pos:])
		segments++
	}
	return pos, segments
}

// ParsePathAbsolute matches path-absolute = "/" [ segment-nz *( "/" segment ) ].
func ParsePathAbsolute(s string) (n int, segments int, ok bool) {
	if len(s) == 0 || s[0] != '/' {
		return 0, 0, false
	}
	pos := 1
	first := scanSegment(s[pos:])
	if first == 0 {
		// path-absolute permits the empty form "/" with no following segment.
		return pos, 0, true
	}
	pos += first
	segments = 1
	for pos < len(s) && s[pos] == '/' {
		pos++
		pos += scanSegment(s[pos:])
		segments++
	}
	return pos, segments, true
}

// ParsePathNoscheme matches path-noscheme = segment-nz-nc *( "/" segment ).
func ParsePathNoscheme(s string) (n int, segments int, ok bool) {
	first := pct.ScanAllowed(s, 0, segmentNoColonChar)
	if first == 0 {
		return 0, 0, false
	}
	pos := first
	segments = 1
	for pos < len(s) && s[pos] == '/' {
		pos++
		pos += scanSegment(s[pos:])
		segments++
	}
	return pos, segments, true
}

// ParsePathRootless matches path-rootless = segment-nz *( "/" segment ).
func ParsePathRootless(s string) (n int, segments int, ok bool) {
	first := scanSegment(s)
	if first == 0 {
		return 0, 0, false
	}
	pos := first
	segments = 1
	for pos < len(s) && s[pos] == '/' {
		pos++
		pos += scanSegment(s[pos:])
		segments++
	}
	return pos, segments, true
}

// DecodeSegment percent-decodes a matched path segment.
func DecodeSegment(raw string) (string, error) {
	return decodeWithRecycler(raw, charset.PChar, pct.DefaultDecodeOpts())
}
