package rfc3986

import (
	"strings"

	"github.com/terorie/uriparse/charset"
	"github.com/terorie/uriparse/grammar"
)

// ParseIPv6Address validates that s (the full bracket-interior text, with no
// surrounding "[" "]") is exactly one of the nine IPv6address forms in RFC
// 3986 §3.2.2, including the mixed h16:...:IPv4 tail, and returns the
// expanded 16-byte address. The "::" compressor may appear at most once and
// stands for at least one zero group; total groups must equal exactly 8
// after expansion (spec §4.3.5).
func ParseIPv6Address(s string) (addr [16]byte, ok bool) {
	if s == "" {
		return addr, false
	}

	compressed := strings.Contains(s, "::")
	if strings.Count(s, "::") > 1 {
		return addr, false
	}

	var left, right string
	if compressed {
		parts := strings.SplitN(s, "::", 2)
		left, right = parts[0], parts[1]
	} else {
		left = s
	}

	leftGroups, leftOK := splitGroups(left)
	rightGroups, rightOK := splitGroups(right)
	if !leftOK || !rightOK {
		return addr, false
	}

	// An embedded IPv4 tail counts as two h16 groups and may only appear as
	// the last element of the group list that actually has a tail.
	leftTail, leftHasV4 := extractV4Tail(leftGroups)
	rightTail, rightHasV4 := extractV4Tail(rightGroups)

	leftCount := len(leftGroups)
	if leftHasV4 {
		leftCount++ // v4 tail occupies one list slot but counts as two groups
	}
	rightCount := len(rightGroups)
	if rightHasV4 {
		rightCount++
	}

	if !compressed {
		if leftHasV4 || !rightOK {
			// fallthrough: left-only form may still have v4 tail.
		}
		if len(right) != 0 {
			return addr, false
		}
		if leftCount != 8 {
			return addr, false
		}
		return buildAddress(leftGroups, leftTail, leftHasV4, nil, "", false, 8)
	}

	total := leftCount + rightCount
	if total > 7 {
		return addr, false
	}
	zeroGroups := 8 - total
	if zeroGroups < 1 {
		return addr, false
	}
	return buildAddressCompressed(leftGroups, leftTail, leftHasV4, rightGroups, rightTail, rightHasV4, zeroGroups)
}

// splitGroups splits a colon-separated run of hex groups (and possibly a
// trailing IPv4 literal) on ':'. An empty input yields an empty, valid group
// list (needed for both sides of "::").
func splitGroups(s string) ([]string, bool) {
	if s == "" {
		return nil, true
	}
	return strings.Split(s, ":"), true
}

// extractV4Tail reports whether the last element of groups is an IPv4
// literal, and returns its parsed bytes.
func extractV4Tail(groups []string) ([4]byte, bool) {
	if len(groups) == 0 {
		return [4]byte{}, false
	}
	last := groups[len(groups)-1]
	if !strings.Contains(last, ".") {
		return [4]byte{}, false
	}
	octets, n, ok := ParseIPv4Address(last)
	if !ok || n != len(last) {
		return [4]byte{}, false
	}
	return octets, true
}

// h16Rule matches h16 = 1*4HEXDIG (spec §3.2.2, §4.3.5).
var h16Rule = grammar.Token{Set: charset.HexDig, Min: 1, Max: 4, Name: "h16"}

func h16(s string) (uint16, bool) {
	c := &grammar.Cursor{Input: s}
	digits, err := h16Rule.Parse(c)
	if err != nil || c.Pos != len(s) {
		return 0, false
	}
	var v uint16
	for i := 0; i < len(digits); i++ {
		v = v*16 + uint16(charset.HexValue(digits[i]))
	}
	return v, true
}

// buildAddress fills a 16-byte address from a single uncompressed group
// list, where the last element may be an IPv4 tail counted as two groups.
func buildAddress(groups []string, v4 [4]byte, hasV4 bool, _ []string, _ string, _ bool, total int) (addr [16]byte, ok bool) {
	n := len(groups)
	if hasV4 {
		n--
	}
	pos := 0
	for i := 0; i < n; i++ {
		v, okGroup := h16(groups[i])
		if !okGroup {
			return addr, false
		}
		addr[pos] = byte(v >> 8)
		addr[pos+1] = byte(v)
		pos += 2
	}
	if hasV4 {
		copy(addr[pos:pos+4], v4[:])
		pos += 4
	}
	return addr, pos == 16
}

// buildAddressCompressed fills a 16-byte address for the "::"-compressed
// forms, zero-filling the gap.
func buildAddressCompressed(leftGroups []string, leftV4 [4]byte, leftHasV4 bool, rightGroups []string, rightV4 [4]byte, rightHasV4 bool, zeroGroups int) (addr [16]byte, ok bool) {
	pos := 0
	nLeft := len(leftGroups)
	if leftHasV4 {
		nLeft--
	}
	for i := 0; i < nLeft; i++ {
		v, okGroup := h16(leftGroups[i])
		if !okGroup {
			return addr, false
		}
		addr[pos] = byte(v >> 8)
		addr[pos+1] = byte(v)
		pos += 2
	}
	if leftHasV4 {
		copy(addr[pos:pos+4], leftV4[:])
		pos += 4
	}

	pos += zeroGroups * 2

	nRight := len(rightGroups)
	if rightHasV4 {
		nRight--
	}
	for i := 0; i < nRight; i++ {
		v, okGroup := h16(rightGroups[i])
		if !okGroup {
			return addr, false
		}
		addr[pos] = byte(v >> 8)
		addr[pos+1] = byte(v)
		pos += 2
	}
	if rightHasV4 {
		copy(addr[pos:pos+4], rightV4[:])
		pos += 4
	}
	return addr, pos == 16
}

// ipvFutureMarker matches the leading "v"/"V" of an IPvFuture literal.
var ipvFutureMarker = grammar.DelimSet{Set: charset.New("vV"), Name: "ipvfuture-marker"}

// ipvFutureVersion matches the 1*HEXDIG version tag.
var ipvFutureVersion = grammar.Token{Set: charset.HexDig, Min: 1, Name: "ipvfuture-version"}

// ipvFutureDot matches the "." between version and the address body.
var ipvFutureDot = grammar.Delim{Byte: '.', Name: "ipvfuture-dot"}

// ipvFutureChar is unreserved / sub-delims / ":" (spec §4.3.5).
var ipvFutureChar = charset.Unreserved.Union(charset.SubDelims).Plus(':')

// ipvFutureBody matches the 1*( unreserved / sub-delims / ":" ) address body.
var ipvFutureBody = grammar.Token{Set: ipvFutureChar, Min: 1, Name: "ipvfuture-body"}

// ParseIPvFuture validates an IPvFuture literal (spec §4.3.5:
// IPvFuture = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )), and
// returns the consumed length.
func ParseIPvFuture(s string) (n int, ok bool) {
	c := &grammar.Cursor{Input: s}
	if _, err := ipvFutureMarker.Parse(c); err != nil {
		return 0, false
	}
	if _, err := ipvFutureVersion.Parse(c); err != nil {
		return 0, false
	}
	if _, err := ipvFutureDot.Parse(c); err != nil {
		return 0, false
	}
	if _, err := ipvFutureBody.Parse(c); err != nil {
		return 0, false
	}
	return c.Pos, true
}
