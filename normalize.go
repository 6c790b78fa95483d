package uriparse

import (
	"hash/fnv"
	"strings"

	"github.com/terorie/uriparse/charset"
	"github.com/terorie/uriparse/pct"
	"github.com/terorie/uriparse/rfc3986"
)

// RemoveDotSegments implements RFC 3986 §5.2.4 on an already-assembled path
// string, following the five-rule algorithm letter for letter (spec §4.6;
// grounded on jplu-trident's removeDotSegments /
// processOneStepOfDotRemoval / extractAndAppendSegment, adapted here to
// operate on a plain string buffer rather than an OutputBuffer sink).
func RemoveDotSegments(path string) string {
	var out []string
	in := path

	for in != "" {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = "/" + in[3:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = "/" + in[4:]
			out = popSegment(out)
		case in == "/..":
			in = "/"
			out = popSegment(out)
		case in == "." || in == "..":
			in = ""
		default:
			seg, rest := firstSegment(in)
			out = append(out, seg)
			in = rest
		}
	}

	return strings.Join(out, "")
}

// popSegment removes the last segment pushed onto out, matching rule C's
// "remove the last segment... from the output buffer" (spec §4.6). It never
// pops below an empty output, per rule C's "if any" qualifier.
func popSegment(out []string) []string {
	if len(out) == 0 {
		return out
	}
	return out[:len(out)-1]
}

// firstSegment extracts one leading "/segment" (or, for the very first
// segment of a rootless path, "segment") from in, returning it along with
// the remainder.
func firstSegment(in string) (seg, rest string) {
	start := 0
	if in[0] == '/' {
		start = 1
	}
	end := strings.IndexByte(in[start:], '/')
	if end < 0 {
		return in, ""
	}
	return in[:start+end], in[start+end:]
}

// EqualNormalized reports whether a and b, interpreted as absolute-path
// references, compare equal per RFC 3986 §6.2.2's normalized-path
// comparison: equal after remove_dot_segments, without percent-decoding
// (spec §4.6, §8 scenario 4).
func EqualNormalized(a, b string) bool {
	return RemoveDotSegments(a) == RemoveDotSegments(b)
}

// pathPopper yields a path's remove_dot_segments-normalized segments one at
// a time from the right, without ever materializing the normalized string
// (spec §4.6.2's "iterates each path from the right, popping one semantic
// segment at a time"). It splits the raw "/"-delimited components once
// (the one allocation this trades off against materializing the full
// normalized path) and then walks them back to front, folding "." away and
// letting each ".." cancel the nearest real segment to its left — the same
// rule C/rule-A bookkeeping RemoveDotSegments does left to right, run in
// reverse. dropUnmatched mirrors RemoveDotSegments's remove_unmatched
// parameter (spec §4.6.1): true for an absolute path, where a ".." with
// nothing left to cancel is silently dropped (rule C's pop is a no-op on an
// empty output); false for a rootless path, where it surfaces literally
// (rule A only strips a leading "../" that is still there to strip).
type pathPopper struct {
	comps         []string
	dropUnmatched bool
	skip          int
}

func newPathPopper(path string, dropUnmatched bool) *pathPopper {
	comps := strings.Split(path, "/")
	if len(comps) > 0 && comps[0] == "" && strings.HasPrefix(path, "/") {
		comps = comps[1:]
	}
	// A trailing "." or ".." leaves an empty last segment behind, the way
	// RemoveDotSegments turns "/a/." into "/a/" and "/." into "/".
	if n := len(comps); n > 0 && (comps[n-1] == "." || comps[n-1] == "..") {
		comps = append(comps, "")
	}
	return &pathPopper{comps: comps, dropUnmatched: dropUnmatched}
}

// next returns the next normalized segment (still percent-encoded) from the
// right, and whether one was produced. A path ending in "/" legitimately
// yields a leading empty segment; "no more segments" is reported via ok.
func (p *pathPopper) next() (seg string, ok bool) {
	for len(p.comps) > 0 {
		last := p.comps[len(p.comps)-1]
		p.comps = p.comps[:len(p.comps)-1]
		switch last {
		case ".":
			continue
		case "..":
			p.skip++
		default:
			if p.skip > 0 {
				p.skip--
				continue
			}
			return last, true
		}
	}
	if p.skip > 0 && !p.dropUnmatched {
		p.skip--
		return "..", true
	}
	return "", false
}

// ComparePaths compares a and b as if both had been RemoveDotSegments'd,
// decoded percent-escapes, and then compared from the first differing
// segment scanned right-to-left, without materializing either normalized
// path (spec §4.6.2). relativeA/relativeB mirror remove_dot_segments'
// remove_unmatched flag and should be set to whether the corresponding path
// lacks a leading "/": true for a rootless (relative) path, false for one
// starting with "/". The result matches strings.Compare's sign convention.
func ComparePaths(a string, relativeA bool, b string, relativeB bool) int {
	pa := newPathPopper(a, !relativeA)
	pb := newPathPopper(b, !relativeB)
	for {
		sa, oka := pa.next()
		sb, okb := pb.next()
		if !oka && !okb {
			return 0
		}
		if !oka {
			return -1
		}
		if !okb {
			return 1
		}
		da, errA := rfc3986.DecodeSegment(sa)
		db, errB := rfc3986.DecodeSegment(sb)
		if errA != nil {
			da = sa
		}
		if errB != nil {
			db = sb
		}
		if c := strings.Compare(da, db); c != 0 {
			return c
		}
	}
}

// HashNormalizedPath folds path's remove_dot_segments-normalized, percent-
// decoded segments into an FNV-1a hash without materializing the normalized
// string, agreeing with HashNormalizedPath of any other path that
// ComparePaths reports equal (spec §4.6.2's "corresponding incremental hash
// function").
func HashNormalizedPath(path string, relative bool) uint64 {
	h := fnv.New64a()
	p := newPathPopper(path, !relative)
	for {
		seg, ok := p.next()
		if !ok {
			break
		}
		decoded, err := rfc3986.DecodeSegment(seg)
		if err != nil {
			decoded = seg
		}
		_, _ = h.Write([]byte(decoded))
		_, _ = h.Write([]byte{0}) // segment separator so "ab","c" != "a","bc"
	}
	return h.Sum64()
}

// Compare implements the full URL comparison of spec §4.6.2: case-
// insensitive scheme, percent-insensitive user/password, case- and
// percent-insensitive host, lexical port, normalized-path, then percent-
// insensitive query/fragment — the first non-zero step wins.
func (u *URL) Compare(other *URL) int {
	if c := strings.Compare(strings.ToLower(u.Scheme()), strings.ToLower(other.Scheme())); c != 0 {
		return c
	}
	if c := compareEncodedInsensitive(u.EncodedUser(), other.EncodedUser()); c != 0 {
		return c
	}
	if c := compareEncodedInsensitive(u.EncodedPassword(), other.EncodedPassword()); c != 0 {
		return c
	}
	if !pct.EncodedEqualFold(u.EncodedHost(), other.EncodedHost()) {
		return strings.Compare(strings.ToLower(u.EncodedHost()), strings.ToLower(other.EncodedHost()))
	}
	if c := comparePorts(u, other); c != 0 {
		return c
	}
	if c := ComparePaths(u.EncodedPath(), !strings.HasPrefix(u.EncodedPath(), "/"), other.EncodedPath(), !strings.HasPrefix(other.EncodedPath(), "/")); c != 0 {
		return c
	}
	if c := compareEncodedInsensitive(u.EncodedQuery(), other.EncodedQuery()); c != 0 {
		return c
	}
	return compareEncodedInsensitive(u.EncodedFragment(), other.EncodedFragment())
}

// Equal reports whether u and other compare equal per Compare.
func (u *URL) Equal(other *URL) bool { return u.Compare(other) == 0 }

// compareEncodedInsensitive orders two possibly percent-encoded strings by
// their decoded bytes, falling back to a plain byte compare of the encoded
// text when either one is not well-formed percent-encoding.
func compareEncodedInsensitive(a, b string) int {
	if pct.EncodedEqual(a, b) {
		return 0
	}
	anyByte := charset.Set{}.Complement()
	da, errA := pct.DecodeString(a, anyByte, pct.DefaultDecodeOpts())
	db, errB := pct.DecodeString(b, anyByte, pct.DefaultDecodeOpts())
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return strings.Compare(da, db)
}

// comparePorts implements spec §4.6.2 item 4's "lexical port compare": an
// absent port sorts before any present one (including an explicit ":0"),
// since absence and an explicit zero are distinct states, not equal ones.
func comparePorts(a, b *URL) int {
	switch {
	case a.hasPort != b.hasPort:
		if !a.hasPort {
			return -1
		}
		return 1
	case a.port == b.port:
		return 0
	case a.port < b.port:
		return -1
	default:
		return 1
	}
}

// Normalize rewrites the URL's path in place to its remove_dot_segments
// form (spec §4.6). Scheme, authority and query/fragment are left
// untouched; case-normalization of scheme/host is a separate concern left
// to callers that need full RFC 3986 §6.2 syntax-based normalization.
func (u *URL) Normalize() {
	normalized := RemoveDotSegments(u.EncodedPath())
	u.SetEncodedPath(normalized)
}
