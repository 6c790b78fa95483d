// Package rfc3986 provides grammar-level recognizers for the RFC 3986
// productions; Reference is the fully parsed result consumed by package
// uriparse to build its offset-table URL storage (spec §4.3, §4.4).
package rfc3986

import (
	"errors"
	"strings"

	"github.com/terorie/uriparse/grammar"
)

// ErrInvalidURI is returned by the top-level parse functions when no
// URI-reference / URI / relative-ref / absolute-URI production matches.
var ErrInvalidURI = errors.New("rfc3986: input does not match the requested production")

// Reference holds every component recognized out of a URI-reference,
// expressed as raw, still-encoded substrings of Raw rather than decoded
// strings, so package uriparse can lay them directly into its
// offset table without a second parse pass (spec §3.3, §4.4.1).
type Reference struct {
	Raw string

	HasScheme bool
	Scheme    string // s[0:SchemeEnd]
	SchemeEnd int

	HasAuthority bool
	HasUserinfo  bool
	User         string
	HasPassword  bool
	Password     string
	Host         Host
	HostText     string
	HasPort      bool
	Port         uint16
	PortText     string

	Path      string
	NSegments int

	HasQuery bool
	Query    string

	HasFragment bool
	Fragment    string
}

// Userinfo reassembles the combined "user:password" (or bare "user") form,
// the deprecated-but-still-parsed single-field view of the split User/
// Password the authority grammar produces (RFC 3986 §3.2.1).
func (r *Reference) Userinfo() string {
	if r.HasPassword {
		return r.User + ":" + r.Password
	}
	return r.User
}

// ParseURI matches URI = scheme ":" hier-part [ "?" query ] [ "#" fragment ]
// (spec §3, §4.3.5).
func ParseURI(s string) (*Reference, error) {
	ref, rest, ok := takeScheme(s)
	if !ok {
		return nil, ErrInvalidURI
	}
	if err := parseHierPart(ref, rest, false); err != nil {
		return nil, err
	}
	return ref, nil
}

// ParseAbsoluteURI matches absolute-URI = scheme ":" hier-part [ "?" query ],
// i.e. a URI with no fragment allowed (spec §4.3.5).
func ParseAbsoluteURI(s string) (*Reference, error) {
	ref, err := ParseURI(s)
	if err != nil {
		return nil, err
	}
	if ref.HasFragment {
		return nil, ErrInvalidURI
	}
	return ref, nil
}

// ParseRelativeRef matches relative-ref = relative-part [ "?" query ]
// [ "#" fragment ] (spec §4.3.5).
func ParseRelativeRef(s string) (*Reference, error) {
	ref := &Reference{Raw: s}
	if err := parseHierPart(ref, s, true); err != nil {
		return nil, err
	}
	return ref, nil
}

// ParseURIReference matches URI-reference = URI / relative-ref, the
// production accepted everywhere a "reference" is expected (spec §4.3.5).
func ParseURIReference(s string) (*Reference, error) {
	if ref, err := ParseURI(s); err == nil {
		return ref, nil
	}
	return ParseRelativeRef(s)
}

// takeScheme recognizes the leading "scheme:" prefix, returning a Reference
// seeded with it and the remaining unconsumed input. It drives the
// combinator-level Scheme rule over a grammar.Cursor rather than
// re-implementing the scan.
func takeScheme(s string) (*Reference, string, bool) {
	c := &grammar.Cursor{Input: s}
	scheme, err := Scheme(c)
	if err != nil || c.Done() || s[c.Pos] != ':' {
		return nil, "", false
	}
	ref := &Reference{Raw: s, HasScheme: true, Scheme: scheme, SchemeEnd: c.Pos}
	return ref, s[c.Pos+1:], true
}

// parseHierPart parses hier-part (isRelative=false) or relative-part
// (isRelative=true) starting at rest, plus the trailing "?query" and
// "#fragment", filling ref in place.
func parseHierPart(ref *Reference, rest string, isRelative bool) error {
	body := rest
	if end := indexAny(rest, "?#"); end >= 0 {
		body = rest[:end]
	}

	if len(body) >= 2 && body[0] == '/' && body[1] == '/' {
		authority := body[2:]
		authEnd, okAuth := parseAuthorityInto(ref, authority)
		if !okAuth {
			return ErrInvalidURI
		}
		ref.HasAuthority = true
		pathStart := 2 + authEnd
		pathText := body[pathStart:]
		n, segs := ParsePathAbempty(pathText)
		if n != len(pathText) {
			return ErrInvalidURI
		}
		ref.Path = pathText
		ref.NSegments = segs
	} else {
		var n, segs int
		var ok bool
		switch {
		case len(body) > 0 && body[0] == '/':
			n, segs, ok = ParsePathAbsolute(body)
		case isRelative:
			n, segs, ok = ParsePathNoscheme(body)
			if !ok && body == "" {
				ok = true
			}
		default:
			n, segs, ok = ParsePathRootless(body)
			if !ok && body == "" {
				ok = true
			}
		}
		if !ok || n != len(body) {
			return ErrInvalidURI
		}
		ref.Path = body
		ref.NSegments = segs
	}

	tail := rest[len(body):]
	if len(tail) > 0 && tail[0] == '?' {
		tail = tail[1:]
		end := indexAny(tail, "#")
		query := tail
		if end >= 0 {
			query = tail[:end]
		}
		n := ParseQuery(query)
		if n != len(query) {
			return ErrInvalidURI
		}
		ref.HasQuery = true
		ref.Query = query
		tail = tail[len(query):]
	}
	if len(tail) > 0 && tail[0] == '#' {
		fragment := tail[1:]
		n := ParseFragment(fragment)
		if n != len(fragment) {
			return ErrInvalidURI
		}
		ref.HasFragment = true
		ref.Fragment = fragment
	}
	return nil
}

// parseAuthorityInto matches authority = [ userinfo "@" ] host [ ":" port ]
// into ref, returning the number of bytes of s consumed (spec §4.3.5,
// §4.4.2).
func parseAuthorityInto(ref *Reference, s string) (n int, ok bool) {
	pos := 0
	if at := indexByteBeforeAuthorityEnd(s); at >= 0 {
		ui := ParseUserinfo(s)
		if ui != at {
			return 0, false
		}
		ref.HasUserinfo = true
		raw := s[:ui]
		// The first unescaped ':' splits userinfo into user and password
		// (RFC 3986 §3.2.1's deprecated-but-still-grammatical form); a
		// percent-encoded colon ("%3A") is three literal bytes and never
		// matches here.
		if idx := strings.IndexByte(raw, ':'); idx >= 0 {
			ref.User = raw[:idx]
			ref.HasPassword = true
			ref.Password = raw[idx+1:]
		} else {
			ref.User = raw
		}
		pos = ui + 1 // skip '@'
	}

	h, hn, okHost := ParseHost(s[pos:], HostOptions{})
	if !okHost {
		return 0, false
	}
	ref.Host = h
	ref.HostText = s[pos : pos+hn]
	pos += hn

	if pos < len(s) && s[pos] == ':' {
		pos++
		portStart := pos
		v, has, pn, err := ParsePort(s[pos:])
		if err != nil {
			return 0, false
		}
		pos += pn
		ref.HasPort = has
		ref.Port = v
		ref.PortText = s[portStart:pos]
	}
	return pos, true
}

// indexByteBeforeAuthorityEnd returns the index of the last '@' that occurs
// before the first '/', '?' or '#' in s, or -1 if none. RFC 3986 resolves
// userinfo/host ambiguity by taking the rightmost '@' in the authority
// (matching the corpus's net/url-derived parseAuthority behavior).
func indexByteBeforeAuthorityEnd(s string) int {
	last := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '@':
			last = i
		case '/', '?', '#':
			return last
		}
	}
	return last
}

func indexAny(s, chars string) int {
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(chars); j++ {
			if s[i] == chars[j] {
				return i
			}
		}
	}
	return -1
}
