package uriparse

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/terorie/uriparse/charset"
	"github.com/terorie/uriparse/pct"
	"github.com/terorie/uriparse/rfc3986"
)

// edit replaces the buffer span covered by parts [startID, endID] (both
// inclusive) with newBytes and re-derives every offset from its position
// relative to that range, growing buf with at-least-doubling capacity when
// it must reallocate. This is the single mutation primitive every Set/
// Remove method funnels through (spec §4.5).
//
// Offsets are rebucketed by index, not by comparing raw offset values:
// parts at or before startID are left exactly as they were (startID's own
// offset is the fixed point new content is inserted at); parts after
// startID up to and including endID collapse to the end of the newly
// written content (nested parts being cleared, e.g. user/password/host/port
// all at once); parts after endID shift by the resulting length delta. Index
// bucketing is required rather than optional: when the edited range was
// previously empty (startID's offset already equals endID+1's), a part's
// own start offset and its own end offset are numerically identical, so
// comparing values alone cannot tell "should stay" (the start) from
// "should move" (the end) — only the index relative to startID/endID can.
func (u *URL) edit(startID, endID partID, newBytes []byte) {
	begin, end := u.offset[startID], u.offset[endID+1]
	delta := len(newBytes) - (end - begin)
	oldLen := len(u.buf)
	newLen := oldLen + delta

	var buf []byte
	if newLen <= cap(u.buf) {
		buf = u.buf[:newLen]
		copy(buf[begin+len(newBytes):], u.buf[end:oldLen])
		copy(buf[begin:], newBytes)
	} else {
		newCap := cap(u.buf) * 2
		if newCap < newLen {
			newCap = newLen
		}
		logrus.WithFields(logrus.Fields{"old_cap": cap(u.buf), "new_cap": newCap}).Debug("uriparse: growing URL buffer")
		buf = make([]byte, newLen, newCap)
		copy(buf, u.buf[:begin])
		copy(buf[begin:], newBytes)
		copy(buf[begin+len(newBytes):], u.buf[end:oldLen])
	}
	u.buf = buf

	for i := range u.offset {
		switch id := partID(i); {
		case id <= startID:
		case id <= endID:
			u.offset[i] = begin + len(newBytes)
		default:
			u.offset[i] += delta
		}
	}
}

// SetScheme sets (or, with scheme="", removes) the scheme component. scheme
// must already satisfy the scheme grammar; callers that have a raw string
// should validate with rfc3986.Scheme first.
func (u *URL) SetScheme(scheme string) {
	u.edit(idScheme, idScheme, []byte(scheme))
	u.hasScheme = scheme != ""
}

// RemoveScheme elides the scheme part and its trailing ":" (spec §4.5).
func (u *URL) RemoveScheme() {
	u.edit(idScheme, idScheme, nil)
	u.hasScheme = false
}

// userinfoComponentChar is UserInfoChar minus ":", so a plain-text Set*
// call on the user or password sub-part never introduces a literal colon
// that would be mistaken for the user/password delimiter on re-parse.
var userinfoComponentChar = charset.UserInfoChar.Minus(charset.New(":"))

// SetEncodedUser replaces the user sub-part of the userinfo component with
// an already percent-encoded string and enables the authority/userinfo if
// absent.
func (u *URL) SetEncodedUser(encoded string) {
	if !u.hasAuth {
		u.enableAuthority()
	}
	u.edit(idUser, idUser, []byte(encoded))
	u.hasUserinfo = true
}

// SetUser percent-encodes and sets the user sub-part.
func (u *URL) SetUser(user string) {
	u.SetEncodedUser(pct.EncodeString(user, userinfoComponentChar, pct.EncodeOpts{}))
}

// SetEncodedPassword replaces the password sub-part with an already
// percent-encoded string, enabling it (and the userinfo/authority) if
// absent.
func (u *URL) SetEncodedPassword(encoded string) {
	if !u.hasAuth {
		u.enableAuthority()
	}
	u.edit(idPassword, idPassword, []byte(encoded))
	u.hasUserinfo = true
	u.hasPassword = true
}

// SetPassword percent-encodes and sets the password sub-part.
func (u *URL) SetPassword(password string) {
	u.SetEncodedPassword(pct.EncodeString(password, userinfoComponentChar, pct.EncodeOpts{}))
}

// RemovePassword elides the ":password" sub-part, leaving a bare user.
func (u *URL) RemovePassword() {
	u.edit(idPassword, idPassword, nil)
	u.hasPassword = false
}

// SetEncodedAuthority replaces the whole user/password/host/port span with
// an already percent-encoded "[userinfo@]host[:port]" string, inserting the
// leading "//" if the authority was previously absent (spec §4.5).
func (u *URL) SetEncodedAuthority(encoded string) error {
	auth, err := ParseAuthority(encoded)
	if err != nil {
		return err
	}
	u.edit(idUser, idPort, nil) // clear first so stale offsets never leak into the setters below
	u.hasAuth = true
	u.hasUserinfo, u.hasPassword, u.hasPort = false, false, false
	if auth.HasUserinfo {
		u.SetEncodedUser(auth.User)
		if auth.HasPassword {
			u.SetEncodedPassword(auth.Password)
		}
	}
	u.SetEncodedHost(auth.Host.Kind, auth.HostText)
	if auth.HasPort {
		u.SetPort(auth.Port)
	}
	return nil
}

// RemoveAuthority elides the entire authority (userinfo, host, port) and
// its leading "//", reverting the URL to a path-only reference (spec §4.5).
func (u *URL) RemoveAuthority() {
	u.edit(idUser, idPort, nil)
	u.hasAuth = false
	u.hasUserinfo = false
	u.hasPassword = false
	u.hasPort = false
	u.hostKind = rfc3986.HostNone
	u.port = 0
}

// SetEncodedHost replaces the host component with an already percent-encoded
// string and enables the authority if it was absent. ip_bytes (spec §3.3) is
// recomputed by re-scanning encoded whenever kind names an IP form, keeping
// the "ip_bytes matches the textual host exactly" invariant intact.
func (u *URL) SetEncodedHost(kind rfc3986.HostKind, encoded string) {
	if !u.hasAuth {
		u.enableAuthority()
	}
	u.edit(idHost, idHost, []byte(encoded))
	u.hostKind = kind
	u.hostIP = [16]byte{}
	if kind == rfc3986.HostIPv4 || kind == rfc3986.HostIPv6 {
		if h, n, ok := rfc3986.ParseHost(encoded, rfc3986.HostOptions{}); ok && n == len(encoded) {
			u.hostIP = h.IP
		}
	}
}

// SetHost percent-encodes and sets a reg-name host.
func (u *URL) SetHost(host string) {
	if !u.hasAuth {
		u.enableAuthority()
	}
	encoded := pct.EncodeString(host, charset.RegNameChar, pct.EncodeOpts{})
	u.edit(idHost, idHost, []byte(encoded))
	u.hostKind = rfc3986.HostName
	u.hostIP = [16]byte{}
}

// SetPort sets the numeric port and ensures the authority is present.
func (u *URL) SetPort(port uint16) {
	if !u.hasAuth {
		u.enableAuthority()
	}
	u.edit(idPort, idPort, []byte(strconv.FormatUint(uint64(port), 10)))
	u.hasPort = true
	u.port = port
}

// RemovePort removes the ":port" suffix entirely.
func (u *URL) RemovePort() {
	u.edit(idPort, idPort, nil)
	u.hasPort = false
	u.port = 0
}

// enableAuthority flips hasAuth on for a URL that previously had none. The
// offset table already has idUser..idPort collapsed to a zero-length span
// positioned correctly (right after the scheme, before the path), so no
// byte shuffling is required beyond what future edits will perform.
func (u *URL) enableAuthority() {
	u.hasAuth = true
}

// SetEncodedPath replaces the path with an already percent-encoded string.
func (u *URL) SetEncodedPath(encoded string) {
	u.edit(idPath, idPath, []byte(encoded))
	u.nSegments = countPathSegments(encoded)
}

// SetPath percent-encodes each "/"-delimited segment of path and sets the
// result, preserving a leading "/" if path has one (spec §4.5's "plain
// variants encode as needed").
func (u *URL) SetPath(path string) {
	hadSlash := len(path) > 0 && path[0] == '/'
	trimmed := path
	if hadSlash {
		trimmed = path[1:]
	}
	var out string
	if trimmed != "" || hadSlash {
		out = strings.Join(encodeSegments(strings.Split(trimmed, "/")), "/")
	}
	if hadSlash {
		out = "/" + out
	}
	u.SetEncodedPath(out)
}

// SetEncodedQuery replaces the query component with an already
// percent-encoded string, excluding the leading "?".
func (u *URL) SetEncodedQuery(encoded string) {
	u.edit(idQuery, idQuery, []byte(encoded))
	u.hasQuery = true
	u.nParams = countQueryParams(encoded)
}

// SetQuery percent-encodes and sets the query component.
func (u *URL) SetQuery(query string) {
	encoded := pct.EncodeString(query, charset.QueryOrFragmentChar, pct.EncodeOpts{})
	u.edit(idQuery, idQuery, []byte(encoded))
	u.hasQuery = true
	u.nParams = countQueryParams(encoded)
}

// RemoveQuery removes the "?query" part entirely.
func (u *URL) RemoveQuery() {
	u.edit(idQuery, idQuery, nil)
	u.hasQuery = false
	u.nParams = 0
}

// SetEncodedFragment replaces the fragment component with an already
// percent-encoded string, excluding the leading "#".
func (u *URL) SetEncodedFragment(encoded string) {
	u.edit(idFragment, idFragment, []byte(encoded))
	u.hasFragment = true
}

// SetFragment percent-encodes and sets the fragment component.
func (u *URL) SetFragment(fragment string) {
	encoded := pct.EncodeString(fragment, charset.QueryOrFragmentChar, pct.EncodeOpts{})
	u.edit(idFragment, idFragment, []byte(encoded))
	u.hasFragment = true
}

// RemoveFragment removes the "#fragment" part entirely.
func (u *URL) RemoveFragment() {
	u.edit(idFragment, idFragment, nil)
	u.hasFragment = false
}

func countPathSegments(path string) int {
	if path == "" {
		return 0
	}
	n := 1
	// A leading "/" opens the first segment rather than adding one.
	for i := 1; i < len(path); i++ {
		if path[i] == '/' {
			n++
		}
	}
	return n
}

// countQueryParams counts "&"-delimited query parameters the same way
// countPathSegments counts "/"-delimited path segments: an empty query has
// zero params, every "&" byte marks one more.
func countQueryParams(query string) int {
	if query == "" {
		return 0
	}
	n := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '&' {
			n++
		}
	}
	return n
}
