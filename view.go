package uriparse

import (
	"strconv"
	"strings"

	"github.com/terorie/uriparse/rfc3986"
)

// HostOptions re-exports rfc3986.HostOptions so callers of the root
// package don't need a separate import just to configure Host.
type HostOptions = rfc3986.HostOptions

// DefaultHostOptions returns RFC 3986 host parsing with punycode
// transcoding disabled.
func DefaultHostOptions() HostOptions { return HostOptions{} }

// Scheme returns the scheme component, or "" if none (spec §6.2).
func (u *URL) Scheme() string {
	if !u.hasScheme {
		return ""
	}
	return u.slice(idScheme)
}

// EncodedUser returns the still percent-encoded "user" sub-part of the
// userinfo component (spec §3.3, §6.2).
func (u *URL) EncodedUser() string {
	if !u.hasUserinfo {
		return ""
	}
	return u.slice(idUser)
}

// User returns the percent-decoded user sub-part.
func (u *URL) User() (string, error) {
	if !u.hasUserinfo {
		return "", nil
	}
	return rfc3986.DecodeUserinfo(u.EncodedUser())
}

// HasPassword reports whether the userinfo carried an explicit ":password"
// sub-part (spec §3.3, §6.2).
func (u *URL) HasPassword() bool { return u.hasPassword }

// EncodedPassword returns the still percent-encoded password sub-part.
func (u *URL) EncodedPassword() string {
	if !u.hasPassword {
		return ""
	}
	return u.slice(idPassword)
}

// Password returns the percent-decoded password sub-part.
func (u *URL) Password() (string, error) {
	if !u.hasPassword {
		return "", nil
	}
	return rfc3986.DecodeUserinfo(u.EncodedPassword())
}

// EncodedUserinfo reassembles the combined "user:password" (or bare "user")
// percent-encoded form.
func (u *URL) EncodedUserinfo() string {
	if !u.hasUserinfo {
		return ""
	}
	if u.hasPassword {
		return u.EncodedUser() + ":" + u.EncodedPassword()
	}
	return u.EncodedUser()
}

// Userinfo returns the percent-decoded combined "user:password" (or bare
// "user") form.
func (u *URL) Userinfo() (string, error) {
	if !u.hasUserinfo {
		return "", nil
	}
	user, err := u.User()
	if err != nil {
		return "", err
	}
	if !u.hasPassword {
		return user, nil
	}
	pass, err := u.Password()
	if err != nil {
		return "", err
	}
	return user + ":" + pass, nil
}

// EncodedHost returns the still percent-encoded host component (spec §6.2).
func (u *URL) EncodedHost() string {
	if !u.hasAuth {
		return ""
	}
	return u.slice(idHost)
}

// HostKind classifies the host production that matched (spec §3.3).
func (u *URL) HostKind() rfc3986.HostKind { return u.hostKind }

// Host returns the percent-decoded (and, for HostName with opts.Punycode,
// IDNA-transcoded) host component.
func (u *URL) Host(opts rfc3986.HostOptions) (string, error) {
	if !u.hasAuth {
		return "", nil
	}
	if u.hostKind != rfc3986.HostName {
		return u.EncodedHost(), nil
	}
	return rfc3986.DecodeRegName(u.EncodedHost(), opts)
}

// HostAddress returns the raw 16-byte address storage (spec §3.3's
// ip_bytes), valid only when HostKind is HostIPv4 or HostIPv6.
func (u *URL) HostAddress() [16]byte { return u.hostIP }

// HostIPv4Address returns the 4-byte IPv4 address, valid only when
// HostKind() == rfc3986.HostIPv4 (spec §6.2 host_ipv4_address).
func (u *URL) HostIPv4Address() (addr [4]byte, ok bool) {
	if u.hostKind != rfc3986.HostIPv4 {
		return addr, false
	}
	copy(addr[:], u.hostIP[:4])
	return addr, true
}

// HostIPv6Address returns the 16-byte IPv6 address, valid only when
// HostKind() == rfc3986.HostIPv6 (spec §6.2 host_ipv6_address).
func (u *URL) HostIPv6Address() (addr [16]byte, ok bool) {
	if u.hostKind != rfc3986.HostIPv6 {
		return addr, false
	}
	return u.hostIP, true
}

// HostName returns the percent-decoded reg-name host, valid only when
// HostKind() == rfc3986.HostName (spec §6.2 host_name).
func (u *URL) HostName(opts rfc3986.HostOptions) (string, bool, error) {
	if u.hostKind != rfc3986.HostName {
		return "", false, nil
	}
	s, err := rfc3986.DecodeRegName(u.EncodedHost(), opts)
	return s, true, err
}

// HasPort reports whether the authority carried an explicit ":port".
func (u *URL) HasPort() bool { return u.hasPort }

// Port returns the numeric port, valid only when HasPort is true.
func (u *URL) Port() uint16 { return u.port }

// EncodedPath returns the still percent-encoded path component (spec §6.2).
func (u *URL) EncodedPath() string { return u.slice(idPath) }

// NumSegments returns the number of "/"-delimited path segments (spec §3.3).
func (u *URL) NumSegments() int { return u.nSegments }

// NumParams returns the number of "&"-delimited query parameters, maintained
// incrementally alongside NumSegments rather than recomputed by re-splitting
// the query on every call (spec §3.3's n_params aux field).
func (u *URL) NumParams() int { return u.nParams }

// HasQuery reports whether the URL had a "?query" part, distinguishing an
// absent query from one that is present but empty (spec §6.2).
func (u *URL) HasQuery() bool { return u.hasQuery }

// EncodedQuery returns the still percent-encoded query component, excluding
// the leading "?".
func (u *URL) EncodedQuery() string {
	if !u.hasQuery {
		return ""
	}
	return u.slice(idQuery)
}

// HasFragment reports whether the URL had a "#fragment" part.
func (u *URL) HasFragment() bool { return u.hasFragment }

// EncodedFragment returns the still percent-encoded fragment component,
// excluding the leading "#".
func (u *URL) EncodedFragment() string {
	if !u.hasFragment {
		return ""
	}
	return u.slice(idFragment)
}

// Fragment returns the percent-decoded fragment component.
func (u *URL) Fragment() (string, error) {
	if !u.hasFragment {
		return "", nil
	}
	return rfc3986.DecodeFragment(u.EncodedFragment())
}

// String reconstructs the full URI-reference text, matching the teacher's
// fasturl.URL.String (_examples/terorie-oddb-go/fasturl/url.go) in its
// delimiter placement.
func (u *URL) String() string {
	var b strings.Builder
	b.Grow(len(u.buf) + 8)
	if u.hasScheme {
		b.WriteString(u.Scheme())
		b.WriteByte(':')
	}
	if u.hasAuth {
		b.WriteString("//")
		if u.hasUserinfo {
			b.WriteString(u.EncodedUser())
			if u.hasPassword {
				b.WriteByte(':')
				b.WriteString(u.EncodedPassword())
			}
			b.WriteByte('@')
		}
		b.WriteString(u.EncodedHost())
		if u.hasPort {
			b.WriteByte(':')
			b.WriteString(strconv.FormatUint(uint64(u.port), 10))
		}
	}
	b.WriteString(u.EncodedPath())
	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(u.EncodedQuery())
	}
	if u.hasFragment {
		b.WriteByte('#')
		b.WriteString(u.EncodedFragment())
	}
	return b.String()
}
