// Package uriparse implements a zero-copy RFC 3986 URL parser, normalizer,
// mutator and reference resolver over a single contiguous buffer, following
// the offset-table storage model described in the corpus's boost.url
// original (original_source/include/boost/url/url.hpp) and the accessor
// surface of the teacher's fasturl.URL (_examples/terorie-oddb-go/fasturl).
package uriparse

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/terorie/uriparse/rfc3986"
)

// partID indexes the monotone offset table. Part i occupies
// buffer[offset[i]:offset[i+1]); offset[idEnd] is always len(buffer).
type partID int

const (
	idScheme partID = iota
	idUser
	idPassword
	idHost
	idPort
	idPath
	idQuery
	idFragment
	idEnd
	numParts = int(idEnd) + 1
)

// URL is a parsed, mutable URI-reference over a single owned buffer. The
// zero value is not valid; construct with Parse or New.
//
// Every accessor returns a sub-slice of buf (or a decode built from one) in
// O(1) plus, for decoding, O(component length); no accessor re-scans the
// whole URL.
type URL struct {
	buf    []byte
	offset [numParts]int

	hasScheme   bool
	hasAuth     bool
	hasUserinfo bool
	hasPassword bool
	hasPort     bool
	hasQuery    bool
	hasFragment bool

	hostKind rfc3986.HostKind
	hostIP   [16]byte
	port     uint16

	nSegments int
	nParams   int
}

// Limits bounds resource use during parsing and mutation (SPEC_FULL.md §1.3;
// grounded on the teacher's package-level defaults rather than a config
// file, since this module has no daemon entry point of its own).
type Limits struct {
	// MaxURLSize makes Parse/ParseWithLimits reject inputs longer than this
	// many bytes. Zero means unlimited.
	MaxURLSize int
}

// DefaultLimits caps input at half of math.MaxUint32 bytes, which keeps
// every offset inside an int32.
func DefaultLimits() Limits {
	return Limits{MaxURLSize: math.MaxUint32 / 2}
}

// New returns an empty relative-reference URL (path-empty, no other parts),
// ready for mutation via the Set* methods.
func New() *URL {
	return &URL{buf: []byte{}}
}

// Parse parses s as a URI-reference (spec §4.3, §4.4.1) using
// DefaultLimits. The returned URL owns a copy of s's bytes; s itself is not
// retained.
func Parse(s string) (*URL, error) {
	return ParseWithLimits(s, DefaultLimits())
}

// ParseWithLimits is Parse with explicit resource limits.
func ParseWithLimits(s string, limits Limits) (*URL, error) {
	if limits.MaxURLSize > 0 && len(s) > limits.MaxURLSize {
		logrus.WithFields(logrus.Fields{"size": len(s), "limit": limits.MaxURLSize}).Warn("uriparse: rejecting oversized input")
		return nil, ErrTooLarge
	}
	ref, err := rfc3986.ParseURIReference(s)
	if err != nil {
		return nil, &SyntaxError{Op: "Parse", Input: s, Err: err}
	}
	return fromReference(ref), nil
}

// ParseRequestURI parses s as an absolute-URI or an absolute path, mirroring
// the teacher's ParseRequestURI (fasturl.ParseRequestURI), rejecting
// relative references with no leading "/" and no scheme.
func ParseRequestURI(s string) (*URL, error) {
	u, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if !u.hasScheme && !(len(u.EncodedPath()) > 0 && u.EncodedPath()[0] == '/') {
		return nil, &SyntaxError{Op: "ParseRequestURI", Input: s, Err: ErrInvalidURI}
	}
	return u, nil
}

// fromReference builds a URL's buffer and offset table in a single pass
// over a fully parsed rfc3986.Reference (spec §4.4.1: "computes the offset
// table and aux fields in a single pass"), matching jplu-trident's
// Positions-driven recomposition.
func fromReference(ref *rfc3986.Reference) *URL {
	u := &URL{
		hasScheme:   ref.HasScheme,
		hasAuth:     ref.HasAuthority,
		hasUserinfo: ref.HasUserinfo,
		hasPassword: ref.HasPassword,
		hasPort:     ref.HasPort,
		hasQuery:    ref.HasQuery,
		hasFragment: ref.HasFragment,
		hostKind:    ref.Host.Kind,
		hostIP:      ref.Host.IP,
		port:        ref.Port,
		nSegments:   ref.NSegments,
		nParams:     countQueryParams(ref.Query),
	}

	buf := make([]byte, 0, len(ref.Raw))
	write := func(s string) (start int) {
		start = len(buf)
		buf = append(buf, s...)
		return start
	}

	u.offset[idScheme] = write(ref.Scheme)
	u.offset[idUser] = write(ref.User)
	u.offset[idPassword] = write(ref.Password)
	u.offset[idHost] = write(ref.HostText)
	u.offset[idPort] = write(ref.PortText)
	u.offset[idPath] = write(ref.Path)
	u.offset[idQuery] = write(ref.Query)
	u.offset[idFragment] = write(ref.Fragment)
	u.offset[idEnd] = len(buf)

	u.buf = buf
	return u
}

// IsAbsolute reports whether the URL has a scheme (spec §6.2).
func (u *URL) IsAbsolute() bool { return u.hasScheme }

// HasAuthority reports whether the URL has an authority component (spec
// §6.2).
func (u *URL) HasAuthority() bool { return u.hasAuth }

func (u *URL) slice(id partID) string {
	return string(u.buf[u.offset[id]:u.offset[id+1]])
}
