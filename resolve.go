package uriparse

import (
	"strconv"
	"strings"

	"github.com/terorie/uriparse/rfc3986"
)

// draft holds a URL's components as plain strings while Resolve/Relativize
// assemble a result, deferring the single buffer-packing step to toURL.
// This keeps the offset-table edit() primitive reserved for in-place
// mutation of an already-built URL, matching spec §4.5's "single mutation
// primitive" contract.
type draft struct {
	hasScheme bool
	scheme    string

	hasAuth     bool
	hasUserinfo bool
	user        string
	hasPassword bool
	password    string
	hostKind    rfc3986.HostKind
	host        string
	hasPort     bool
	port        uint16

	path string

	hasQuery bool
	query    string

	hasFragment bool
	fragment    string
}

func (d *draft) toURL() *URL {
	portText := ""
	if d.hasPort {
		portText = strconv.FormatUint(uint64(d.port), 10)
	}

	buf := make([]byte, 0, len(d.scheme)+len(d.user)+len(d.password)+len(d.host)+len(portText)+len(d.path)+len(d.query)+len(d.fragment)+8)
	write := func(s string) int {
		start := len(buf)
		buf = append(buf, s...)
		return start
	}

	u := &URL{
		hasScheme:   d.hasScheme,
		hasAuth:     d.hasAuth,
		hasUserinfo: d.hasUserinfo,
		hasPassword: d.hasPassword,
		hasPort:     d.hasPort,
		port:        d.port,
		hostKind:    d.hostKind,
		hasQuery:    d.hasQuery,
		hasFragment: d.hasFragment,
		nSegments:   countPathSegments(d.path),
		nParams:     countQueryParams(d.query),
	}
	u.offset[idScheme] = write(d.scheme)
	u.offset[idUser] = write(d.user)
	u.offset[idPassword] = write(d.password)
	u.offset[idHost] = write(d.host)
	u.offset[idPort] = write(portText)
	u.offset[idPath] = write(d.path)
	u.offset[idQuery] = write(d.query)
	u.offset[idFragment] = write(d.fragment)
	u.offset[idEnd] = len(buf)
	u.buf = buf
	return u
}

func copyAuthority(d *draft, src *URL) {
	d.hasUserinfo, d.user = src.hasUserinfo, src.EncodedUser()
	d.hasPassword, d.password = src.hasPassword, src.EncodedPassword()
	d.hostKind, d.host = src.hostKind, src.EncodedHost()
	d.hasPort, d.port = src.hasPort, src.port
}

// Resolve implements RFC 3986 §5.3's transform-reference algorithm,
// resolving ref against base (spec §4.7). base must be absolute (have a
// scheme); this mirrors the teacher's fasturl.URL.ResolveReference
// contract, generalized from *url.URL (net/url-derived) to *uriparse.URL.
func (base *URL) Resolve(ref *URL) (*URL, error) {
	if !base.hasScheme {
		return nil, ErrNotAnAbsoluteURI
	}

	d := &draft{}
	switch {
	case ref.hasScheme:
		d.hasScheme, d.scheme = true, ref.Scheme()
		d.hasAuth = ref.hasAuth
		copyAuthority(d, ref)
		d.path = RemoveDotSegments(ref.EncodedPath())
		d.hasQuery, d.query = ref.hasQuery, ref.EncodedQuery()

	case ref.hasAuth:
		d.hasScheme, d.scheme = true, base.Scheme()
		d.hasAuth = true
		copyAuthority(d, ref)
		d.path = RemoveDotSegments(ref.EncodedPath())
		d.hasQuery, d.query = ref.hasQuery, ref.EncodedQuery()

	case ref.EncodedPath() == "":
		d.hasScheme, d.scheme = true, base.Scheme()
		d.hasAuth = base.hasAuth
		copyAuthority(d, base)
		d.path = base.EncodedPath()
		if ref.hasQuery {
			d.hasQuery, d.query = true, ref.EncodedQuery()
		} else {
			d.hasQuery, d.query = base.hasQuery, base.EncodedQuery()
		}

	default:
		d.hasScheme, d.scheme = true, base.Scheme()
		d.hasAuth = base.hasAuth
		copyAuthority(d, base)
		if strings.HasPrefix(ref.EncodedPath(), "/") {
			d.path = RemoveDotSegments(ref.EncodedPath())
		} else {
			d.path = RemoveDotSegments(mergePaths(base, ref.EncodedPath()))
		}
		d.hasQuery, d.query = ref.hasQuery, ref.EncodedQuery()
	}

	d.hasFragment, d.fragment = ref.hasFragment, ref.EncodedFragment()
	return d.toURL(), nil
}

// mergePaths implements RFC 3986 §5.3's merge routine: if base has an
// authority and an empty path, the result is "/" plus ref's path; otherwise
// it is ref's path appended to base's path with everything after the last
// "/" of base's path removed.
func mergePaths(base *URL, refPath string) string {
	basePath := base.EncodedPath()
	if base.hasAuth && basePath == "" {
		return "/" + refPath
	}
	if i := strings.LastIndexByte(basePath, '/'); i >= 0 {
		return basePath[:i+1] + refPath
	}
	return refPath
}

// Relativize computes a reference which, when resolved against base, yields
// target (spec §4.7's "inverse of resolve"). It returns the shortest
// reference that survives the round trip: a scheme-relative "//authority..."
// form when the authorities differ, otherwise a path-only (or query/
// fragment-only) reference.
func (base *URL) Relativize(target *URL) (*URL, error) {
	if !base.hasScheme || !target.hasScheme {
		return nil, ErrNotAnAbsoluteURI
	}
	if base.Scheme() != target.Scheme() {
		return target, nil
	}

	d := &draft{}
	if !sameAuthority(base, target) {
		d.hasAuth = target.hasAuth
		copyAuthority(d, target)
		d.path = target.EncodedPath()
		d.hasQuery, d.query = target.hasQuery, target.EncodedQuery()
		d.hasFragment, d.fragment = target.hasFragment, target.EncodedFragment()
		return d.toURL(), nil
	}

	if base.EncodedPath() == target.EncodedPath() {
		if base.hasQuery == target.hasQuery && base.EncodedQuery() == target.EncodedQuery() {
			d.hasFragment, d.fragment = target.hasFragment, target.EncodedFragment()
			return d.toURL(), nil
		}
		d.hasQuery, d.query = target.hasQuery, target.EncodedQuery()
		d.hasFragment, d.fragment = target.hasFragment, target.EncodedFragment()
		return d.toURL(), nil
	}

	d.path = relativizePath(base.EncodedPath(), target.EncodedPath())
	d.hasQuery, d.query = target.hasQuery, target.EncodedQuery()
	d.hasFragment, d.fragment = target.hasFragment, target.EncodedFragment()
	return d.toURL(), nil
}

func sameAuthority(a, b *URL) bool {
	return a.hasAuth == b.hasAuth &&
		a.EncodedUserinfo() == b.EncodedUserinfo() &&
		a.EncodedHost() == b.EncodedHost() &&
		a.hasPort == b.hasPort &&
		a.port == b.port
}

// relativizePath returns the shortest rootless path which, merged against
// basePath per mergePaths and then RemoveDotSegments'd, reproduces
// targetPath: one "../" per basePath directory component not shared with
// targetPath's directory, then targetPath's own unshared directory
// components, then targetPath's final segment.
func relativizePath(basePath, targetPath string) string {
	baseDir := basePath[:strings.LastIndexByte(basePath, '/')+1]
	targetDir := targetPath[:strings.LastIndexByte(targetPath, '/')+1]
	targetFile := targetPath[len(targetDir):]

	var baseSegs, targetSegs []string
	if baseDir != "" {
		baseSegs = strings.Split(strings.Trim(baseDir, "/"), "/")
	}
	if targetDir != "" {
		targetSegs = strings.Split(strings.Trim(targetDir, "/"), "/")
	}

	common := 0
	for common < len(baseSegs) && common < len(targetSegs) && baseSegs[common] == targetSegs[common] {
		common++
	}

	var b strings.Builder
	for i := common; i < len(baseSegs); i++ {
		b.WriteString("../")
	}
	for i := common; i < len(targetSegs); i++ {
		b.WriteString(targetSegs[i])
		b.WriteByte('/')
	}
	b.WriteString(targetFile)
	if b.Len() == 0 {
		return "./"
	}
	return b.String()
}
