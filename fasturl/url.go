// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fasturl is a compatibility facade over package uriparse, giving
// callers migrating off the net/url-shaped API (Parse, String,
// ResolveReference, Hostname, Port, IsAbs) a familiar surface while the
// actual parsing, storage and resolution happens in the zero-copy
// uriparse engine. It no longer implements its own []rune-based parser;
// every method here delegates to a wrapped *uriparse.URL.
package fasturl

import (
	"fmt"

	"github.com/terorie/uriparse"
)

// Error reports an error and the operation and URL that caused it, matching
// the shape net/url.Error and this package's original []rune-based Error
// exposed, but carrying the plain string form since uriparse operates on
// []byte rather than []rune.
type Error struct {
	Op  string
	URL string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("%s %q: %v", e.Op, e.URL, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// URL is a thin net/url-shaped wrapper around *uriparse.URL.
type URL struct {
	inner *uriparse.URL
}

// Parse parses rawurl into a URL, in the style of the teacher's
// fasturl.Parse / net/url.Parse.
func Parse(rawurl string) (*URL, error) {
	u, err := uriparse.Parse(rawurl)
	if err != nil {
		return nil, &Error{Op: "parse", URL: rawurl, Err: err}
	}
	return &URL{inner: u}, nil
}

// ParseRequestURI parses rawurl as an absolute URI or absolute path, in the
// style of the teacher's fasturl.ParseRequestURI.
func ParseRequestURI(rawurl string) (*URL, error) {
	u, err := uriparse.ParseRequestURI(rawurl)
	if err != nil {
		return nil, &Error{Op: "parse", URL: rawurl, Err: err}
	}
	return &URL{inner: u}, nil
}

// String reassembles the URL into a valid URL string.
func (u *URL) String() string { return u.inner.String() }

// IsAbs reports whether the URL has a scheme.
func (u *URL) IsAbs() bool { return u.inner.IsAbsolute() }

// Scheme returns the scheme component.
func (u *URL) Scheme() string { return u.inner.Scheme() }

// Hostname returns the host component without its port, decoded.
func (u *URL) Hostname() (string, error) {
	return u.inner.Host(uriparse.DefaultHostOptions())
}

// Port returns the numeric port and whether one was present.
func (u *URL) Port() (port uint16, ok bool) {
	return u.inner.Port(), u.inner.HasPort()
}

// EscapedPath returns the still percent-encoded path.
func (u *URL) EscapedPath() string { return u.inner.EncodedPath() }

// RawQuery returns the still percent-encoded query, excluding "?".
func (u *URL) RawQuery() string { return u.inner.EncodedQuery() }

// ResolveReference resolves ref against u, in the style of the teacher's
// fasturl.URL.ResolveReference (itself derived from net/url).
func (u *URL) ResolveReference(ref *URL) (*URL, error) {
	resolved, err := u.inner.Resolve(ref.inner)
	if err != nil {
		return nil, &Error{Op: "resolve", URL: u.String(), Err: err}
	}
	return &URL{inner: resolved}, nil
}

// Unwrap exposes the underlying *uriparse.URL for callers that want the
// full zero-copy API beyond this compatibility surface.
func (u *URL) Unwrap() *uriparse.URL { return u.inner }
