package uriparse

import "github.com/terorie/uriparse/rfc3986"

// Authority holds a parsed authority component in isolation (spec §4.4.2),
// for callers that have an authority string without a surrounding
// URI-reference (e.g. a Host header value).
type Authority struct {
	HasUserinfo bool
	User        string
	HasPassword bool
	Password    string
	Host        rfc3986.Host
	HostText    string
	HasPort     bool
	Port        uint16
}

// Userinfo reassembles the combined "user:password" (or bare "user") form.
func (a Authority) Userinfo() string {
	if a.HasPassword {
		return a.User + ":" + a.Password
	}
	return a.User
}

// ParseAuthority parses s as authority = [ userinfo "@" ] host [ ":" port ].
func ParseAuthority(s string) (Authority, error) {
	ref, err := rfc3986.ParseRelativeRef("//" + s)
	if err != nil {
		return Authority{}, &SyntaxError{Op: "ParseAuthority", Input: s, Err: err}
	}
	if !ref.HasAuthority {
		return Authority{}, ErrNoAuthority
	}
	return Authority{
		HasUserinfo: ref.HasUserinfo,
		User:        ref.User,
		HasPassword: ref.HasPassword,
		Password:    ref.Password,
		Host:        ref.Host,
		HostText:    ref.HostText,
		HasPort:     ref.HasPort,
		Port:        ref.Port,
	}, nil
}
