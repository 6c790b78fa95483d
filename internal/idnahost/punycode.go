// Package idnahost wraps golang.org/x/net/idna for the optional host
// punycode transcoding named in SPEC_FULL.md §2. It is isolated behind a
// narrow two-function surface so rfc3986.HostOptions.Punycode can gate it
// without the rest of the module depending on IDNA tables directly.
package idnahost

import "golang.org/x/net/idna"

var profile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
)

// ToASCII transcodes a Unicode host label to its ASCII-compatible (ACE,
// "xn--") form.
func ToASCII(host string) (string, error) {
	return profile.ToASCII(host)
}

// ToUnicode transcodes a host already in ACE or plain ASCII form to its
// Unicode presentation form. A host with no "xn--" labels passes through
// unchanged.
func ToUnicode(host string) (string, error) {
	return profile.ToUnicode(host)
}
