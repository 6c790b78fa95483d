package rfc3986

import (
	"github.com/terorie/uriparse/charset"
	"github.com/terorie/uriparse/internal/idnahost"
	"github.com/terorie/uriparse/pct"
)

// HostKind classifies the authority host production that matched, mirroring
// the host_kind aux field in the URL storage model (spec §3.3, §4.4).
type HostKind int

const (
	HostNone HostKind = iota
	HostIPv4
	HostIPv6
	HostIPvFuture
	HostName
)

func (k HostKind) String() string {
	switch k {
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	case HostIPvFuture:
		return "ipvfuture"
	case HostName:
		return "name"
	default:
		return "none"
	}
}

// HostOptions configures host parsing beyond plain RFC 3986 grammar
// recognition (SPEC_FULL.md §2 domain stack).
type HostOptions struct {
	// Punycode makes DecodeRegName transcode a decoded reg-name from its
	// ASCII (ACE) form to Unicode via golang.org/x/net/idna. Off by default.
	// ParseHost ignores it, so it does not change which reg-names validate.
	Punycode bool
}

// Host holds the result of parsing a host production (spec §3.3's host_kind
// and ip_bytes aux fields).
type Host struct {
	Kind    HostKind
	IP      [16]byte // valid when Kind is HostIPv4 (first 4 bytes) or HostIPv6
	RegName string   // raw, still percent-encoded reg-name text when Kind is HostName
}

// ParseHost matches host = IP-literal / IPv4address / reg-name and returns
// the matched span length along with its classification (spec §4.3.5). It
// does not decode or validate punycode; callers that need a Unicode view
// call DecodeRegName.
func ParseHost(s string, _ HostOptions) (h Host, n int, ok bool) {
	if len(s) > 0 && s[0] == '[' {
		return parseIPLiteral(s)
	}
	if octets, adv, okV4 := ParseIPv4Address(s); okV4 && (adv == len(s) || !charset.RegNameChar.Contains(s[adv])) {
		h.Kind = HostIPv4
		copy(h.IP[:4], octets[:])
		return h, adv, true
	}
	end := pct.ScanAllowed(s, 0, charset.RegNameChar)
	h.Kind = HostName
	h.RegName = s[:end]
	return h, end, true
}

func parseIPLiteral(s string) (h Host, n int, ok bool) {
	close := -1
	for i := 1; i < len(s); i++ {
		if s[i] == ']' {
			close = i
			break
		}
	}
	if close < 0 {
		return h, 0, false
	}
	inner := s[1:close]
	if len(inner) > 0 && (inner[0] == 'v' || inner[0] == 'V') {
		fn, okFuture := ParseIPvFuture(inner)
		if !okFuture || fn != len(inner) {
			return h, 0, false
		}
		h.Kind = HostIPvFuture
		return h, close + 1, true
	}
	addr, okV6 := ParseIPv6Address(inner)
	if !okV6 {
		return h, 0, false
	}
	h.Kind = HostIPv6
	h.IP = addr
	return h, close + 1, true
}

// DecodeRegName decodes percent-escapes in a reg-name host and, if opts
// requests it, transcodes the result through IDNA punycode so Unicode and
// ACE-form hosts compare equal (SPEC_FULL.md §2; grounded on the corpus's
// golang.org/x/net/idna usage).
func DecodeRegName(raw string, opts HostOptions) (string, error) {
	decoded, err := decodeWithRecycler(raw, charset.RegNameChar, pct.DefaultDecodeOpts())
	if err != nil {
		return "", err
	}
	if !opts.Punycode {
		return decoded, nil
	}
	return idnahost.ToUnicode(decoded)
}
