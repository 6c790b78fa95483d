package rfc3986

import "testing"

func TestParseHostKinds(t *testing.T) {
	cases := []struct {
		in       string
		wantKind HostKind
		wantN    int
	}{
		{"192.168.1.1", HostIPv4, 11},
		{"[::1]", HostIPv6, 5},
		{"[v1.x]", HostIPvFuture, 6},
		{"example.com", HostName, 11},
		{"example.com:8080", HostName, 11},
	}
	for _, c := range cases {
		h, n, ok := ParseHost(c.in, HostOptions{})
		if !ok {
			t.Fatalf("ParseHost(%q) failed", c.in)
		}
		if h.Kind != c.wantKind {
			t.Errorf("ParseHost(%q).Kind = %v, want %v", c.in, h.Kind, c.wantKind)
		}
		if n != c.wantN {
			t.Errorf("ParseHost(%q) consumed %d, want %d", c.in, n, c.wantN)
		}
	}
}

func TestDecodeRegName(t *testing.T) {
	out, err := DecodeRegName("ex%61mple.com", HostOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if out != "example.com" {
		t.Errorf("got %q, want example.com", out)
	}
}
