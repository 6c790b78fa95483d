package rfc3986

import "testing"

func TestParseIPv6Address(t *testing.T) {
	cases := []struct {
		in     string
		wantOK bool
	}{
		{"2001:db8::1", true},
		{"::1", true},
		{"::", true},
		{"fe80::1%25eth0", false}, // zone id is stripped by the caller, not this parser
		{"2001:db8:0:0:0:0:0:1", true},
		{"::ffff:192.0.2.1", true},
		{"2001:db8::192.0.2.1", true},
		{"1:2:3:4:5:6:7:8", true},
		{"1:2:3:4:5:6:7:8:9", false},
		{"1::2::3", false},
		{"gggg::1", false},
	}
	for _, c := range cases {
		_, ok := ParseIPv6Address(c.in)
		if ok != c.wantOK {
			t.Errorf("ParseIPv6Address(%q) ok = %v, want %v", c.in, ok, c.wantOK)
		}
	}
}

func TestParseIPv6AddressExpansion(t *testing.T) {
	addr, ok := ParseIPv6Address("2001:db8::1")
	if !ok {
		t.Fatal("expected match")
	}
	want := [16]byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	if addr != want {
		t.Errorf("got %v, want %v", addr, want)
	}
}

func TestParseIPvFuture(t *testing.T) {
	n, ok := ParseIPvFuture("v1.a:b")
	if !ok || n != len("v1.a:b") {
		t.Errorf("ParseIPvFuture failed: n=%d ok=%v", n, ok)
	}
	if _, ok := ParseIPvFuture("v.a"); ok {
		t.Error("expected failure with no hex digits after 'v'")
	}
}
