package rfc3986

import "testing"

func TestParseIPv4Address(t *testing.T) {
	cases := []struct {
		in      string
		wantN   int
		wantOK  bool
		octets  [4]byte
	}{
		{"192.168.0.1", 11, true, [4]byte{192, 168, 0, 1}},
		{"0.0.0.0", 7, true, [4]byte{0, 0, 0, 0}},
		{"255.255.255.255", 15, true, [4]byte{255, 255, 255, 255}},
		{"256.1.1.1", 0, false, [4]byte{}},
		{"01.1.1.1", 0, false, [4]byte{}},
		{"1.2.3", 0, false, [4]byte{}},
	}
	for _, c := range cases {
		octets, n, ok := ParseIPv4Address(c.in)
		if ok != c.wantOK {
			t.Fatalf("ParseIPv4Address(%q) ok = %v, want %v", c.in, ok, c.wantOK)
		}
		if !ok {
			continue
		}
		if n != c.wantN || octets != c.octets {
			t.Errorf("ParseIPv4Address(%q) = %v, %d; want %v, %d", c.in, octets, n, c.octets, c.wantN)
		}
	}
}

func TestParseIPv4AddressConsumesPrefix(t *testing.T) {
	octets, n, ok := ParseIPv4Address("10.0.0.1extra")
	if !ok || n != 8 {
		t.Fatalf("expected prefix match consuming 8 bytes, got n=%d ok=%v", n, ok)
	}
	if octets != [4]byte{10, 0, 0, 1} {
		t.Errorf("unexpected octets %v", octets)
	}
}
