package charset

import "testing"

func TestSetContains(t *testing.T) {
	s := New("abc")
	for _, b := range []byte("abc") {
		if !s.Contains(b) {
			t.Errorf("expected set to contain %q", b)
		}
	}
	if s.Contains('d') {
		t.Error("expected set to not contain 'd'")
	}
}

func TestRange(t *testing.T) {
	s := Range('0', '9')
	for b := byte('0'); b <= '9'; b++ {
		if !s.Contains(b) {
			t.Errorf("expected digit range to contain %q", b)
		}
	}
	if s.Contains('a') {
		t.Error("expected digit range to not contain 'a'")
	}
}

func TestUnionMinusComplement(t *testing.T) {
	a := New("ab")
	b := New("bc")
	u := a.Union(b)
	for _, c := range []byte("abc") {
		if !u.Contains(c) {
			t.Errorf("union missing %q", c)
		}
	}

	m := a.Minus(b)
	if !m.Contains('a') || m.Contains('b') {
		t.Error("minus did not remove shared member")
	}

	comp := a.Complement()
	if comp.Contains('a') || !comp.Contains('z') {
		t.Error("complement inverted incorrectly")
	}
}

func TestFindIfAndFindIfNot(t *testing.T) {
	digits := Range('0', '9')
	s := "123abc"
	if end := FindIfNot(s, 0, digits); end != 3 {
		t.Errorf("FindIfNot = %d, want 3", end)
	}
	if start := FindIf(s, 0, New("a")); start != 3 {
		t.Errorf("FindIf = %d, want 3", start)
	}
}

func TestHexValueAndIsHex(t *testing.T) {
	cases := map[byte]int8{'0': 0, '9': 9, 'a': 10, 'f': 15, 'A': 10, 'F': 15}
	for b, want := range cases {
		if got := HexValue(b); got != want {
			t.Errorf("HexValue(%q) = %d, want %d", b, got, want)
		}
		if !IsHex(b) {
			t.Errorf("IsHex(%q) = false, want true", b)
		}
	}
	if IsHex('g') {
		t.Error("IsHex('g') = true, want false")
	}
	if HexValue('g') != -1 {
		t.Error("HexValue('g') != -1")
	}
}
