package uriparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveDotSegments(t *testing.T) {
	cases := []struct{ in, want string }{
		{"/a/b/c/./../../g", "/a/g"},
		{"mid/content=5/../6", "mid/6"},
		{"/a/./b/../b/%2Fc", "/a/b/%2Fc"},
		{".", ""},
		{"..", ""},
		{"/.", "/"},
		{"/..", "/"},
		{"", ""},
		{"/", "/"},
	}
	for _, c := range cases {
		got := RemoveDotSegments(c.in)
		assert.Equal(t, c.want, got, "RemoveDotSegments(%q)", c.in)
	}
}

func TestEqualNormalized(t *testing.T) {
	assert.True(t, EqualNormalized("/a/b/../c", "/a/c"))
	assert.False(t, EqualNormalized("/a/b", "/a/c"))
}

func TestURLNormalize(t *testing.T) {
	u, err := Parse("/a/b/../c")
	if err != nil {
		t.Fatal(err)
	}
	u.Normalize()
	assert.Equal(t, "/a/c", u.EncodedPath())
}
