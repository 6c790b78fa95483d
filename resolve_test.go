package uriparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveStr(t *testing.T, base, ref string) string {
	t.Helper()
	b, err := Parse(base)
	require.NoError(t, err)
	r, err := Parse(ref)
	require.NoError(t, err)
	out, err := b.Resolve(r)
	require.NoError(t, err)
	return out.String()
}

func TestResolveReferenceRFCExamples(t *testing.T) {
	const base = "http://a/b/c/d;p?q"
	cases := []struct{ ref, want string }{
		{"g:h", "g:h"},
		{"g", "http://a/b/c/g"},
		{"./g", "http://a/b/c/g"},
		{"g/", "http://a/b/c/g/"},
		{"/g", "http://a/g"},
		{"//g", "http://g"},
		{"?y", "http://a/b/c/d;p?y"},
		{"g?y", "http://a/b/c/g?y"},
		{"#s", "http://a/b/c/d;p?q#s"},
		{"g#s", "http://a/b/c/g#s"},
		{"", "http://a/b/c/d;p?q"},
		{".", "http://a/b/c/"},
		{"./", "http://a/b/c/"},
		{"..", "http://a/b/"},
		{"../g", "http://a/b/g"},
		{"../..", "http://a/"},
		{"../../g", "http://a/g"},
	}
	for _, c := range cases {
		got := resolveStr(t, base, c.ref)
		assert.Equal(t, c.want, got, "resolve(%q, %q)", base, c.ref)
	}
}

func TestResolveThenRelativizeRoundTrips(t *testing.T) {
	base, err := Parse("http://a/b/c/d;p?q")
	require.NoError(t, err)
	target, err := Parse("http://a/b/g?y")
	require.NoError(t, err)

	rel, err := base.Relativize(target)
	require.NoError(t, err)

	resolved, err := base.Resolve(rel)
	require.NoError(t, err)
	assert.Equal(t, target.String(), resolved.String())
}
