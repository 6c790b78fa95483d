package fasturl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndString(t *testing.T) {
	u, err := Parse("https://example.com:8443/a/b?x=1#frag")
	require.NoError(t, err)

	assert.True(t, u.IsAbs())
	assert.Equal(t, "https", u.Scheme())
	assert.Equal(t, "/a/b", u.EscapedPath())
	assert.Equal(t, "x=1", u.RawQuery())

	host, err := u.Hostname()
	require.NoError(t, err)
	assert.Equal(t, "example.com", host)

	port, ok := u.Port()
	assert.True(t, ok)
	assert.Equal(t, uint16(8443), port)

	assert.Equal(t, "https://example.com:8443/a/b?x=1#frag", u.String())
}

func TestParseInvalidReturnsWrappedError(t *testing.T) {
	_, err := Parse("http://[::1")
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "parse", perr.Op)
}

func TestParseRequestURIRejectsRelative(t *testing.T) {
	_, err := ParseRequestURI("a/b")
	assert.Error(t, err)
}

func TestResolveReference(t *testing.T) {
	base, err := Parse("http://a/b/c/d;p?q")
	require.NoError(t, err)
	ref, err := Parse("../g")
	require.NoError(t, err)

	resolved, err := base.ResolveReference(ref)
	require.NoError(t, err)
	assert.Equal(t, "http://a/b/g", resolved.String())
}
