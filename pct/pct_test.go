package pct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terorie/uriparse/charset"
)

var unreserved = charset.Unreserved

func TestDecodeStringRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"escaped space", "hello%20world", "hello world"},
		{"escaped percent", "100%25", "100%"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := DecodeString(c.in, unreserved, DefaultDecodeOpts())
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDecodeStringErrors(t *testing.T) {
	_, err := DecodeString("100%2", unreserved, DefaultDecodeOpts())
	assert.ErrorIs(t, err, ErrIncompletePct)

	_, err = DecodeString("100%zz", unreserved, DefaultDecodeOpts())
	assert.ErrorIs(t, err, ErrIncompletePct)
}

func TestEncodeStringRoundTrip(t *testing.T) {
	encoded := EncodeString("hello world!", unreserved, EncodeOpts{})
	assert.Equal(t, "hello%20world%21", encoded)

	decoded, err := DecodeString(encoded, unreserved, DefaultDecodeOpts())
	require.NoError(t, err)
	assert.Equal(t, "hello world!", decoded)
}

func TestKeyEqual(t *testing.T) {
	assert.True(t, KeyEqual("hello%20world", "hello world"))
	assert.True(t, KeyEqual("a+b", "a b"))
	assert.False(t, KeyEqual("hello", "world"))
}

func TestScanAllowed(t *testing.T) {
	n := ScanAllowed("abc/def", 0, unreserved)
	assert.Equal(t, 3, n)

	n = ScanAllowed("a%20b?c", 0, unreserved)
	assert.Equal(t, 5, n)
}

func TestReEncodePreservesExistingEscapes(t *testing.T) {
	out, err := ReEncode("a%20b c", unreserved, EncodeOpts{})
	require.NoError(t, err)
	assert.Equal(t, "a%20b%20c", out)
}
