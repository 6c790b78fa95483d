package uriparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegments(t *testing.T) {
	u, err := Parse("/a/hello%20world/c")
	require.NoError(t, err)

	segs, err := u.Segments()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "hello world", "c"}, segs)
}

func TestSetSegments(t *testing.T) {
	u, err := Parse("/old")
	require.NoError(t, err)

	u.SetSegments([]string{"new", "path here"})
	assert.Equal(t, "/new/path%20here", u.EncodedPath())
}

func TestParams(t *testing.T) {
	u, err := Parse("/?a=1&b=hello%20world&flag")
	require.NoError(t, err)

	params, err := u.Params()
	require.NoError(t, err)
	require.Len(t, params, 3)
	assert.Equal(t, Param{Key: "a", Value: "1", HasValue: true}, params[0])
	assert.Equal(t, Param{Key: "b", Value: "hello world", HasValue: true}, params[1])
	assert.Equal(t, Param{Key: "flag", HasValue: false}, params[2])
}

func TestParamValueEncodedKeyEquality(t *testing.T) {
	u, err := Parse("/?na%6de=value")
	require.NoError(t, err)

	v, ok := u.ParamValue("name")
	assert.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestSetParams(t *testing.T) {
	u, err := Parse("/")
	require.NoError(t, err)

	u.SetParams([]Param{{Key: "a", Value: "1", HasValue: true}, {Key: "flag"}})
	assert.Equal(t, "a=1&flag", u.EncodedQuery())
}

func TestSegmentsRefInsertEraseReplace(t *testing.T) {
	u, err := Parse("/a/b/c")
	require.NoError(t, err)
	ref := u.SegmentsRef()

	require.NoError(t, ref.Insert(1, "x"))
	assert.Equal(t, "/a/x/b/c", u.EncodedPath())
	assert.Equal(t, 4, u.NumSegments())

	require.NoError(t, ref.Replace(0, "z"))
	assert.Equal(t, "/z/x/b/c", u.EncodedPath())

	require.NoError(t, ref.Erase(1))
	assert.Equal(t, "/z/b/c", u.EncodedPath())
	assert.Equal(t, 3, u.NumSegments())

	assert.ErrorIs(t, ref.Erase(99), ErrOutOfRange)
	assert.ErrorIs(t, ref.Insert(-1, "x"), ErrOutOfRange)
}

func TestSegmentsRefPushPop(t *testing.T) {
	u, err := Parse("/a")
	require.NoError(t, err)
	ref := u.SegmentsRef()

	ref.PushBack("b")
	assert.Equal(t, "/a/b", u.EncodedPath())

	require.NoError(t, ref.PopBack())
	assert.Equal(t, "/a", u.EncodedPath())
}

func TestParamsRefInsertEraseReplace(t *testing.T) {
	u, err := Parse("/?a=1&b=2")
	require.NoError(t, err)
	ref := u.ParamsRef()

	require.NoError(t, ref.Insert(1, Param{Key: "x", Value: "9", HasValue: true}))
	assert.Equal(t, "a=1&x=9&b=2", u.EncodedQuery())
	assert.Equal(t, 3, u.NumParams())

	require.NoError(t, ref.Replace(0, Param{Key: "a", Value: "99", HasValue: true}))
	assert.Equal(t, "a=99&x=9&b=2", u.EncodedQuery())

	require.NoError(t, ref.Erase(1))
	assert.Equal(t, "a=99&b=2", u.EncodedQuery())
	assert.Equal(t, 2, u.NumParams())

	assert.ErrorIs(t, ref.Erase(99), ErrOutOfRange)
}

func TestParamsRefPushPopAppend(t *testing.T) {
	u, err := Parse("/?a=1")
	require.NoError(t, err)
	ref := u.ParamsRef()

	ref.PushBack(Param{Key: "flag"})
	assert.Equal(t, "a=1&flag", u.EncodedQuery())

	require.NoError(t, ref.PopBack())
	assert.Equal(t, "a=1", u.EncodedQuery())

	ref.Append(Param{Key: "b", Value: "2", HasValue: true}, Param{Key: "c", Value: "3", HasValue: true})
	assert.Equal(t, "a=1&b=2&c=3", u.EncodedQuery())
	assert.Equal(t, 3, u.NumParams())
}

func TestNumParamsTrackedAcrossParseAndMutate(t *testing.T) {
	u, err := Parse("/?a=1&b=2&c=3")
	require.NoError(t, err)
	assert.Equal(t, 3, u.NumParams())

	u.RemoveQuery()
	assert.Equal(t, 0, u.NumParams())

	u.SetQuery("x=1&y=2")
	assert.Equal(t, 2, u.NumParams())
}
