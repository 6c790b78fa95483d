package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralRoute(t *testing.T) {
	r := New()
	require.NoError(t, r.Route("/users/list", "users-list"))

	m, err := r.Match("/users/list")
	require.NoError(t, err)
	assert.Equal(t, "users-list", m.Resource)

	_, err = r.Match("/users/other")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestNamedCapture(t *testing.T) {
	r := New()
	require.NoError(t, r.Route("/users/{id}", "user-detail"))

	m, err := r.Match("/users/42")
	require.NoError(t, err)
	assert.Equal(t, "user-detail", m.Resource)
	v, ok := m.Captures.At("id")
	assert.True(t, ok)
	assert.Equal(t, "42", v)
}

func TestOptionalSegment(t *testing.T) {
	r := New()
	require.NoError(t, r.Route("/archive/{year?}", "archive"))

	m, err := r.Match("/archive")
	require.NoError(t, err)
	_, ok := m.Captures.At("year")
	assert.False(t, ok)

	m, err = r.Match("/archive/2024")
	require.NoError(t, err)
	v, ok := m.Captures.At("year")
	assert.True(t, ok)
	assert.Equal(t, "2024", v)
}

func TestPlusRequiresAtLeastOneSegment(t *testing.T) {
	r := New()
	require.NoError(t, r.Route("/files/{rest+}", "files"))

	_, err := r.Match("/files")
	assert.ErrorIs(t, err, ErrNoMatch)

	m, err := r.Match("/files/a/b")
	require.NoError(t, err)
	v, ok := m.Captures.All("rest")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v)
}

func TestStarAllowsZeroSegments(t *testing.T) {
	r := New()
	require.NoError(t, r.Route("/static/{path*}", "static"))

	m, err := r.Match("/static")
	require.NoError(t, err)
	v, ok := m.Captures.All("path")
	assert.True(t, ok)
	assert.Empty(t, v)

	m, err = r.Match("/static/a/b/c")
	require.NoError(t, err)
	v, ok = m.Captures.All("path")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, v)
}

func TestStarWithDotSegmentsInRequestPath(t *testing.T) {
	r := New()
	require.NoError(t, r.Route("/files/{path*}", "files"))

	m, err := r.Match("/files/a/b/../c")
	require.NoError(t, err)
	v, ok := m.Captures.All("path")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "c"}, v)
}

func TestLiteralTakesPriorityOverParam(t *testing.T) {
	r := New()
	require.NoError(t, r.Route("/users/me", "current-user"))
	require.NoError(t, r.Route("/users/{id}", "user-detail"))

	m, err := r.Match("/users/me")
	require.NoError(t, err)
	assert.Equal(t, "current-user", m.Resource)

	m, err = r.Match("/users/7")
	require.NoError(t, err)
	assert.Equal(t, "user-detail", m.Resource)
}

func TestDuplicateCaptureNameRejected(t *testing.T) {
	r := New()
	err := r.Route("/a/{id}/b/{id}", "x")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestAnonymousCapture(t *testing.T) {
	r := New()
	require.NoError(t, r.Route("user/{}", "anon"))

	m, err := r.Match("user/johndoe")
	require.NoError(t, err)
	assert.Equal(t, "anon", m.Resource)
}

func TestOptionalFollowedByLiteralBacktracks(t *testing.T) {
	r := New()
	require.NoError(t, r.Route("user/{name}/{op?}/b", "x"))

	m, err := r.Match("user/johndoe/r/b")
	require.NoError(t, err)
	name, ok := m.Captures.At("name")
	assert.True(t, ok)
	assert.Equal(t, "johndoe", name)
	op, ok := m.Captures.At("op")
	assert.True(t, ok)
	assert.Equal(t, "r", op)

	m, err = r.Match("user/johndoe/b")
	require.NoError(t, err)
	name, ok = m.Captures.At("name")
	assert.True(t, ok)
	assert.Equal(t, "johndoe", name)
	_, ok = m.Captures.At("op")
	assert.False(t, ok)
}

func TestCatchAllFollowedByLiteralBacktracks(t *testing.T) {
	r := New()
	require.NoError(t, r.Route("{rest+}/tail", "x"))

	m, err := r.Match("/a/b/tail")
	require.NoError(t, err)
	v, ok := m.Captures.All("rest")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v)
}

func TestDotSegmentsResolvedInTemplate(t *testing.T) {
	r := New()
	require.NoError(t, r.Route("user/c/../b", "literal-b"))
	require.NoError(t, r.Route("user/b/../{name}", "named"))

	m, err := r.Match("user/b")
	require.NoError(t, err)
	assert.Equal(t, "literal-b", m.Resource)

	m, err = r.Match("user/johndoe")
	require.NoError(t, err)
	assert.Equal(t, "named", m.Resource)
	v, ok := m.Captures.At("name")
	assert.True(t, ok)
	assert.Equal(t, "johndoe", v)
}

func TestDotSegmentsResolvedInRequestPath(t *testing.T) {
	r := New()
	require.NoError(t, r.Route("user/{name}", "named"))
	require.NoError(t, r.Route("user/b", "literal-b"))

	m, err := r.Match("user/b/../johndoe")
	require.NoError(t, err)
	assert.Equal(t, "named", m.Resource)
	v, ok := m.Captures.At("name")
	assert.True(t, ok)
	assert.Equal(t, "johndoe", v)

	m, err = r.Match("user/c/../b")
	require.NoError(t, err)
	assert.Equal(t, "literal-b", m.Resource)
}

func TestConflictingParamCaptureRejected(t *testing.T) {
	r := New()
	require.NoError(t, r.Route("/items/{id}", "by-id"))

	err := r.Route("/items/{slug}", "by-slug")
	assert.ErrorIs(t, err, ErrConflictingRoute)
}

func TestConflictingCatchAllCaptureRejected(t *testing.T) {
	r := New()
	require.NoError(t, r.Route("/files/{rest+}", "plus"))

	err := r.Route("/files/{rest*}", "star")
	assert.ErrorIs(t, err, ErrConflictingRoute)
}
