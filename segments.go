package uriparse

import (
	"strings"

	"github.com/terorie/uriparse/charset"
	"github.com/terorie/uriparse/pct"
	"github.com/terorie/uriparse/rfc3986"
)

// Segments returns the percent-decoded path segments, split on "/" the way
// the corpus's segments_encoded_view (original_source's segments_encoded.hpp)
// and the router's template matcher both do (spec §3.3, §4.8).
func (u *URL) Segments() ([]string, error) {
	raw := u.EncodedPath()
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(strings.TrimPrefix(raw, "/"), "/")
	out := make([]string, len(parts))
	for i, p := range parts {
		decoded, err := rfc3986.DecodeSegment(p)
		if err != nil {
			return nil, err
		}
		out[i] = decoded
	}
	return out, nil
}

// EncodedSegments returns the still percent-encoded path segments.
func (u *URL) EncodedSegments() []string {
	raw := u.EncodedPath()
	if raw == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(raw, "/"), "/")
}

// SetSegments replaces the path with the given segments, each percent-
// encoded individually and joined with "/", prefixed with "/" so the
// resulting path is always absolute.
func (u *URL) SetSegments(segments []string) {
	u.SetEncodedPath("/" + strings.Join(encodeSegments(segments), "/"))
}

func encodeSegments(segments []string) []string {
	out := make([]string, len(segments))
	for i, s := range segments {
		out[i] = pct.EncodeString(s, charset.PChar, pct.EncodeOpts{})
	}
	return out
}

// SegmentsRef is a mutable view over a URL's path segments, offering
// granular element-at-a-time edits (spec §4.5's segments_ref) rather than
// SetSegments' whole-path replacement. Every method reads the current
// segment list, edits it in place, and writes the whole path back through
// SetEncodedPath, so it shares SetEncodedPath's buffer-growth and nSegments
// bookkeeping rather than duplicating it.
type SegmentsRef struct{ u *URL }

// SegmentsRef returns a SegmentsRef over u.
func (u *URL) SegmentsRef() SegmentsRef { return SegmentsRef{u: u} }

func (s SegmentsRef) write(segs []string) {
	s.u.SetEncodedPath("/" + strings.Join(segs, "/"))
}

// Insert adds segment (plain text, percent-encoded here) at index, shifting
// every following segment back by one. index may equal the current segment
// count to insert at the end.
func (s SegmentsRef) Insert(index int, segment string) error {
	segs := s.u.EncodedSegments()
	if index < 0 || index > len(segs) {
		return ErrOutOfRange
	}
	encoded := pct.EncodeString(segment, charset.PChar, pct.EncodeOpts{})
	segs = append(segs, "")
	copy(segs[index+1:], segs[index:])
	segs[index] = encoded
	s.write(segs)
	return nil
}

// Erase removes the segment at index, shifting every following segment
// forward by one.
func (s SegmentsRef) Erase(index int) error {
	segs := s.u.EncodedSegments()
	if index < 0 || index >= len(segs) {
		return ErrOutOfRange
	}
	segs = append(segs[:index], segs[index+1:]...)
	s.write(segs)
	return nil
}

// Replace overwrites the segment at index with segment (plain text,
// percent-encoded here).
func (s SegmentsRef) Replace(index int, segment string) error {
	segs := s.u.EncodedSegments()
	if index < 0 || index >= len(segs) {
		return ErrOutOfRange
	}
	segs[index] = pct.EncodeString(segment, charset.PChar, pct.EncodeOpts{})
	s.write(segs)
	return nil
}

// PushBack appends segment (plain text, percent-encoded here) after the last
// existing segment.
func (s SegmentsRef) PushBack(segment string) {
	segs := append(s.u.EncodedSegments(), pct.EncodeString(segment, charset.PChar, pct.EncodeOpts{}))
	s.write(segs)
}

// PopBack removes the last segment. It returns ErrOutOfRange if the path has
// no segments.
func (s SegmentsRef) PopBack() error {
	segs := s.u.EncodedSegments()
	if len(segs) == 0 {
		return ErrOutOfRange
	}
	s.write(segs[:len(segs)-1])
	return nil
}
