package router

import (
	"fmt"
	"strings"
)

// segKind classifies one "/"-delimited template segment (spec §4.8.1).
type segKind int

const (
	segLiteral segKind = iota // "users"
	segName                   // "{id}", "{}"
	segOptional               // "{id?}"
	segPlus                   // "{rest+}"  one or more segments
	segStar                   // "{rest*}"  zero or more segments
)

// templateSegment is one parsed element of a path template.
type templateSegment struct {
	kind segKind
	text string // literal text, or the capture name for the non-literal kinds ("" for an anonymous capture)
}

// parseTemplate splits template on "/", applies RFC 3986 dot-segment
// handling to the template itself (spec §4.8.2 step 2 — "." is dropped,
// ".." cancels the nearest preceding segment, whatever kind it is) and
// classifies what remains. Unlike a request path, a modifier segment
// (`{name?}`, `{name+}`, `{name*}`) may appear anywhere in the template;
// Router.match backtracks to make that work (spec §4.8.3).
func parseTemplate(template string) ([]templateSegment, error) {
	trimmed := strings.Trim(template, "/")
	if trimmed == "" {
		return nil, nil
	}
	raw := resolveDotSegments(strings.Split(trimmed, "/"))
	out := make([]templateSegment, 0, len(raw))
	for _, s := range raw {
		if s == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyTemplate, template)
		}
		out = append(out, parseSegment(s))
	}
	return out, nil
}

// parseSegment classifies one template segment. An empty capture name
// (`{}`, `{?}`, `{+}`, `{*}`) is valid and denotes an anonymous capture
// (spec §4.8.1: "Empty {} is allowed and has no capture name").
func parseSegment(s string) templateSegment {
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return templateSegment{kind: segLiteral, text: s}
	}
	inner := s[1 : len(s)-1]
	switch {
	case strings.HasSuffix(inner, "?"):
		return templateSegment{kind: segOptional, text: inner[:len(inner)-1]}
	case strings.HasSuffix(inner, "+"):
		return templateSegment{kind: segPlus, text: inner[:len(inner)-1]}
	case strings.HasSuffix(inner, "*"):
		return templateSegment{kind: segStar, text: inner[:len(inner)-1]}
	default:
		return templateSegment{kind: segName, text: inner}
	}
}
