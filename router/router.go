// Package router implements a trie-based path-template router: literal,
// "{name}", "{name?}", "{name+}" and "{name*}" segments, matched with
// backtracking and arena-indexed nodes rather than a pointer tree (spec
// §3.5, §4.9). It is grounded on the edge/label traversal style of the
// corpus's radix router (other_examples rivaas-dev-rivaas
// router-radix.go), adapted from a pointer-based *node tree to an
// index-based arena and from HTTP handler chains to opaque resource
// values, since this module routes URL path templates, not HTTP requests.
package router

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Router is a single compiled routing trie. The zero value is not usable;
// construct with New.
type Router struct {
	arena []node
	root  int
}

// New returns an empty Router with a single root node.
func New() *Router {
	r := &Router{}
	r.root = r.newNode(-1)
	return r
}

func (r *Router) newNode(parent int) int {
	r.arena = append(r.arena, node{parent: parent})
	return len(r.arena) - 1
}

// Route registers resource under template, a "/"-delimited path template
// using literal segments and the "{name}", "{name?}", "{name+}", "{name*}"
// modifiers (spec §4.8.1). A modifier segment need not be last — a template
// like "user/{name}/{op?}/b" is valid, Router.match backtracks to satisfy
// it. It returns ErrDuplicateName if the same named capture is used twice
// in one template, ErrConflictingRoute if a differently-shaped capture
// already occupies the position an existing route built, and
// ErrEmptyTemplate-family errors for structurally invalid templates.
func (r *Router) Route(template string, resource any) error {
	segs, err := parseTemplate(template)
	if err != nil {
		return err
	}
	if err := checkDuplicateNames(segs); err != nil {
		return err
	}

	cur := r.root
	for _, seg := range segs {
		switch seg.kind {
		case segLiteral:
			cur = r.descendLiteral(cur, seg.text)
		case segName, segOptional:
			cur, err = r.descendParam(cur, seg.text, seg.kind == segOptional)
		case segPlus, segStar:
			cur, err = r.descendCatchAll(cur, seg.text, seg.kind == segPlus)
		}
		if err != nil {
			return err
		}
	}

	if r.arena[cur].hasResource {
		logrus.WithFields(logrus.Fields{"template": template}).Info("router: replacing existing route resource")
	}
	r.arena[cur].hasResource = true
	r.arena[cur].resource = resource
	logrus.WithFields(logrus.Fields{"template": template}).Debug("router: route registered")
	return nil
}

func (r *Router) descendLiteral(cur int, label string) int {
	if child := r.arena[cur].findEdge(label); child >= 0 {
		return child
	}
	child := r.newNode(cur)
	r.arena[cur].insertEdge(label, child)
	return child
}

// descendParam looks up cur's existing param child (spec §4.8.2's "existing
// child whose template-segment is syntactically equal"): same name and same
// optional flag reuses it, so two routes can share a "{id}" prefix; a
// differently-named or differently-modified capture at the same position is
// rejected rather than silently aliasing an unrelated route.
func (r *Router) descendParam(cur int, name string, optional bool) (int, error) {
	n := &r.arena[cur]
	if n.param != nil {
		if n.param.name == name && n.param.optional == optional {
			return n.param.child, nil
		}
		return 0, ErrConflictingRoute
	}
	child := r.newNode(cur) // may reallocate r.arena, so n is stale past here
	r.arena[cur].param = &paramEdge{name: name, optional: optional, child: child}
	return child, nil
}

// descendCatchAll is descendParam's counterpart for "{name+}"/"{name*}".
func (r *Router) descendCatchAll(cur int, name string, atLeast1 bool) (int, error) {
	n := &r.arena[cur]
	if n.catchAll != nil {
		if n.catchAll.name == name && n.catchAll.atLeast1 == atLeast1 {
			return n.catchAll.child, nil
		}
		return 0, ErrConflictingRoute
	}
	child := r.newNode(cur) // may reallocate r.arena, so n is stale past here
	r.arena[cur].catchAll = &catchAllEdge{name: name, atLeast1: atLeast1, child: child}
	return child, nil
}

// checkDuplicateNames rejects a template that captures the same non-empty
// name twice; anonymous captures ("{}") are exempt since they can never be
// looked up by name and so can't collide.
func checkDuplicateNames(segs []templateSegment) error {
	seen := make(map[string]bool, len(segs))
	for _, s := range segs {
		if s.kind == segLiteral || s.text == "" {
			continue
		}
		if seen[s.text] {
			return ErrDuplicateName
		}
		seen[s.text] = true
	}
	return nil
}

// Match holds the resource reached by a successful match along with the
// captured parameter values (spec §4.9).
type Match struct {
	Resource any
	Captures Captures
}

// Captures holds named single-segment and multi-segment capture values.
type Captures struct {
	single map[string]string
	multi  map[string][]string
}

// At returns a single-segment capture ({name} or {name?}).
func (c Captures) At(name string) (string, bool) {
	v, ok := c.single[name]
	return v, ok
}

// All returns a multi-segment capture ({name+} or {name*}) as its
// individual path segments, in order (spec §4.8.4).
func (c Captures) All(name string) ([]string, bool) {
	v, ok := c.multi[name]
	return v, ok
}

// Match walks path against the trie, preferring literal edges over the
// param edge over the catch-all edge at every node (matching the priority
// documented in the corpus's getRoute: "exact static match → param →
// wildcard"), backtracking to the next alternative when a branch runs out
// of remaining segments without reaching a node that has a resource.
func (r *Router) Match(path string) (*Match, error) {
	segs := splitPath(path)
	caps := Captures{single: map[string]string{}, multi: map[string][]string{}}
	node, ok := r.match(r.root, segs, &caps)
	if !ok {
		return nil, ErrNoMatch
	}
	return &Match{Resource: node.resource, Captures: caps}, nil
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return resolveDotSegments(strings.Split(trimmed, "/"))
}

// resolveDotSegments collapses "." and ".." segments against the segments
// that precede them. Applied uniformly to both registered templates
// (parseTemplate) and matched request paths (splitPath) — spec §4.8.2/
// §4.8.3 apply RFC 3986 dot-segment handling to the whole path, not only to
// whatever trailing span a catch-all capture happens to consume.
func resolveDotSegments(segs []string) []string {
	var out []string
	for _, s := range segs {
		switch s {
		case ".":
			continue
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, s)
		}
	}
	return out
}

// match returns the terminal *node of a successful match. At each node it
// tries, in priority order, a literal edge, then the param edge (consuming
// one segment, and — if optional — also trying zero), then the catch-all
// edge (consuming a run of segments, longest first), backtracking to the
// next alternative on failure; a node's own resource is only a candidate
// answer once the remaining segments are exhausted (spec §4.8.3's
// "termination" step). This lets a modifier segment sit anywhere in a
// template: an optional or catch-all that matches zero segments simply
// continues matching the rest of the template at its child node instead of
// ending the match right there.
func (r *Router) match(cur int, segs []string, caps *Captures) (*node, bool) {
	n := &r.arena[cur]

	if len(segs) == 0 && n.hasResource {
		return n, true
	}

	if len(segs) > 0 {
		if child := n.findEdge(segs[0]); child >= 0 {
			if result, ok := r.match(child, segs[1:], caps); ok {
				return result, true
			}
		}
	}

	if n.param != nil {
		if len(segs) > 0 {
			saved, existed := caps.single[n.param.name]
			caps.single[n.param.name] = segs[0]
			if result, ok := r.match(n.param.child, segs[1:], caps); ok {
				return result, true
			}
			if existed {
				caps.single[n.param.name] = saved
			} else {
				delete(caps.single, n.param.name)
			}
		}
		if n.param.optional {
			if result, ok := r.match(n.param.child, segs, caps); ok {
				return result, true
			}
		}
	}

	if n.catchAll != nil {
		minK := 0
		if n.catchAll.atLeast1 {
			minK = 1
		}
		for k := len(segs); k >= minK; k-- {
			saved, existed := caps.multi[n.catchAll.name]
			var captured []string
			if k > 0 {
				captured = append([]string(nil), segs[:k]...)
			}
			caps.multi[n.catchAll.name] = captured
			if result, ok := r.match(n.catchAll.child, segs[k:], caps); ok {
				return result, true
			}
			if existed {
				caps.multi[n.catchAll.name] = saved
			} else {
				delete(caps.multi, n.catchAll.name)
			}
		}
	}

	return nil, false
}
