package router

import "errors"

// Sentinel errors, matching the taxonomy in spec.md §7.
var (
	ErrEmptyTemplate    = errors.New("router: empty path template segment")
	ErrNoMatch          = errors.New("router: no route matches the given path")
	ErrDuplicateName    = errors.New("router: duplicate capture name in template")
	ErrConflictingRoute = errors.New("router: a differently-shaped capture is already registered at this position")
)
