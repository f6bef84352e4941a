package tzsource

import "errors"

// ErrBadKey is returned when a zone key fails validation: it is absolute,
// contains a "." or ".." path segment, or otherwise does not normalize to
// itself.
var ErrBadKey = errors.New("tzsource: invalid zone key")

// ErrNotFound is returned when a Resolver could not locate any TZif data
// for an otherwise well-formed key.
var ErrNotFound = errors.New("tzsource: zone not found")
