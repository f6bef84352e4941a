// Package tzsource resolves an IANA zone key ("America/New_York",
// "Etc/UTC") to the raw TZif bytes describing it.
//
// Grounded on original_source/src/zoneinfo/_tzpath.py (find_tzfile,
// set_tzpath): a search path is built once from an explicit override, the
// ZONEINFOPATH environment variable, or a fixed fallback list, and each
// directory is probed in order until one contains the requested file.
package tzsource

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Resolver opens the raw TZif bytes for a zone key. Implementations should
// return ErrNotFound (wrapped) when the key is well-formed but no data
// exists for it.
type Resolver interface {
	Open(key string) (io.ReadCloser, error)
}

// defaultSearchPath is the fallback list of zoneinfo install locations
// probed when neither an explicit path list nor ZONEINFOPATH is set,
// following original_source's set_tzpath.
var defaultSearchPath = []string{
	"/usr/share/zoneinfo",
	"/usr/lib/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/etc/zoneinfo",
}

// PathResolver resolves zone keys against a list of directories, in order,
// the way the IANA reference tzdata tools do. The zero value resolves
// using ZONEINFOPATH (colon-separated) if set, otherwise the fixed fallback
// list.
type PathResolver struct {
	// SearchPath, if non-nil, overrides both ZONEINFOPATH and the built-in
	// fallback list.
	SearchPath []string
}

// DefaultResolver is the zero-value PathResolver, ready to use. It is used
// by zoneinfo.FromKey when no Resolver is supplied explicitly.
var DefaultResolver = &PathResolver{}

func (p *PathResolver) searchPath() []string {
	if p.SearchPath != nil {
		return p.SearchPath
	}
	if env := os.Getenv("ZONEINFOPATH"); env != "" {
		return strings.Split(env, string(os.PathListSeparator))
	}
	return defaultSearchPath
}

// Open validates key and searches the resolver's search path in order,
// returning the first match.
func (p *PathResolver) Open(key string) (io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	for _, dir := range p.searchPath() {
		candidate := filepath.Join(dir, key)
		f, err := os.Open(candidate)
		if err == nil {
			return f, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("tzsource: open %s: %w", candidate, err)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
}

// validateKey rejects absolute keys and keys containing "." or ".."
// segments, which could otherwise be used to escape the search directory.
// path.Clean normalizing to a different string is the same test
// find_tzfile effectively relies on os.path.join+os.path.isfile to avoid,
// made explicit here since Go's filepath.Join silently collapses ".."
// segments rather than erroring.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrBadKey)
	}
	if path.IsAbs(key) {
		return fmt.Errorf("%w: %q: absolute path", ErrBadKey, key)
	}
	if cleaned := path.Clean(key); cleaned != key {
		return fmt.Errorf("%w: %q: does not normalize to itself (got %q)", ErrBadKey, key, cleaned)
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == ".." || seg == "." {
			return fmt.Errorf("%w: %q: contains %q segment", ErrBadKey, key, seg)
		}
	}
	return nil
}
