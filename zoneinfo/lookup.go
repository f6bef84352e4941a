package zoneinfo

import (
	"fmt"

	"github.com/pganssle/zoneinfo/tzsource"
	"github.com/pganssle/zoneinfo/zonecache"
)

// defaultCache backs FromKey's identity-preservation guarantee: repeated
// FromKey calls for the same key return the same *Zone as long as it
// hasn't been evicted. See zonecache's package doc for the bounded-LRU
// tradeoff versus the original's unbounded weak-reference map.
var defaultCache = zonecache.New(512)

// FromKey resolves and decodes the zone identified by key (e.g.
// "America/New_York") using resolver, caching the result so repeated calls
// with the same key avoid re-parsing the TZif data. A nil resolver uses
// tzsource.DefaultResolver.
func FromKey(key string, resolver tzsource.Resolver) (*Zone, error) {
	if cached, ok := defaultCache.Get(key); ok {
		return cached.(*Zone), nil
	}

	if resolver == nil {
		resolver = tzsource.DefaultResolver
	}

	rc, err := resolver.Open(key)
	if err != nil {
		return nil, fmt.Errorf("zoneinfo: resolve %s: %w", key, err)
	}
	defer rc.Close()

	z, err := FromReaderWithKey(key, rc)
	if err != nil {
		return nil, fmt.Errorf("zoneinfo: decode %s: %w", key, err)
	}

	defaultCache.Put(z)
	return z, nil
}
