package zonecache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeZone struct{ key string }

func (f fakeZone) Key() string { return f.key }

func TestCacheGetPutRoundTrip(t *testing.T) {
	c := New(2)
	_, ok := c.Get("America/New_York")
	assert.False(t, ok)

	c.Put(fakeZone{"America/New_York"})
	z, ok := c.Get("America/New_York")
	assert.True(t, ok)
	assert.Equal(t, "America/New_York", z.Key())
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2)
	c.Put(fakeZone{"a"})
	c.Put(fakeZone{"b"})
	// Touch "a" so "b" becomes the least recently used entry.
	c.Get("a")
	c.Put(fakeZone{"c"})

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")

	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestCacheZeroOrNegativeCapacityTreatedAsOne(t *testing.T) {
	c := New(0)
	c.Put(fakeZone{"a"})
	c.Put(fakeZone{"b"})
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)
}

func TestCachePutRefreshesExistingEntry(t *testing.T) {
	c := New(1)
	c.Put(fakeZone{"a"})
	c.Put(fakeZone{"a"})
	assert.Equal(t, 1, c.Len())
}
