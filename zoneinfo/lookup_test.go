package zoneinfo

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pganssle/zoneinfo/tzsource"
)

type mapResolver map[string][]byte

func (m mapResolver) Open(key string) (io.ReadCloser, error) {
	raw, ok := m[key]
	if !ok {
		return nil, tzsource.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(raw)), nil
}

func TestFromKeyResolvesAndCaches(t *testing.T) {
	raw := encodeFixture(t, nil, nil, nil, []byte{0}, "PST8")
	resolver := mapResolver{"Synthetic/Test1": raw}

	z, err := FromKey("Synthetic/Test1", resolver)
	require.NoError(t, err)
	assert.Equal(t, "Synthetic/Test1", z.Key())

	// A second call must not need the resolver at all: remove the entry
	// and confirm the cached object is still returned, by identity.
	delete(resolver, "Synthetic/Test1")
	z2, err := FromKey("Synthetic/Test1", resolver)
	require.NoError(t, err)
	assert.Same(t, z, z2)
}

func TestFromKeyPropagatesResolverError(t *testing.T) {
	resolver := mapResolver{}
	_, err := FromKey("Synthetic/Missing", resolver)
	assert.Error(t, err)
}
