package gc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gckit/gckit/internal/mem"
)

func newTestBlock(t *testing.T, size int) block {
	t.Helper()
	region, err := mem.Alloc(size)
	require.NoError(t, err)
	return block{region: region}
}

func Test_Registry_InsertAndLookup(t *testing.T) {
	r := newRegistry()
	b := newTestBlock(t, 32)
	r.insert(b)

	require.Equal(t, 1, r.count())

	i, ok := r.lookup(b.region.Base())
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.False(t, r.blocks[i].marked, "mark flag must be false at creation")
}

func Test_Registry_InteriorAddressDoesNotResolve(t *testing.T) {
	r := newRegistry()
	b := newTestBlock(t, 64)
	r.insert(b)

	_, ok := r.lookup(b.region.Base() + uintptr(wordSize))
	assert.False(t, ok, "interior pointers must not resolve to a block")

	_, ok = r.lookup(b.region.Base() + 1)
	assert.False(t, ok)
}

func Test_Registry_RemoveMiddleFixesIndex(t *testing.T) {
	r := newRegistry()
	a := newTestBlock(t, 16)
	b := newTestBlock(t, 16)
	c := newTestBlock(t, 16)
	r.insert(a)
	r.insert(b)
	r.insert(c)

	// Removing the middle slot swaps the last block into its place.
	r.removeAt(1)
	require.Equal(t, 2, r.count())

	_, ok := r.lookup(b.region.Base())
	assert.False(t, ok, "removed block must not resolve")

	i, ok := r.lookup(c.region.Base())
	require.True(t, ok, "displaced block must stay discoverable")
	assert.Equal(t, 1, i)
	assert.Equal(t, c.region.Base(), r.blocks[i].region.Base())

	i, ok = r.lookup(a.region.Base())
	require.True(t, ok)
	assert.Equal(t, 0, i)
}

func Test_Registry_RemoveLast(t *testing.T) {
	r := newRegistry()
	a := newTestBlock(t, 16)
	b := newTestBlock(t, 16)
	r.insert(a)
	r.insert(b)

	r.removeAt(1)
	require.Equal(t, 1, r.count())

	_, ok := r.lookup(b.region.Base())
	assert.False(t, ok)
	_, ok = r.lookup(a.region.Base())
	assert.True(t, ok)
}

func Test_Registry_CountEmpty(t *testing.T) {
	r := newRegistry()
	assert.Equal(t, 0, r.count())
}
