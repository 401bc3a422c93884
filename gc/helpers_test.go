package gc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// newCollector returns a collector anchored at a heap address. The tests
// drive collection through CollectRegion with explicit root slabs, so the
// stack bottom is never actually scanned.
func newCollector(t testing.TB) *Collector {
	t.Helper()
	bottom := new(int)
	c, err := New(unsafe.Pointer(bottom), nil)
	require.NoError(t, err)
	return c
}

// rootSlab wraps a RootSlab with test conveniences. Planted roots are
// deterministic: the slab lives in non-moving memory, so its bounds cannot
// dangle if the goroutine stack moves mid-test.
type rootSlab struct {
	*RootSlab
}

func newSlab(t testing.TB, n int) *rootSlab {
	t.Helper()
	s, err := NewRootSlab(n)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return &rootSlab{RootSlab: s}
}

func (s *rootSlab) set(i int, b []byte) { s.Set(i, b) }

func (s *rootSlab) clear(i int) { s.Clear(i) }

func (s *rootSlab) bounds() (uintptr, uintptr) { return s.Bounds() }

// collect runs one cycle rooted at the slab and returns the reclaimed count.
func (s *rootSlab) collect(t testing.TB, c *Collector) int {
	t.Helper()
	lo, hi := s.bounds()
	n, err := c.CollectRegion(lo, hi)
	require.NoError(t, err)
	return n
}

// mustAlloc allocates or fails the test.
func mustAlloc(t testing.TB, c *Collector, size int, fin Finalizer) []byte {
	t.Helper()
	b, err := c.Alloc(size, fin)
	require.NoError(t, err)
	return b
}
