package gc

import (
	"fmt"
	"unsafe"

	"github.com/gckit/gckit/internal/mem"
)

// RootSlab is a dedicated root region for CollectRegion callers. Its slots
// live in the same non-moving memory as tracked blocks, so the bounds it
// reports stay valid for its whole lifetime. A plain local []uintptr does
// not give that guarantee: when its address only ever flows into a uintptr,
// escape analysis can keep it on the goroutine stack, and the captured
// bounds dangle if the stack moves.
type RootSlab struct {
	region mem.Region
	words  []uintptr
}

// NewRootSlab returns a slab with n empty root slots. Release it with Close
// once no collection will scan it again.
func NewRootSlab(n int) (*RootSlab, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d root slots", ErrBadSize, n)
	}
	region, err := mem.Alloc(n * wordSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	buf := region.Bytes()
	return &RootSlab{
		region: region,
		words:  unsafe.Slice((*uintptr)(unsafe.Pointer(&buf[0])), n),
	}, nil
}

// Set plants b's base address in slot i, rooting the block. A nil or empty
// b clears the slot instead.
func (s *RootSlab) Set(i int, b []byte) {
	s.words[i] = BaseAddr(b)
}

// Clear empties slot i, dropping that root.
func (s *RootSlab) Clear(i int) {
	s.words[i] = 0
}

// Bounds returns the slab's [lo, hi) range for CollectRegion.
func (s *RootSlab) Bounds() (lo, hi uintptr) {
	lo = s.region.Base()
	return lo, lo + uintptr(len(s.words)*wordSize)
}

// Close releases the slab's backing memory.
func (s *RootSlab) Close() error {
	return mem.Free(s.region)
}
