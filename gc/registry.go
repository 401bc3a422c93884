package gc

import "github.com/gckit/gckit/internal/mem"

// block is one tracked allocation: its backing region, mark flag, and
// optional finalizer. The mark flag is false at creation and at the start
// and end of every full collection cycle.
type block struct {
	region mem.Region
	marked bool
	fin    Finalizer
}

// registry owns the set of live tracked blocks. Blocks live in a dense slot
// table; byAddr maps each block's base address to its slot so the mark
// engine can test candidate pointers in O(1) instead of walking a list.
type registry struct {
	blocks []block
	byAddr map[uintptr]int
}

func newRegistry() *registry {
	return &registry{byAddr: make(map[uintptr]int)}
}

// insert registers a newly allocated block.
func (r *registry) insert(b block) {
	r.byAddr[b.region.Base()] = len(r.blocks)
	r.blocks = append(r.blocks, b)
}

// lookup returns the slot of the block whose base address is exactly addr.
// Interior pointers do not resolve: an address inside a block's payload is
// not a reference to that block.
func (r *registry) lookup(addr uintptr) (int, bool) {
	i, ok := r.byAddr[addr]
	return i, ok
}

// removeAt drops slot i by swapping the last slot into its place, keeping
// the table dense. Only the sweep engine removes blocks.
func (r *registry) removeAt(i int) {
	last := len(r.blocks) - 1
	delete(r.byAddr, r.blocks[i].region.Base())
	if i != last {
		r.blocks[i] = r.blocks[last]
		r.byAddr[r.blocks[i].region.Base()] = i
	}
	r.blocks[last] = block{}
	r.blocks = r.blocks[:last]
}

// count returns the number of live tracked blocks.
func (r *registry) count() int { return len(r.blocks) }
