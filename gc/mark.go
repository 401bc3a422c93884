package gc

import "unsafe"

// readWord reads one pointer-width word at addr. This is the only place the
// mark engine dereferences a raw address; callers guarantee the word lies
// inside a mapped root region or a tracked block.
func readWord(addr uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(addr))
}

// alignUp rounds addr up to the next pointer-width boundary.
func alignUp(addr uintptr) uintptr {
	return (addr + uintptr(wordSize) - 1) &^ (uintptr(wordSize) - 1)
}

// markRange treats every word-aligned, pointer-width slot in [lo, hi) as a
// candidate pointer: a word whose value equals a tracked block's base
// address marks that block. Newly marked blocks go on an explicit worklist
// and have their own contents scanned the same way, so reachability is
// transitive and reference chains of any depth cannot overflow the
// goroutine stack. A block is marked before its contents are scanned, which
// terminates reference cycles.
func (c *Collector) markRange(lo, hi uintptr) {
	var work []int

	scan := func(lo, hi uintptr) {
		for p := alignUp(lo); p+uintptr(wordSize) <= hi; p += uintptr(wordSize) {
			i, ok := c.reg.lookup(readWord(p))
			if !ok || c.reg.blocks[i].marked {
				continue
			}
			c.reg.blocks[i].marked = true
			work = append(work, i)
		}
	}

	scan(lo, hi)
	for len(work) > 0 {
		i := work[len(work)-1]
		work = work[:len(work)-1]
		base := c.reg.blocks[i].region.Base()
		scan(base, base+uintptr(c.reg.blocks[i].region.Len()))
	}
}
