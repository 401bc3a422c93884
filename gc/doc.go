// Package gc implements a conservative mark-and-sweep garbage collector
// embedded as a library.
//
// # Overview
//
// Callers request raw heap blocks through a Collector, mutate them (including
// storing other blocks' addresses into them), and periodically trigger a
// collection cycle. The cycle conservatively scans a root region one
// pointer-width word at a time, marks every tracked block whose base address
// appears there, marks transitively through the interiors of marked blocks,
// and then sweeps: unmarked blocks are finalized and released, survivors have
// their mark flags cleared for the next cycle.
//
// # Components
//
//   - registry: dense slot table of tracked blocks plus a base-address index
//     for O(1) candidate-pointer lookup
//   - mark engine: conservative word-granular scan over the root region and
//     block interiors, driven by an explicit worklist
//   - sweep engine: finalizes and releases unmarked blocks, demarks survivors
//
// # Usage Example
//
//	var bottom int
//	c, err := gc.New(unsafe.Pointer(&bottom), nil)
//	if err != nil {
//	    return err
//	}
//
//	node, err := c.Alloc(16, func(data []byte) {
//	    fmt.Println("reclaimed")
//	})
//	if err != nil {
//	    return err
//	}
//
//	next, _ := c.Alloc(16, nil)
//	gc.SetPointer(node, 1, next) // node now keeps next alive
//
//	reclaimed, err := c.Collect()
//
// # Conservatism
//
// Scanning is untyped: any word whose bit pattern equals a tracked block's
// base address is treated as a reference, even if it is really an integer
// that happens to collide. This over-retains memory but never releases a
// block that a complete root set genuinely references. It is a known
// trade-off of conservative collection, not a defect to engineer away.
// Interior pointers are not recognized: only a word exactly equal to a
// block's base address counts as a reference to it.
//
// # Root set contract
//
// Collect scans the words between its own call frame and the stack bottom
// captured at New. The stack bottom must belong to a frame that outlives the
// collector, and every Collect call must happen below that frame, or root
// scanning silently misses live data. The Go runtime may also move a
// goroutine stack when it grows; a caller that cannot guarantee a stable
// stack range should keep its roots in a dedicated slab and use
// CollectRegion instead, which scans an explicit [lo, hi) range and is fully
// deterministic. The slab itself must live in memory the runtime never
// moves: a plain local []uintptr whose address only ever flows into a
// uintptr can stay on the goroutine stack, leaving the captured bounds
// dangling after a stack move. RootSlab provides root storage backed by the
// same non-moving provider as block memory.
//
// # Out-of-memory behavior
//
// Alloc reports exhaustion of the underlying provider as an error wrapping
// ErrOutOfMemory rather than aborting the process. Callers that want the
// abort-on-exhaustion behavior of classic C collectors can panic on the
// error themselves.
//
// # Thread Safety
//
// Collector instances are not thread-safe. All allocation and collection
// must happen from a single goroutine, and nothing may mutate tracked memory
// while a cycle runs. Finalizers are trusted code: they must not call back
// into Alloc or Collect (re-entrant calls are rejected with
// ErrCollectInProgress).
//
// # Related Packages
//
//   - github.com/gckit/gckit/internal/mem: raw region provider (mmap-backed
//     on unix)
//   - github.com/gckit/gckit/internal/stack: stack address capture for root
//     scanning
package gc
