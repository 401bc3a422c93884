package gc

import "unsafe"

// wordSize is the pointer width of the target. Roots and block interiors are
// scanned for candidate pointers at this granularity; a trailing partial word
// is never scanned.
const wordSize = int(unsafe.Sizeof(uintptr(0)))

// Finalizer runs exactly once when an unreachable block is reclaimed, before
// its memory is released. It receives the block payload. Finalizers are
// trusted, non-escaping code: they must not call back into Alloc or Collect.
type Finalizer func(data []byte)
