// Package mem provides raw, collector-owned memory regions. On unix the
// regions are anonymous mmap pages outside the Go heap; elsewhere a pinned
// Go-heap fallback is used. Either way a region's base address is stable for
// its entire lifetime, which the collector's address-keyed bookkeeping
// relies on.
package mem

import (
	"errors"
	"unsafe"
)

// ErrBadSize indicates a non-positive requested region size.
var ErrBadSize = errors.New("mem: region size must be positive")

// Region is one raw allocation. The zero value is invalid.
type Region struct {
	buf    []byte
	mapped bool
}

// Alloc returns a zeroed region of exactly size bytes, pointer-aligned.
func Alloc(size int) (Region, error) {
	if size <= 0 {
		return Region{}, ErrBadSize
	}
	return allocRaw(size)
}

// Free releases a region. Releasing the zero Region is a no-op.
func Free(r Region) error {
	return freeRaw(r)
}

// Bytes returns the region's backing bytes.
func (r Region) Bytes() []byte { return r.buf }

// Len returns the region length in bytes.
func (r Region) Len() int { return len(r.buf) }

// Base returns the address of the region's first byte, or 0 for the zero
// Region.
func (r Region) Base() uintptr {
	if len(r.buf) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&r.buf[0]))
}
