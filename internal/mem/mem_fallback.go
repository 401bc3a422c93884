//go:build !unix

package mem

import "unsafe"

// allocRaw falls back to the Go heap. Backing storage is a []uintptr so the
// base is always pointer-aligned (the tiny allocator can hand out unaligned
// byte slices). The Go runtime does not move heap objects, so the base
// address stays stable while the Region holds the slice.
func allocRaw(size int) (Region, error) {
	words := (size + int(unsafe.Sizeof(uintptr(0))) - 1) / int(unsafe.Sizeof(uintptr(0)))
	backing := make([]uintptr, words)
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&backing[0])), size)
	return Region{buf: buf}, nil
}

// freeRaw is a no-op on the fallback path; the Go runtime reclaims the
// backing storage once the Region is dropped.
func freeRaw(Region) error {
	return nil
}
