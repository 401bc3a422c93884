package gc

import "unsafe"

// SetPointer stores src's base address into dst at the given word index, so
// a later mark phase sees dst referencing src. A nil or empty src clears the
// slot instead, severing the reference. Panics if the slot does not fit
// inside dst, like any out-of-range slice access.
func SetPointer(dst []byte, word int, src []byte) {
	putWord(dst, word, BaseAddr(src))
}

// ClearPointer zeroes the pointer slot at the given word index of dst.
func ClearPointer(dst []byte, word int) {
	putWord(dst, word, 0)
}

// BaseAddr returns the base address of a block payload, usable as a root
// word by CollectRegion callers. Returns 0 for a nil or empty slice.
func BaseAddr(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}

func putWord(dst []byte, word int, v uintptr) {
	off := word * wordSize
	_ = dst[off+wordSize-1] // bounds check
	*(*uintptr)(unsafe.Pointer(&dst[off])) = v
}
