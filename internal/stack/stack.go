// Package stack captures goroutine stack addresses for conservative root
// scanning. This is the Go rendition of __builtin_frame_address(0): an
// address inside the current frame, used as the lower bound of the scanned
// range (stacks grow downward on supported platforms).
//
// The Go runtime may move a goroutine stack when it grows. Callers own the
// contract that the range between the captured addresses stays mapped for
// the duration of a scan.
package stack

import "unsafe"

// Top returns an address inside its own frame. Inlining is disabled so the
// anchor is pinned to a real frame below the caller's, making the caller's
// frame part of any scan that starts here.
//
//go:noinline
func Top() uintptr {
	var anchor uintptr
	return uintptr(unsafe.Pointer(&anchor))
}
