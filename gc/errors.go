package gc

import "errors"

var (
	// ErrOutOfMemory indicates the underlying memory provider could not
	// satisfy an allocation request.
	ErrOutOfMemory = errors.New("gc: out of memory")

	// ErrBadSize indicates a non-positive allocation size.
	ErrBadSize = errors.New("gc: allocation size must be positive")

	// ErrStackBounds indicates an invalid root region: a nil stack bottom,
	// or a scan range whose lower bound does not lie below its upper bound.
	ErrStackBounds = errors.New("gc: invalid root region bounds")

	// ErrCollectInProgress indicates a re-entrant Alloc or Collect call,
	// typically from inside a finalizer.
	ErrCollectInProgress = errors.New("gc: collection cycle already in progress")
)
