package gc

import (
	"fmt"
	"io"
	"log/slog"
	"unsafe"

	"github.com/gckit/gckit/internal/mem"
	"github.com/gckit/gckit/internal/stack"
)

// Options configures a Collector. A nil *Options means defaults.
type Options struct {
	// Logger receives a cycle summary at Debug level after every collection.
	// Nil discards all output.
	Logger *slog.Logger
}

// Stats holds cumulative collector counters, for observability and tests.
type Stats struct {
	Allocs    uint64 // Alloc calls that returned a block
	Frees     uint64 // blocks reclaimed across all sweeps
	Cycles    uint64 // completed collection cycles
	LiveBytes int    // bytes currently held by tracked blocks
}

// Collector is one independent collector instance. It exclusively owns every
// region it hands out; callers hold borrowed views that become invalid once
// a cycle reclaims them. Instances are not safe for concurrent use.
type Collector struct {
	reg         *registry
	stackBottom uintptr
	log         *slog.Logger
	collecting  bool
	stats       Stats
}

// New creates a Collector rooted at stackBottom. Call it exactly once per
// instance, before any allocation. stackBottom must point at (or above) a
// frame that stays active for the collector's whole lifetime; every later
// Collect call must happen below that frame or root scanning misses live
// data. That is a caller contract the collector cannot verify.
func New(stackBottom unsafe.Pointer, opts *Options) (*Collector, error) {
	if stackBottom == nil {
		return nil, fmt.Errorf("%w: nil stack bottom", ErrStackBounds)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts != nil && opts.Logger != nil {
		logger = opts.Logger
	}
	return &Collector{
		reg:         newRegistry(),
		stackBottom: uintptr(stackBottom),
		log:         logger,
	}, nil
}

// Alloc requests size bytes of zeroed memory tracked by the collector and
// returns the payload. fin, when non-nil, runs exactly once if a later cycle
// finds the block unreachable. The returned slice is a borrowed view: it is
// valid only until the cycle that reclaims the block.
//
// Exhaustion of the underlying provider is returned as an error wrapping
// ErrOutOfMemory instead of aborting the process; see the package
// documentation.
func (c *Collector) Alloc(size int, fin Finalizer) ([]byte, error) {
	if c.collecting {
		return nil, ErrCollectInProgress
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	region, err := mem.Alloc(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	c.reg.insert(block{region: region, fin: fin})
	c.stats.Allocs++
	c.stats.LiveBytes += size
	return region.Bytes(), nil
}

// Collect runs one synchronous mark and sweep cycle using the words between
// the current call frame and the stack bottom as the root set. It returns
// the number of blocks reclaimed. Collection is not preemptible: once
// started it runs to completion, and no valid half-collected state is ever
// observable.
func (c *Collector) Collect() (int, error) {
	top := stack.Top()
	if top >= c.stackBottom {
		return 0, fmt.Errorf("%w: stack top %#x not below bottom %#x",
			ErrStackBounds, top, c.stackBottom)
	}
	return c.collect(top, c.stackBottom)
}

// CollectRegion runs one cycle with [lo, hi) as the root set instead of the
// goroutine stack. Embedders that keep their roots in a dedicated slab get
// fully deterministic collection this way, with no dependence on stack
// layout.
func (c *Collector) CollectRegion(lo, hi uintptr) (int, error) {
	if lo >= hi {
		return 0, fmt.Errorf("%w: empty root region [%#x, %#x)", ErrStackBounds, lo, hi)
	}
	return c.collect(lo, hi)
}

func (c *Collector) collect(lo, hi uintptr) (int, error) {
	if c.collecting {
		return 0, ErrCollectInProgress
	}
	c.collecting = true
	defer func() { c.collecting = false }()

	c.markRange(lo, hi)
	reclaimed := c.sweep()
	c.stats.Cycles++
	c.log.Debug("collection cycle",
		"reclaimed", reclaimed,
		"live", c.reg.count(),
		"liveBytes", c.stats.LiveBytes)
	return reclaimed, nil
}

// Count returns the number of currently tracked (live, not yet swept)
// blocks. Pure; used for observability and testing.
func (c *Collector) Count() int { return c.reg.count() }

// Stats returns the collector's cumulative counters.
func (c *Collector) Stats() Stats { return c.stats }
