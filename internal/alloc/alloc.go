package alloc

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

// Allocator is the policy layer in front of buffer allocations. Slices carry
// their own memory in Go, so the allocator does not hand out storage itself;
// it grants or refuses capacity in slot units and keeps the accounting that
// lets callers prove every buffer is acquired and released exactly once.
type Allocator interface {
	// Allocate requests a buffer of n slots. A non-nil error denies the
	// request and no buffer may be created.
	Allocate(n int) error
	// Release returns a buffer of n slots. Every successful Allocate must be
	// matched by exactly one Release with the same slot count.
	Release(n int)
}

// System is the default allocator. It never fails and keeps no accounting.
type System struct{}

func (System) Allocate(int) error { return nil }

func (System) Release(int) {}

// Counting wraps every grant and return in atomic counters so tests can
// verify the single-owner buffer discipline: one live buffer per container,
// zero after teardown.
type Counting struct {
	liveBuffers atomic.Int64
	liveSlots   atomic.Int64
	overRelease atomic.Uint64
}

// NewCounting creates an accounting allocator with all counters at zero.
func NewCounting() *Counting {
	return &Counting{}
}

func (c *Counting) Allocate(n int) error {
	if n < 0 {
		return errors.Errorf("alloc: negative slot count %d", n)
	}
	c.liveBuffers.Add(1)
	c.liveSlots.Add(int64(n))
	return nil
}

func (c *Counting) Release(n int) {
	if c.liveBuffers.Add(-1) < 0 || c.liveSlots.Add(-int64(n)) < 0 {
		c.overRelease.Add(1)
	}
}

// Live reports the currently outstanding buffers and slots.
func (c *Counting) Live() (buffers, slots int64) {
	return c.liveBuffers.Load(), c.liveSlots.Load()
}

// OverReleases reports how often Release was called without a matching
// Allocate. Any non-zero value indicates a double free.
func (c *Counting) OverReleases() uint64 {
	return c.overRelease.Load()
}

// ErrExhausted is returned by a Failing allocator once its budget is spent.
var ErrExhausted = errors.New("alloc: allocation budget exhausted")

// Failing grants a fixed number of allocations and denies every request
// after that. It exists for failure-injection tests; releases are always
// accepted so teardown of already-granted buffers keeps working.
type Failing struct {
	remaining atomic.Int64
}

// NewFailing creates an allocator that allows the next n allocations.
func NewFailing(n int) *Failing {
	f := &Failing{}
	f.remaining.Store(int64(n))
	return f
}

func (f *Failing) Allocate(int) error {
	if f.remaining.Add(-1) < 0 {
		return ErrExhausted
	}
	return nil
}

func (f *Failing) Release(int) {}
