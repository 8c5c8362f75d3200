package arrayqueue

import (
	"time"

	"github.com/pkg/errors"

	"github.com/ckettner/arrayqueue/internal/alloc"
	"github.com/ckettner/arrayqueue/internal/slots"
	"github.com/ckettner/arrayqueue/internal/telemetry"
)

// InitialCapacity is the slot count of a freshly constructed queue and of a
// queue that has just been moved from.
const InitialCapacity = 1

// ErrEmptyQueue is returned by Front and Back when the queue holds no elements.
var ErrEmptyQueue = errors.New("arrayqueue: queue is empty")

// ErrInvalidCapacity is returned when a growth request does not exceed the
// current capacity.
var ErrInvalidCapacity = errors.New("arrayqueue: new capacity must exceed the current capacity")

// Queue is a FIFO container over a single contiguous buffer. The front lives
// in slot 0 and the back in slot Len()-1; pushing appends at the back and
// popping removes the front, shifting every survivor one slot forward.
//
// The capacity starts at InitialCapacity, doubles whenever a push finds the
// buffer full, and never shrinks for the lifetime of the instance; only
// moving from a queue resets it. Pop is O(Len()); the contiguous layout is
// a deliberate trade against a ring buffer.
//
// A Queue is not safe for concurrent use. Callers sharing one across
// goroutines must serialise access externally, for example with a mutex.
type Queue[T any] struct {
	buf   *slots.Buffer[T]
	size  int
	mem   alloc.Allocator
	clone CloneFunc[T]
}

// New creates an empty queue with capacity InitialCapacity. It panics when
// a configured allocator refuses the initial buffer; the default system
// allocator never fails.
func New[T any](opts ...Option[T]) *Queue[T] {
	q, err := NewWith(opts...)
	if err != nil {
		panic(err)
	}
	return q
}

// NewWith is New with the allocator failure surfaced as an error.
func NewWith[T any](opts ...Option[T]) (*Queue[T], error) {
	cfg := options[T]{mem: alloc.System{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	buf, err := slots.New[T](InitialCapacity, cfg.mem)
	if err != nil {
		return nil, err
	}

	q := &Queue[T]{buf: buf, mem: cfg.mem, clone: cfg.clone}
	for _, v := range cfg.initial {
		if err := q.Push(v); err != nil {
			q.Release()
			return nil, err
		}
	}
	return q, nil
}

// Move constructs a queue by adopting src's buffer wholesale, without
// touching individual elements. src is reset to a fresh empty buffer of
// InitialCapacity and remains fully usable.
func Move[T any](src *Queue[T]) *Queue[T] {
	q := &Queue[T]{buf: src.buf, size: src.size, mem: src.mem, clone: src.clone}
	src.buf = slots.MustNew[T](InitialCapacity, src.mem)
	src.size = 0
	return q
}

// Len returns the number of elements currently stored in the queue.
func (q *Queue[T]) Len() int {
	return q.size
}

// Cap returns the number of allocated slots.
func (q *Queue[T]) Cap() int {
	return q.buf.Cap()
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.size == 0
}

// Front returns the oldest element. It fails with ErrEmptyQueue when the
// queue is empty.
func (q *Queue[T]) Front() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmptyQueue
	}
	return q.buf.At(0), nil
}

// Back returns the newest element. It fails with ErrEmptyQueue when the
// queue is empty.
func (q *Queue[T]) Back() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmptyQueue
	}
	return q.buf.At(q.size - 1), nil
}

// MustFront is Front for callers that have already checked Empty. It panics
// with ErrEmptyQueue on an empty queue.
func (q *Queue[T]) MustFront() T {
	v, err := q.Front()
	if err != nil {
		panic(err)
	}
	return v
}

// MustBack is Back for callers that have already checked Empty. It panics
// with ErrEmptyQueue on an empty queue.
func (q *Queue[T]) MustBack() T {
	v, err := q.Back()
	if err != nil {
		panic(err)
	}
	return v
}

// Push appends a value at the back of the queue, doubling the capacity first
// when the buffer is full. The only possible failure is the allocator
// refusing the larger buffer, in which case the queue is left unchanged.
func (q *Queue[T]) Push(v T) error {
	if q.size == q.buf.Cap() {
		if err := q.grow(q.buf.Cap() * 2); err != nil {
			return err
		}
	}
	q.buf.Set(q.size, v)
	q.size++
	return nil
}

// Pop removes the front element and shifts every remaining element one slot
// forward, retiring each vacated slot. Popping an empty queue is a no-op.
func (q *Queue[T]) Pop() {
	if q.size == 0 {
		return
	}

	q.buf.ClearSlot(0)
	for i := 0; i < q.size-1; i++ {
		q.buf.MoveSlot(i, i+1)
	}
	q.size--
}

// Clear retires all live slots and resets the length to zero. The capacity
// is retained.
func (q *Queue[T]) Clear() {
	for i := 0; i < q.size; i++ {
		q.buf.ClearSlot(i)
	}
	q.size = 0
}

// Snapshot returns a copy of the live elements in FIFO order, or nil when
// the queue is empty.
func (q *Queue[T]) Snapshot() []T {
	if q.size == 0 {
		return nil
	}
	result := make([]T, 0, q.size)
	for i := 0; i < q.size; i++ {
		result = append(result, q.buf.At(i))
	}
	return result
}

// Clone creates an independent copy of the queue. The copy's buffer is sized
// to the source's capacity, not its length, so both instances share the same
// growth trajectory. Elements pass through the configured CloneFunc when one
// is installed; on a clone failure nothing leaks and no copy is returned.
func (q *Queue[T]) Clone() (*Queue[T], error) {
	buf, err := slots.New[T](q.buf.Cap(), q.mem)
	if err != nil {
		return nil, err
	}
	if err := q.copyInto(buf); err != nil {
		buf.Release()
		return nil, err
	}
	return &Queue[T]{buf: buf, size: q.size, mem: q.mem, clone: q.clone}, nil
}

// CopyFrom replaces the queue's contents with a copy of other. Assigning a
// queue to itself is a no-op. The replacement buffer is built completely
// before the old state is torn down, so a failed copy leaves the queue
// untouched.
func (q *Queue[T]) CopyFrom(other *Queue[T]) error {
	if q == other {
		return nil
	}

	fresh, err := slots.New[T](other.buf.Cap(), q.mem)
	if err != nil {
		return err
	}
	if err := other.copyInto(fresh); err != nil {
		fresh.Release()
		return err
	}

	q.buf.Release()
	q.buf = fresh
	q.size = other.size
	return nil
}

// MoveFrom adopts other's buffer, length and capacity without element-wise
// copying, releasing the queue's previous buffer first. other is reset to a
// fresh empty buffer of InitialCapacity and remains fully usable. Moving a
// queue onto itself is a no-op.
func (q *Queue[T]) MoveFrom(other *Queue[T]) {
	if q == other {
		return
	}

	q.buf.Release()
	q.buf = other.buf
	q.size = other.size

	other.buf = slots.MustNew[T](InitialCapacity, other.mem)
	other.size = 0
}

// Release retires all live slots and returns the buffer to the allocator.
// The queue must not be used afterwards.
func (q *Queue[T]) Release() {
	q.Clear()
	q.buf.Release()
}

// copyInto copies the live elements into dst front to back, consulting the
// clone hook when configured. dst must have capacity for q.size elements.
func (q *Queue[T]) copyInto(dst *slots.Buffer[T]) error {
	for i := 0; i < q.size; i++ {
		v := q.buf.At(i)
		if q.clone != nil {
			var err error
			if v, err = q.clone(v); err != nil {
				return errors.Wrapf(err, "arrayqueue: cloning element %d", i)
			}
		}
		dst.Set(i, v)
	}
	return nil
}

// grow replaces the buffer with one of newCapacity slots, transferring the
// live elements. newCapacity must exceed the current capacity.
func (q *Queue[T]) grow(newCapacity int) error {
	finish := telemetry.TraceGrowth()
	err := q.buf.Reallocate(newCapacity, q.size)
	finish(q.size, err)
	if errors.Is(err, slots.ErrMustGrow) {
		return ErrInvalidCapacity
	}
	return err
}

// GrowthStats reports the process-wide reallocation counters: how many
// growth attempts ran, how many failed, how many slots were transferred and
// the average duration per attempt.
func GrowthStats() (reallocations, failures, slotsMoved uint64, average time.Duration) {
	return telemetry.DefaultGrowthMetrics().Snapshot()
}
