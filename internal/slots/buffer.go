package slots

import (
	"github.com/pkg/errors"

	"github.com/ckettner/arrayqueue/internal/alloc"
)

// ErrMustGrow is returned by Reallocate when the requested capacity does not
// exceed the current one.
var ErrMustGrow = errors.New("slots: new capacity must exceed the current capacity")

// Buffer is a single-owner array of element slots. It does not track which
// slots are live; the owning container is responsible for calling Set and
// ClearSlot in matched pairs over its live range.
type Buffer[T any] struct {
	data []T
	mem  alloc.Allocator
}

// New obtains a buffer of the given capacity from the allocator. The
// capacity must be at least one slot.
func New[T any](capacity int, mem alloc.Allocator) (*Buffer[T], error) {
	if capacity < 1 {
		return nil, errors.Errorf("slots: capacity must be at least 1, got %d", capacity)
	}
	if err := mem.Allocate(capacity); err != nil {
		return nil, errors.Wrapf(err, "slots: allocating %d slots", capacity)
	}
	return &Buffer[T]{data: make([]T, capacity), mem: mem}, nil
}

// MustNew is New for call sites that cannot surface an error. It panics when
// the allocator refuses the request; the system allocator never does.
func MustNew[T any](capacity int, mem alloc.Allocator) *Buffer[T] {
	b, err := New[T](capacity, mem)
	if err != nil {
		panic(err)
	}
	return b
}

// Cap returns the number of slots in the buffer.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// At returns the value stored in slot i.
func (b *Buffer[T]) At(i int) T {
	return b.data[i]
}

// Set writes a live value into slot i.
func (b *Buffer[T]) Set(i int, v T) {
	b.data[i] = v
}

// ClearSlot retires slot i by storing the zero value.
func (b *Buffer[T]) ClearSlot(i int) {
	var zero T
	b.data[i] = zero
}

// MoveSlot transfers the value from slot src into slot dst and retires src.
// The previous occupant of dst is overwritten.
func (b *Buffer[T]) MoveSlot(dst, src int) {
	var zero T
	b.data[dst] = b.data[src]
	b.data[src] = zero
}

// Reallocate replaces the buffer with a strictly larger one, transferring the
// first live slots front to back. On failure the buffer is left untouched.
func (b *Buffer[T]) Reallocate(newCapacity, live int) error {
	if newCapacity <= len(b.data) {
		return ErrMustGrow
	}
	if err := b.mem.Allocate(newCapacity); err != nil {
		return errors.Wrapf(err, "slots: growing to %d slots", newCapacity)
	}

	fresh := make([]T, newCapacity)
	var zero T
	for i := 0; i < live; i++ {
		fresh[i] = b.data[i]
		b.data[i] = zero
	}

	b.mem.Release(len(b.data))
	b.data = fresh
	return nil
}

// Release retires every slot and returns the buffer to the allocator. The
// buffer must not be used afterwards.
func (b *Buffer[T]) Release() {
	if b.data == nil {
		return
	}
	var zero T
	for i := range b.data {
		b.data[i] = zero
	}
	b.mem.Release(len(b.data))
	b.data = nil
}
