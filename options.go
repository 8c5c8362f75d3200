package arrayqueue

import (
	"github.com/ckettner/arrayqueue/internal/alloc"
)

// CloneFunc produces an independent copy of an element. It is consulted by
// Clone and CopyFrom when configured; a returned error aborts the copy.
type CloneFunc[T any] func(T) (T, error)

type options[T any] struct {
	mem     alloc.Allocator
	clone   CloneFunc[T]
	initial []T
}

// Option configures a queue at construction time.
type Option[T any] func(*options[T])

// WithAllocator routes all buffer allocations of the queue through mem.
func WithAllocator[T any](mem alloc.Allocator) Option[T] {
	return func(opts *options[T]) {
		opts.mem = mem
	}
}

// WithCloneFunc installs a deep-copy hook for elements. Without it, copies
// are plain assignments and can never fail.
func WithCloneFunc[T any](fn CloneFunc[T]) Option[T] {
	return func(opts *options[T]) {
		opts.clone = fn
	}
}

// WithInitial seeds the queue with the given values, in order. The values
// pass through the regular push path, so the capacity ends up at the same
// power of two that individual pushes would have produced.
func WithInitial[T any](values ...T) Option[T] {
	return func(opts *options[T]) {
		opts.initial = append(opts.initial[:0], values...)
	}
}
