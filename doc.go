// Package arrayqueue provides a generic FIFO queue backed by one contiguous
// buffer with explicit element lifecycle management. Slot 0 is the front of
// the queue and slot Len()-1 the back; retired slots always hold the zero
// value so no popped element keeps its references alive.
//
// The container has value semantics. Clone and CopyFrom produce deep,
// independent copies sized to the source's capacity; Move and MoveFrom
// transfer the buffer wholesale and leave the source as a valid empty queue
// at InitialCapacity. Capacity doubles on demand, starting at one slot, and
// never shrinks.
//
// Buffer allocations go through an allocator abstraction. The default system
// allocator cannot fail; tests inject accounting or failing allocators to
// verify the single-owner buffer discipline and the propagation of
// allocation failures.
//
// The queue performs no internal synchronisation. Instances shared between
// goroutines must be protected externally.
package arrayqueue
