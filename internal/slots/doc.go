// Package slots owns the contiguous backing storage of a queue. A Buffer is a
// fixed number of element slots obtained from an allocator; slots holding a
// live value are written with Set and retired with ClearSlot, and the two
// must stay strictly paired so that every slot outside the live range holds
// the zero value of the element type.
//
// Zeroing a retired slot is the Go equivalent of destroying the element: it
// drops every reference the old value held so the garbage collector can
// reclaim what the element pointed at, even while the buffer itself stays
// allocated.
//
// Growth replaces the buffer wholesale. Reallocate obtains a larger buffer,
// transfers the live prefix slot by slot (zeroing each source slot after its
// transfer) and returns the old buffer to the allocator, so at most two
// buffers exist transiently and exactly one survives.
package slots
