// File: ring/ring.go
// Package ring implements the fixed-capacity circular buffer.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer is a bounded FIFO over a fixed element array. Two cursors walk
// the array with wraparound: tail names the oldest element, head the
// newest. Cursors move only on the transitions that need them, so an
// empty buffer keeps head == tail.

package ring

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/arena"
)

// Ensure compile-time interface compliance.
var _ api.BulkRing[any] = (*Buffer[any])(nil)

// Buffer is a fixed-capacity circular buffer. The zero value is
// unusable; construct with New or NewMapped and release with Close.
type Buffer[T any] struct {
	data   []T
	slab   *arena.Slab[T] // non-nil when storage is arena-backed
	head   int            // most-recently-written slot
	tail   int            // oldest unread slot
	length int
}

// New allocates a heap-backed buffer holding up to capacity elements.
func New[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "invalid argument").
			WithContext("capacity", capacity)
	}
	return &Buffer[T]{data: make([]T, capacity)}, nil
}

// NewMapped allocates the element array from the platform arena.
// Pointer-carrying element types transparently fall back to the heap.
// Fails with ErrOutOfMemory when the platform rejects the mapping.
func NewMapped[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "invalid argument").
			WithContext("capacity", capacity)
	}
	slab, err := arena.NewSlab[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Buffer[T]{data: slab.Items(), slab: slab}, nil
}

// Close releases the element storage. Any further use of the buffer,
// including a second Close, returns ErrInvalidArgument.
func (b *Buffer[T]) Close() error {
	if b == nil || b.data == nil {
		return api.ErrInvalidArgument
	}
	b.data = nil
	b.head, b.tail, b.length = 0, 0, 0
	if b.slab != nil {
		slab := b.slab
		b.slab = nil
		return slab.Close()
	}
	return nil
}

// Push stores item as the newest element, ErrFull when no slot is free.
func (b *Buffer[T]) Push(item T) error {
	if b == nil || b.data == nil {
		return api.ErrInvalidArgument
	}
	if b.length == len(b.data) {
		return api.ErrFull
	}
	// Head advances before the write except into an empty buffer,
	// whose head already names the free slot.
	if b.length > 0 {
		b.head = (b.head + 1) % len(b.data)
	}
	b.data[b.head] = item
	b.length++
	return nil
}

// Pop removes and returns the oldest element, ErrEmpty when none.
func (b *Buffer[T]) Pop() (T, error) {
	var zero T
	if b == nil || b.data == nil {
		return zero, api.ErrInvalidArgument
	}
	if b.length == 0 {
		return zero, api.ErrEmpty
	}
	item := b.data[b.tail]
	b.data[b.tail] = zero
	// Tail stays parked when the last element leaves, so an empty
	// buffer always has head == tail.
	if b.length > 1 {
		b.tail = (b.tail + 1) % len(b.data)
	}
	b.length--
	return item, nil
}

// Clear logically empties the buffer and rewinds both cursors.
// Slots are reset to the zero value; referenced data is untouched.
func (b *Buffer[T]) Clear() error {
	if b == nil || b.data == nil {
		return api.ErrInvalidArgument
	}
	var zero T
	for i := range b.data {
		b.data[i] = zero
	}
	b.head, b.tail, b.length = 0, 0, 0
	return nil
}

// Len returns the element count. Nil and closed buffers read as zero.
func (b *Buffer[T]) Len() int {
	if b == nil {
		return 0
	}
	return b.length
}

// Cap returns the slot count fixed at construction, zero once closed.
func (b *Buffer[T]) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Empty reports whether no elements are stored.
func (b *Buffer[T]) Empty() bool {
	return b.Len() == 0
}

// Full reports whether every slot is occupied.
func (b *Buffer[T]) Full() bool {
	return b != nil && b.data != nil && b.length == len(b.data)
}

// Mapped reports whether the element array lives in a platform region.
func (b *Buffer[T]) Mapped() bool {
	return b != nil && b.slab != nil && b.slab.Mapped()
}
