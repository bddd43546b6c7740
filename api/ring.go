// Package api
// Author: momentics@gmail.com
//
// Fixed-capacity ring buffer contracts for single-owner producer/consumer use.

package api

// Ring is a bounded FIFO ring buffer contract.
// Implementations do no internal locking; sharing one instance across
// goroutines requires external mutual exclusion.
type Ring[T any] interface {
    // Push stores an item, returns ErrFull if no slot is free.
    Push(item T) error
    // Pop removes and returns the oldest item, ErrEmpty if none.
    Pop() (T, error)
    // Clear logically empties the buffer, capacity is kept.
    Clear() error
    // Len returns current number of items.
    Len() int
    // Cap returns buffer capacity, negative when unbounded.
    Cap() int
    // Empty reports whether no items are stored.
    Empty() bool
    // Full reports whether no free slot remains.
    Full() bool
}

// BulkRing extends Ring with windowed bulk transfers.
type BulkRing[T any] interface {
    Ring[T]
    // Drain pops oldest-first into dst[offset:] and returns the count moved.
    Drain(dst []T, offset int) (int, error)
    // Fill pushes src[offset:] until full or exhausted and returns the count stored.
    Fill(src []T, offset int) (int, error)
    // Peek copies items starting from positions past the oldest into
    // dst[offset:] without consuming them, and returns the count copied.
    Peek(dst []T, offset, from int) (int, error)
}
