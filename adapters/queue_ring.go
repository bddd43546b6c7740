// File: adapters/queue_ring.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Unbounded ring adapter over eapache/queue for overflow-tolerant staging.
// Хранилище растёт по мере добавления, Push никогда не сообщает ErrFull.

package adapters

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.BulkRing[any] = (*QueueRing[any])(nil)

// QueueRing adapts the eapache growable ring as api.BulkRing. It keeps
// the same single-owner contract as the fixed ring: no internal locking.
type QueueRing[T any] struct {
	q *queue.Queue
}

// NewQueueRing creates an empty unbounded ring.
func NewQueueRing[T any]() *QueueRing[T] {
	return &QueueRing[T]{q: queue.New()}
}

// Push stores item; an unbounded ring is never full.
func (r *QueueRing[T]) Push(item T) error {
	if r == nil || r.q == nil {
		return api.ErrInvalidArgument
	}
	r.q.Add(item)
	return nil
}

// Pop removes and returns the oldest item, ErrEmpty if none.
func (r *QueueRing[T]) Pop() (T, error) {
	var zero T
	if r == nil || r.q == nil {
		return zero, api.ErrInvalidArgument
	}
	if r.q.Length() == 0 {
		return zero, api.ErrEmpty
	}
	v, ok := r.q.Remove().(T)
	if !ok {
		// Only a nil interface element can fail the assertion, and the
		// zero value of T is exactly that nil.
		return zero, nil
	}
	return v, nil
}

// Clear removes every element.
func (r *QueueRing[T]) Clear() error {
	if r == nil || r.q == nil {
		return api.ErrInvalidArgument
	}
	for r.q.Length() > 0 {
		r.q.Remove()
	}
	return nil
}

// Len returns current number of items.
func (r *QueueRing[T]) Len() int {
	if r == nil || r.q == nil {
		return 0
	}
	return r.q.Length()
}

// Cap is negative: capacity is unbounded.
func (r *QueueRing[T]) Cap() int {
	return -1
}

// Empty reports whether no items are stored.
func (r *QueueRing[T]) Empty() bool {
	return r.Len() == 0
}

// Full is always false for an unbounded ring.
func (r *QueueRing[T]) Full() bool {
	return false
}

// Drain pops oldest-first into dst[offset:] and returns the count
// moved, zero-filling all of dst first.
func (r *QueueRing[T]) Drain(dst []T, offset int) (int, error) {
	if r == nil || r.q == nil || len(dst) == 0 || offset < 0 {
		return 0, api.ErrInvalidArgument
	}
	var zero T
	for i := range dst {
		dst[i] = zero
	}
	count := 0
	for r.q.Length() > 0 && offset+count < len(dst) {
		v, _ := r.q.Remove().(T)
		dst[offset+count] = v
		count++
	}
	return count, nil
}

// Fill pushes src[offset:]; an unbounded ring accepts the whole window.
func (r *QueueRing[T]) Fill(src []T, offset int) (int, error) {
	if r == nil || r.q == nil || offset < 0 {
		return 0, api.ErrInvalidArgument
	}
	count := 0
	for offset+count < len(src) {
		r.q.Add(src[offset+count])
		count++
	}
	return count, nil
}

// Peek copies without consuming, with the same window contract as the
// fixed ring: min(len(dst)-offset, Len()-from) elements, dst zeroed.
func (r *QueueRing[T]) Peek(dst []T, offset, from int) (int, error) {
	if r == nil || r.q == nil || len(dst) == 0 || offset < 0 || from < 0 {
		return 0, api.ErrInvalidArgument
	}
	var zero T
	for i := range dst {
		dst[i] = zero
	}
	n := len(dst) - offset
	if m := r.q.Length() - from; m < n {
		n = m
	}
	if n <= 0 {
		return 0, nil
	}
	for i := 0; i < n; i++ {
		v, _ := r.q.Get(from + i).(T)
		dst[offset+i] = v
	}
	return n, nil
}
