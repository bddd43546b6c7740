// File: ring/bulk.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windowed bulk transfers between a Buffer and caller slices. Drain and
// Fill repeat the single-element cursor rules exactly, so interleaving
// bulk and scalar calls observes one coherent FIFO.

package ring

import "github.com/momentics/hioload-ring/api"

// Drain pops oldest-first into dst[offset:] and returns the count moved.
//
// All of dst is reset to the zero value first, the region before offset
// included. Movement stops when the buffer empties or dst runs out; an
// offset at or past len(dst) moves nothing. dst must be non-empty and
// offset non-negative.
func (b *Buffer[T]) Drain(dst []T, offset int) (int, error) {
	if b == nil || b.data == nil || len(dst) == 0 || offset < 0 {
		return 0, api.ErrInvalidArgument
	}
	var zero T
	for i := range dst {
		dst[i] = zero
	}
	count := 0
	for b.length > 0 && offset+count < len(dst) {
		dst[offset+count] = b.data[b.tail]
		b.data[b.tail] = zero
		if b.length > 1 {
			b.tail = (b.tail + 1) % len(b.data)
		}
		b.length--
		count++
	}
	return count, nil
}

// Fill pushes src[offset:] until the buffer fills or src is exhausted
// and returns the count stored. An empty src stores nothing; an offset
// at or past len(src) stores nothing. offset must be non-negative.
func (b *Buffer[T]) Fill(src []T, offset int) (int, error) {
	if b == nil || b.data == nil || offset < 0 {
		return 0, api.ErrInvalidArgument
	}
	count := 0
	for b.length < len(b.data) && offset+count < len(src) {
		if b.length > 0 {
			b.head = (b.head + 1) % len(b.data)
		}
		b.data[b.head] = src[offset+count]
		b.length++
		count++
	}
	return count, nil
}

// Peek copies elements into dst[offset:] without consuming them and
// returns the count copied. The window starts from positions past the
// oldest element and spans min(len(dst)-offset, Len()-from) elements,
// clamped at zero. All of dst is reset to the zero value first. Cursors
// and length do not move. dst must be non-empty, offset and from
// non-negative.
func (b *Buffer[T]) Peek(dst []T, offset, from int) (int, error) {
	if b == nil || b.data == nil || len(dst) == 0 || offset < 0 || from < 0 {
		return 0, api.ErrInvalidArgument
	}
	var zero T
	for i := range dst {
		dst[i] = zero
	}
	n := len(dst) - offset
	if m := b.length - from; m < n {
		n = m
	}
	if n <= 0 {
		return 0, nil
	}
	i := (b.tail + from) % len(b.data)
	for count := 0; count < n; count++ {
		dst[offset+count] = b.data[i]
		i = (i + 1) % len(b.data)
	}
	return n, nil
}
