// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import "sync"

// Scratch pools fixed-length slices for drain/fill windows so repeated
// bulk transfers do not reallocate their destinations.
type Scratch[T any] struct {
    pool *sync.Pool
    size int
}

// NewScratch creates a pool of slices holding exactly size elements.
func NewScratch[T any](size int) *Scratch[T] {
    if size <= 0 {
        size = 1
    }
    return &Scratch[T]{
        pool: &sync.Pool{New: func() any { return make([]T, size) }},
        size: size,
    }
}

// Get returns a slice of the configured length. Contents are stale.
func (s *Scratch[T]) Get() []T {
    return s.pool.Get().([]T)
}

// Put returns a slice for reuse. Slices of the wrong length are dropped.
func (s *Scratch[T]) Put(buf []T) {
    if len(buf) != s.size {
        return
    }
    s.pool.Put(buf)
}
