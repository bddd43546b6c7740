// File: pool/manager.go
// Author: momentics <momentics@gmail.com>
//
// Capacity-classed reuse of ring buffers with transparent construction.
// All public API is storage-agnostic; the backing choice comes from Config.

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

// Config controls how pooled rings are constructed and retained.
type Config struct {
	// Mapped selects arena-backed element storage for new rings.
	Mapped bool

	// IdlePerClass bounds the rings parked per capacity class.
	// Non-positive values fall back to the default.
	IdlePerClass int
}

// DefaultConfig returns the configuration used by Default().
func DefaultConfig() Config {
	return Config{
		Mapped:       false,
		IdlePerClass: 64,
	}
}

// Manager reuses cleared ring buffers keyed by exact capacity. Capacity
// is part of the ring contract (it decides when Push reports ErrFull),
// so classes never round up.
type Manager[T any] struct {
	mu      sync.RWMutex
	classes map[int]chan *ring.Buffer[T]
	cfg     Config

	reused    atomic.Int64
	allocated atomic.Int64
	retained  atomic.Int64
	released  atomic.Int64
}

// NewManager creates a manager with the given configuration.
func NewManager[T any](cfg Config) *Manager[T] {
	if cfg.IdlePerClass <= 0 {
		cfg.IdlePerClass = DefaultConfig().IdlePerClass
	}
	return &Manager[T]{
		classes: make(map[int]chan *ring.Buffer[T]),
		cfg:     cfg,
	}
}

// class obtains or creates the idle list for one capacity.
func (m *Manager[T]) class(capacity int) chan *ring.Buffer[T] {
	m.mu.RLock()
	ch, ok := m.classes[capacity]
	m.mu.RUnlock()
	if ok {
		return ch
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if ch, ok := m.classes[capacity]; ok {
		return ch
	}
	ch = make(chan *ring.Buffer[T], m.cfg.IdlePerClass)
	m.classes[capacity] = ch
	return ch
}

// Get returns an empty ring holding exactly capacity elements, reusing
// an idle one when available.
func (m *Manager[T]) Get(capacity int) (*ring.Buffer[T], error) {
	if capacity <= 0 {
		return nil, api.ErrInvalidArgument
	}
	select {
	case b := <-m.class(capacity):
		m.reused.Add(1)
		return b, nil
	default:
	}
	var (
		b   *ring.Buffer[T]
		err error
	)
	if m.cfg.Mapped {
		b, err = ring.NewMapped[T](capacity)
	} else {
		b, err = ring.New[T](capacity)
	}
	if err != nil {
		return nil, err
	}
	m.allocated.Add(1)
	return b, nil
}

// Put clears b and parks it for reuse. When the class is saturated the
// ring is closed instead. Nil and closed rings are rejected.
func (m *Manager[T]) Put(b *ring.Buffer[T]) error {
	if b == nil || b.Cap() == 0 {
		return api.ErrInvalidArgument
	}
	if err := b.Clear(); err != nil {
		return err
	}
	select {
	case m.class(b.Cap()) <- b:
		m.retained.Add(1)
		return nil
	default:
		m.released.Add(1)
		return b.Close()
	}
}

// Stats snapshots reuse accounting across all capacity classes.
func (m *Manager[T]) Stats() api.PoolStats {
	idle := make(map[int]int64)
	m.mu.RLock()
	for capacity, ch := range m.classes {
		idle[capacity] = int64(len(ch))
	}
	m.mu.RUnlock()
	return api.PoolStats{
		Reused:    m.reused.Load(),
		Allocated: m.allocated.Load(),
		Retained:  m.retained.Load(),
		Released:  m.released.Load(),
		Idle:      idle,
	}
}
