// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for ring instrumentation.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Collector = (*Metrics)(nil)

// Metrics holds named operation counters.
type Metrics struct {
	mu       sync.RWMutex
	counters map[string]int64
	updated  time.Time
}

// NewMetrics creates an empty counter set.
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
	}
}

// Add increments a counter by delta, creating it on first use.
func (m *Metrics) Add(name string, delta int64) {
	m.mu.Lock()
	m.counters[name] += delta
	m.updated = time.Now()
	m.mu.Unlock()
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() map[string]int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]int64, len(m.counters))
	for k, v := range m.counters {
		out[k] = v
	}
	return out
}

// Reset drops all counters.
func (m *Metrics) Reset() {
	m.mu.Lock()
	m.counters = make(map[string]int64)
	m.updated = time.Now()
	m.mu.Unlock()
}

// Updated returns the time of the last counter mutation.
func (m *Metrics) Updated() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.updated
}
