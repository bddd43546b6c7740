// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug handler and probe reflector for internal inspection.

package control

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Debug = (*Probes)(nil)

// Probes holds registered probe functions.
type Probes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewProbes creates a probe registry.
func NewProbes() *Probes {
	return &Probes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook.
func (p *Probes) RegisterProbe(name string, fn func() any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.probes[name] = fn
}

// DumpState returns output of all probes.
func (p *Probes) DumpState() map[string]any {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]any)
	for k, fn := range p.probes {
		out[k] = fn()
	}
	return out
}

// RingState is one probe observation of a ring.
type RingState struct {
	Len   int
	Cap   int
	Empty bool
	Full  bool
}

// RingProbe adapts a ring into a probe function for RegisterProbe.
// The probe reads the ring without synchronization; register probes
// only for rings whose owner coordinates the reads.
func RingProbe[T any](r api.Ring[T]) func() any {
	return func() any {
		return RingState{
			Len:   r.Len(),
			Cap:   r.Cap(),
			Empty: r.Empty(),
			Full:  r.Full(),
		}
	}
}
