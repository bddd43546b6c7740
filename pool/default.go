package pool

import (
	"sync"

	"github.com/momentics/hioload-ring/ring"
)

var (
	defaultOnce sync.Once
	defaultMgr  *Manager[any]
)

// Default returns a process-wide Manager so all components reuse the
// same capacity classes instead of fragmenting allocations.
func Default() *Manager[any] {
	defaultOnce.Do(func() {
		defaultMgr = NewManager[any](DefaultConfig())
	})
	return defaultMgr
}

// DefaultRing is a shortcut to fetch a ring from the default manager.
func DefaultRing(capacity int) (*ring.Buffer[any], error) {
	return Default().Get(capacity)
}
