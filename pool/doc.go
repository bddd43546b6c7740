// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reuse layer for hioload-ring buffers.
// Implements capacity-classed ring managers, scratch slice pooling, and a process-wide default.
// Managers are safe for concurrent use; the rings they hand out stay single-owner.
// See manager.go, objpool.go for implementation details.
package pool
