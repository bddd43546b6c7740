// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines pooling accounting shared by ring reuse layers.

package api

// PoolStats aggregates ring allocation/reuse stats.
type PoolStats struct {
	// Reused counts Get calls satisfied from an idle ring.
	Reused int64

	// Allocated counts Get calls that constructed a fresh ring.
	Allocated int64

	// Retained counts Put calls that parked the ring for reuse.
	Retained int64

	// Released counts Put calls that closed the ring instead.
	Released int64

	// Idle maps capacity class to the number of parked rings.
	Idle map[int]int64
}
