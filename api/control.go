// File: api/control.go
// Package api defines Collector interface.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Collector accumulates named operation counters.
type Collector interface {
	Add(name string, delta int64)
	Snapshot() map[string]int64
	Reset()
}
