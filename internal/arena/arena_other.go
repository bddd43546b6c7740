//go:build !linux && !windows

// File: internal/arena/arena_other.go
// Author: momentics <momentics@gmail.com>
//
// Heap fallback for platforms without a mapping backend.

package arena

type region struct {
	mem []byte
}

func mapRegion(size int) (*region, error) {
	return &region{mem: make([]byte, size)}, nil
}

func (r *region) release() error {
	r.mem = nil
	return nil
}
