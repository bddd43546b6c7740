//go:build linux
// +build linux

// File: internal/arena/arena_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Anonymous private mappings via mmap.

package arena

import "golang.org/x/sys/unix"

// region is one anonymous mapping.
type region struct {
	mem []byte
}

func mapRegion(size int) (*region, error) {
	mem, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, err
	}
	return &region{mem: mem}, nil
}

func (r *region) release() error {
	mem := r.mem
	r.mem = nil
	return unix.Munmap(mem)
}
