//go:build windows

// File: internal/arena/arena_windows.go
// Author: momentics <momentics@gmail.com>
//
// Committed private pages via VirtualAlloc.

package arena

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// region is one committed VirtualAlloc reservation.
type region struct {
	addr uintptr
	mem  []byte
}

func mapRegion(size int) (*region, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	mem := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return &region{addr: addr, mem: mem}, nil
}

func (r *region) release() error {
	addr := r.addr
	r.addr = 0
	r.mem = nil
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
