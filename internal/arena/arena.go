// File: internal/arena/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Page-granular slab storage for ring buffers.
//
// Element arrays live either on the Go heap or in an anonymous region
// obtained from the platform allocator. Regions are used only for
// pointer-free element types: the collector does not scan region pages,
// so a pointer stored there would not keep its referent alive.

package arena

import (
	"math"
	"os"
	"reflect"
	"unsafe"

	"github.com/momentics/hioload-ring/api"
)

// Slab is a fixed-length element array with explicit release.
type Slab[T any] struct {
	items  []T
	region *region // nil for heap-backed slabs
}

// NewSlab returns a slab holding exactly count elements, zero-valued.
// Pointer-carrying and zero-size element types always use heap storage.
func NewSlab[T any](count int) (*Slab[T], error) {
	if count <= 0 {
		return nil, api.ErrInvalidArgument
	}
	elem := reflect.TypeFor[T]()
	size := int(elem.Size())
	if size == 0 || hasPointers(elem) {
		return &Slab[T]{items: make([]T, count)}, nil
	}
	// The byte size must stay in int range after page rounding.
	if count > (math.MaxInt-os.Getpagesize()+1)/size {
		return nil, api.NewError(api.ErrCodeOutOfMemory, "out of memory").
			WithContext("count", count).
			WithContext("elem_size", size)
	}
	reg, err := mapRegion(pageCeil(count * size))
	if err != nil {
		return nil, api.NewError(api.ErrCodeOutOfMemory, "out of memory").
			WithContext("count", count).
			WithContext("elem_size", size)
	}
	items := unsafe.Slice((*T)(unsafe.Pointer(&reg.mem[0])), count)
	return &Slab[T]{items: items, region: reg}, nil
}

// Items returns the element view. Its length equals the requested count.
// The view is invalid after Close.
func (s *Slab[T]) Items() []T {
	if s == nil {
		return nil
	}
	return s.items
}

// Mapped reports whether elements live in a platform region rather than
// on the Go heap.
func (s *Slab[T]) Mapped() bool {
	return s != nil && s.region != nil
}

// Close releases the backing storage. Closing a nil or already closed
// slab returns ErrInvalidArgument.
func (s *Slab[T]) Close() error {
	if s == nil || s.items == nil {
		return api.ErrInvalidArgument
	}
	s.items = nil
	if s.region != nil {
		reg := s.region
		s.region = nil
		return reg.release()
	}
	return nil
}

// hasPointers reports whether values of type t contain pointers the
// collector must see. Unknown kinds count as pointerful.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// pageCeil rounds n up to a whole number of pages.
func pageCeil(n int) int {
	page := os.Getpagesize()
	return ((n + page - 1) / page) * page
}
