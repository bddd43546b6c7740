// Package api
// Author: momentics
//
// Mock/testing utilities for all core contracts; extendable for new interfaces.

package api

// MockRing is a test and mock-friendly implementation of BulkRing.
type MockRing[T any] struct {
	PushFunc  func(T) error
	PopFunc   func() (T, error)
	ClearFunc func() error
	LenFunc   func() int
	CapFunc   func() int
	EmptyFunc func() bool
	FullFunc  func() bool
	DrainFunc func([]T, int) (int, error)
	FillFunc  func([]T, int) (int, error)
	PeekFunc  func([]T, int, int) (int, error)
}

func (m *MockRing[T]) Push(item T) error                      { return m.PushFunc(item) }
func (m *MockRing[T]) Pop() (T, error)                        { return m.PopFunc() }
func (m *MockRing[T]) Clear() error                           { return m.ClearFunc() }
func (m *MockRing[T]) Len() int                               { return m.LenFunc() }
func (m *MockRing[T]) Cap() int                               { return m.CapFunc() }
func (m *MockRing[T]) Empty() bool                            { return m.EmptyFunc() }
func (m *MockRing[T]) Full() bool                             { return m.FullFunc() }
func (m *MockRing[T]) Drain(dst []T, offset int) (int, error) { return m.DrainFunc(dst, offset) }
func (m *MockRing[T]) Fill(src []T, offset int) (int, error)  { return m.FillFunc(src, offset) }
func (m *MockRing[T]) Peek(dst []T, offset, from int) (int, error) {
	return m.PeekFunc(dst, offset, from)
}

// Extend with mocks for additional contracts as the architecture evolves.
