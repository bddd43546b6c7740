package api_test

import (
	"testing"

	"github.com/momentics/hioload-ring/api"
)

func TestMockRingDelegation(t *testing.T) {
	pushed := -1
	m := &api.MockRing[int]{
		PushFunc: func(v int) error { pushed = v; return nil },
		PopFunc:  func() (int, error) { return 7, nil },
		LenFunc:  func() int { return 1 },
	}
	if err := m.Push(42); err != nil || pushed != 42 {
		t.Fatalf("Push not delegated: err=%v pushed=%d", err, pushed)
	}
	v, err := m.Pop()
	if err != nil || v != 7 {
		t.Fatalf("Pop not delegated: v=%d err=%v", v, err)
	}
	if m.Len() != 1 {
		t.Error("Len not delegated")
	}
}

func TestRingInterfaceCompliance(t *testing.T) {
	var _ api.BulkRing[int] = (*api.MockRing[int])(nil)
	var _ api.Ring[string] = (*api.MockRing[string])(nil)
	var _ api.BulkRing[int] = (*staticRing)(nil)
}

// staticRing реализует api.BulkRing для проверки интерфейса
type staticRing struct{}

func (*staticRing) Push(int) error                    { return nil }
func (*staticRing) Pop() (int, error)                 { return 0, api.ErrEmpty }
func (*staticRing) Clear() error                      { return nil }
func (*staticRing) Len() int                          { return 0 }
func (*staticRing) Cap() int                          { return 0 }
func (*staticRing) Empty() bool                       { return true }
func (*staticRing) Full() bool                        { return false }
func (*staticRing) Drain([]int, int) (int, error)     { return 0, nil }
func (*staticRing) Fill([]int, int) (int, error)      { return 0, nil }
func (*staticRing) Peek([]int, int, int) (int, error) { return 0, nil }
