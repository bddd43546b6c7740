package adapters_test

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-ring/adapters"
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/ring"
)

func TestInstrumentedCountsOutcomes(t *testing.T) {
	b, err := ring.New[int](2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer b.Close()

	metrics := control.NewMetrics()
	ir := adapters.NewInstrumented[int](b, metrics)

	ir.Push(1)
	ir.Push(2)
	ir.Push(3) // ErrFull
	ir.Pop()
	ir.Pop()
	ir.Pop() // ErrEmpty
	ir.Clear()

	snap := metrics.Snapshot()
	want := map[string]int64{
		adapters.MetricPush:  2,
		adapters.MetricFull:  1,
		adapters.MetricPop:   2,
		adapters.MetricEmpty: 1,
		adapters.MetricClear: 1,
	}
	for name, count := range want {
		if snap[name] != count {
			t.Errorf("%s: want %d, got %d", name, count, snap[name])
		}
	}
}

func TestInstrumentedCountsBulkVolumes(t *testing.T) {
	b, err := ring.New[int](4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer b.Close()

	ir := adapters.NewInstrumented[int](b, nil)

	if n, err := ir.Fill([]int{1, 2, 3}, 0); err != nil || n != 3 {
		t.Fatalf("Fill: n=%d err=%v", n, err)
	}
	dst := make([]int, 2)
	if n, err := ir.Peek(dst, 0, 0); err != nil || n != 2 {
		t.Fatalf("Peek: n=%d err=%v", n, err)
	}
	if n, err := ir.Drain(dst, 0); err != nil || n != 2 {
		t.Fatalf("Drain: n=%d err=%v", n, err)
	}

	snap := ir.Metrics().Snapshot()
	if snap[adapters.MetricFilled] != 3 {
		t.Errorf("filled: want 3, got %d", snap[adapters.MetricFilled])
	}
	if snap[adapters.MetricPeeked] != 2 {
		t.Errorf("peeked: want 2, got %d", snap[adapters.MetricPeeked])
	}
	if snap[adapters.MetricDrained] != 2 {
		t.Errorf("drained: want 2, got %d", snap[adapters.MetricDrained])
	}
}

func TestInstrumentedDelegatesQueries(t *testing.T) {
	mock := &api.MockRing[int]{
		LenFunc:   func() int { return 3 },
		CapFunc:   func() int { return 8 },
		EmptyFunc: func() bool { return false },
		FullFunc:  func() bool { return false },
	}
	ir := adapters.NewInstrumented[int](mock, nil)
	if ir.Len() != 3 || ir.Cap() != 8 || ir.Empty() || ir.Full() {
		t.Error("queries must delegate to the wrapped ring")
	}
	if len(ir.Metrics().Snapshot()) != 0 {
		t.Error("queries must not produce counters")
	}
}

func TestQueueRingFIFO(t *testing.T) {
	qr := adapters.NewQueueRing[int]()
	if qr.Cap() != -1 || qr.Full() {
		t.Error("unbounded ring must report negative capacity and never full")
	}
	if !qr.Empty() {
		t.Error("fresh queue ring must be empty")
	}
	if _, err := qr.Pop(); !errors.Is(err, api.ErrEmpty) {
		t.Errorf("Pop on empty: want ErrEmpty, got %v", err)
	}
	for i := 1; i <= 3; i++ {
		if err := qr.Push(i); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	for want := 1; want <= 3; want++ {
		v, err := qr.Pop()
		if err != nil || v != want {
			t.Fatalf("Pop: want %d, got %d err %v", want, v, err)
		}
	}
}

func TestQueueRingGrowsPastAnyFixedCapacity(t *testing.T) {
	qr := adapters.NewQueueRing[int]()
	const n = 10000
	for i := 0; i < n; i++ {
		if err := qr.Push(i); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	if qr.Len() != n {
		t.Fatalf("Len: want %d, got %d", n, qr.Len())
	}
	for i := 0; i < n; i++ {
		v, err := qr.Pop()
		if err != nil || v != i {
			t.Fatalf("Pop: want %d, got %d err %v", i, v, err)
		}
	}
}

func TestQueueRingClearAndNilReceiver(t *testing.T) {
	qr := adapters.NewQueueRing[string]()
	qr.Push("a")
	qr.Push("b")
	if err := qr.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if !qr.Empty() {
		t.Error("Clear must empty the ring")
	}

	var nilRing *adapters.QueueRing[string]
	if err := nilRing.Push("x"); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("nil Push: want ErrInvalidArgument, got %v", err)
	}
	if _, err := nilRing.Pop(); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("nil Pop: want ErrInvalidArgument, got %v", err)
	}
	if nilRing.Len() != 0 || !nilRing.Empty() {
		t.Error("nil ring must read as empty")
	}
}

func TestQueueRingBulkWindows(t *testing.T) {
	qr := adapters.NewQueueRing[int]()
	if n, err := qr.Fill([]int{1, 2, 3, 4, 5}, 1); err != nil || n != 4 {
		t.Fatalf("Fill: n=%d err=%v", n, err)
	}
	dst := make([]int, 3)
	if n, err := qr.Peek(dst, 1, 1); err != nil || n != 2 {
		t.Fatalf("Peek: n=%d err=%v", n, err)
	}
	if dst[0] != 0 || dst[1] != 3 || dst[2] != 4 {
		t.Errorf("Peek window: %v", dst)
	}
	if n, err := qr.Drain(dst, 0); err != nil || n != 3 {
		t.Fatalf("Drain: n=%d err=%v", n, err)
	}
	if dst[0] != 2 || dst[1] != 3 || dst[2] != 4 {
		t.Errorf("Drain window: %v", dst)
	}
	if qr.Len() != 1 {
		t.Errorf("one element must remain, got %d", qr.Len())
	}
	if v, _ := qr.Pop(); v != 5 {
		t.Errorf("remaining element: want 5, got %d", v)
	}
}

func TestQueueRingNilInterfaceElement(t *testing.T) {
	qr := adapters.NewQueueRing[any]()
	qr.Push(nil)
	v, err := qr.Pop()
	if err != nil || v != nil {
		t.Errorf("nil element round trip: v=%v err=%v", v, err)
	}
}

func TestInstrumentedOverQueueRing(t *testing.T) {
	ir := adapters.NewInstrumented[int](adapters.NewQueueRing[int](), nil)
	for i := 0; i < 5; i++ {
		if err := ir.Push(i); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}
	snap := ir.Metrics().Snapshot()
	if snap[adapters.MetricPush] != 5 || snap[adapters.MetricFull] != 0 {
		t.Errorf("composed counters: %+v", snap)
	}
}
