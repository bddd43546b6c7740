// File: adapters/instrumented.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Instrumented ring glue: forwards every call to the wrapped ring and
// feeds outcome counters into a Collector.

package adapters

import (
	"errors"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
)

// Counter names fed into the Collector.
const (
	MetricPush    = "ring.push"
	MetricPop     = "ring.pop"
	MetricFull    = "ring.full"
	MetricEmpty   = "ring.empty"
	MetricClear   = "ring.clear"
	MetricDrained = "ring.drained"
	MetricFilled  = "ring.filled"
	MetricPeeked  = "ring.peeked"
)

// Ensure compile-time interface compliance.
var _ api.BulkRing[any] = (*Instrumented[any])(nil)

// Instrumented counts ring outcomes. It adds no synchronization of its
// own; the wrapped ring keeps its single-owner contract while the
// Collector may be read from anywhere.
type Instrumented[T any] struct {
	ring    api.BulkRing[T]
	metrics api.Collector
}

// NewInstrumented wraps ring so its operations report into metrics.
// A nil metrics gets a fresh control.Metrics.
func NewInstrumented[T any](ring api.BulkRing[T], metrics api.Collector) *Instrumented[T] {
	if metrics == nil {
		metrics = control.NewMetrics()
	}
	return &Instrumented[T]{ring: ring, metrics: metrics}
}

// Metrics exposes the collector receiving the counters.
func (ir *Instrumented[T]) Metrics() api.Collector {
	return ir.metrics
}

func (ir *Instrumented[T]) Push(item T) error {
	err := ir.ring.Push(item)
	switch {
	case err == nil:
		ir.metrics.Add(MetricPush, 1)
	case errors.Is(err, api.ErrFull):
		ir.metrics.Add(MetricFull, 1)
	}
	return err
}

func (ir *Instrumented[T]) Pop() (T, error) {
	v, err := ir.ring.Pop()
	switch {
	case err == nil:
		ir.metrics.Add(MetricPop, 1)
	case errors.Is(err, api.ErrEmpty):
		ir.metrics.Add(MetricEmpty, 1)
	}
	return v, err
}

func (ir *Instrumented[T]) Clear() error {
	err := ir.ring.Clear()
	if err == nil {
		ir.metrics.Add(MetricClear, 1)
	}
	return err
}

func (ir *Instrumented[T]) Len() int    { return ir.ring.Len() }
func (ir *Instrumented[T]) Cap() int    { return ir.ring.Cap() }
func (ir *Instrumented[T]) Empty() bool { return ir.ring.Empty() }
func (ir *Instrumented[T]) Full() bool  { return ir.ring.Full() }

func (ir *Instrumented[T]) Drain(dst []T, offset int) (int, error) {
	n, err := ir.ring.Drain(dst, offset)
	if err == nil && n > 0 {
		ir.metrics.Add(MetricDrained, int64(n))
	}
	return n, err
}

func (ir *Instrumented[T]) Fill(src []T, offset int) (int, error) {
	n, err := ir.ring.Fill(src, offset)
	if err == nil && n > 0 {
		ir.metrics.Add(MetricFilled, int64(n))
	}
	return n, err
}

func (ir *Instrumented[T]) Peek(dst []T, offset, from int) (int, error) {
	n, err := ir.ring.Peek(dst, offset, from)
	if err == nil && n > 0 {
		ir.metrics.Add(MetricPeeked, int64(n))
	}
	return n, err
}
