// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer.
// Part of hioload-ring observability surface; the core buffer never
// reports here on its own, instrumentation is attached explicitly.
//
// Provides concurrent-safe state handling primitives including:
//   - Named operation counters with snapshot reads
//   - State export, debug hooks, and probe registration
//   - Ring state probes for live inspection
package control
