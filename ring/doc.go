// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity circular buffer over opaque elements.
// Part of hioload-ring low-level data plane primitives.
//
// Provides single-owner FIFO staging including:
//   - Push/Pop with wraparound cursors
//   - Bulk drain and fill windows over caller slices
//   - Non-destructive peek at any logical position
//   - Heap-backed or page-mapped element storage
//
// Instances carry no internal locking; sharing one buffer across
// goroutines requires external mutual exclusion.
package ring
