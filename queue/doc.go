// Package queue provides two small, unsynchronized containers used to
// drive iterative tree walks: Stack, a LIFO, and FIFO, a first-in
// first-out queue. FIFO is a slice-based ring buffer whose capacity
// is always a power of 2; it grows (doubling its capacity) when
// pushed to while full. Stack is a plain append-backed slice. Neither
// is thread safe.
package queue
