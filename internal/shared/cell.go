// Package shared provides the concurrency-safe containers the dashboard's
// background goroutines mutate and the render loop snapshots.
package shared

import "sync"

// Cell guards a single value with a multiple-reader/single-writer lock and
// counts every mutation. The version counter is what lets the render loop
// decide whether anything changed without copying and comparing the value
// itself.
//
// There is no recovery path for corrupted shared state: a panic inside a
// Read or Write callback propagates and takes the process down rather than
// leaving later readers to observe a half-applied mutation.
type Cell[T any] struct {
	mu      sync.RWMutex
	value   T
	version uint64
}

// NewCell creates a cell holding v at version 0.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Read runs fn under the read lock. Any number of readers may hold the cell
// concurrently; fn must not mutate the value.
func (c *Cell[T]) Read(fn func(v T)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(c.value)
}

// Write runs fn under the exclusive write lock and bumps the version.
// fn receives a pointer to the held value and may mutate it in place.
func (c *Cell[T]) Write(fn func(v *T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	fn(&c.value)
}

// Detach returns a shallow copy of the value taken under the read lock.
// Callers that hold reference types inside T are expected to copy them in a
// Read callback instead.
func (c *Cell[T]) Detach() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Version reports how many writes the cell has seen.
func (c *Cell[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}
