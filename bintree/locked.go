package bintree

import "sync"

// Locked is a Tree guarded by a single reader/writer lock, for use by
// multiple goroutines. Every method holds the lock for the whole
// operation. Thread safe.
type Locked[K any] struct {
	mu sync.RWMutex
	t  *Tree[K]
}

// NewLocked wraps tree t. The caller must not use t directly
// afterwards.
func NewLocked[K any](t *Tree[K]) *Locked[K] {
	return &Locked[K]{t: t}
}

// Insert adds key to the tree. See Tree.Insert.
func (lt *Locked[K]) Insert(key K) bool {
	lt.mu.Lock()
	ok := lt.t.Insert(key)
	lt.mu.Unlock()
	return ok
}

// Delete removes key from the tree. See Tree.Delete.
func (lt *Locked[K]) Delete(key K) bool {
	lt.mu.Lock()
	ok := lt.t.Delete(key)
	lt.mu.Unlock()
	return ok
}

// Clear destroys all nodes of the tree. See Tree.Clear.
func (lt *Locked[K]) Clear() int {
	lt.mu.Lock()
	n := lt.t.Clear()
	lt.mu.Unlock()
	return n
}

// Contains tests if key is in the tree.
func (lt *Locked[K]) Contains(key K) bool {
	lt.mu.RLock()
	ok := lt.t.Contains(key)
	lt.mu.RUnlock()
	return ok
}

// Len returns the number of keys in the tree.
func (lt *Locked[K]) Len() int {
	lt.mu.RLock()
	n := lt.t.Len()
	lt.mu.RUnlock()
	return n
}

// Keys returns a snapshot of the tree's keys in the given order.
func (lt *Locked[K]) Keys(order Order) []K {
	lt.mu.RLock()
	defer lt.mu.RUnlock()
	return lt.t.Keys(order)
}

// Verify checks the tree's structure. See Tree.Verify.
func (lt *Locked[K]) Verify() error {
	lt.mu.RLock()
	defer lt.mu.RUnlock()
	return lt.t.Verify()
}
