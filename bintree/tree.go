// Package bintree is an unbalanced binary search tree (BST)
// implementation.
//
// A Tree stores unique keys: inserting a key that is already present
// leaves the tree unchanged, and deleting an absent key is a
// no-op. The tree is never rebalanced, so its height depends purely
// on insertion order (worst case: one node per level).
//
// Each node exclusively owns its two subtrees; there are no parent
// links or shared references. A Tree is *NOT* safe for concurrent
// use; see Locked.
package bintree

import "cmp"

// Node is a tree node. A *Node is the root of a (sub)tree. A nil
// *Node is an empty (sub)tree.
type Node[K any] struct {
	key  K
	l, r *Node[K]
}

// Key returns the node's key.
func (n *Node[K]) Key() K {
	return n.key
}

// Left returns the root of the node's left subtree, or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.l
}

// Right returns the root of the node's right subtree, or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.r
}

// Min returns the node with the minimum key in the subtree rooted at
// n (the leftmost node). Returns nil for an empty subtree.
func (n *Node[K]) Min() *Node[K] {
	if n == nil {
		return nil
	}
	for n.l != nil {
		n = n.l
	}
	return n
}

// Max returns the node with the maximum key in the subtree rooted at
// n (the rightmost node). Returns nil for an empty subtree.
func (n *Node[K]) Max() *Node[K] {
	if n == nil {
		return nil
	}
	for n.r != nil {
		n = n.r
	}
	return n
}

// destroy detaches a node that has been removed from its tree.
func (n *Node[K]) destroy() {
	var zero K
	n.key, n.l, n.r = zero, nil, nil
}

// Tree is a binary search tree of unique keys ordered by a
// comparison function. Use New or NewFunc to create one.
type Tree[K any] struct {
	root *Node[K]
	cmp  func(a, b K) int
	n    int
}

// New returns an empty tree for a naturally ordered key type.
func New[K cmp.Ordered]() *Tree[K] {
	return NewFunc(cmp.Compare[K])
}

// NewFunc returns an empty tree whose keys are ordered by "cmp". The
// function must return zero if a is equal to b, a negative if a is
// less than (precedes) b, and a positive otherwise; it must define a
// total order.
func NewFunc[K any](cmp func(a, b K) int) *Tree[K] {
	if cmp == nil {
		panic("bintree: nil comparison function")
	}
	return &Tree[K]{cmp: cmp}
}

// Root returns the tree's root node, or nil if the tree is empty.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.n
}

// Empty tests if the tree holds no keys.
func (t *Tree[K]) Empty() bool {
	return t.root == nil
}

// Insert adds key to the tree. Returns true if the key was inserted,
// or false if it was already present, in which case the tree is left
// unchanged.
func (t *Tree[K]) Insert(key K) bool {
	var ok bool
	t.root, ok = t.insert(t.root, key)
	if ok {
		t.n++
	}
	return ok
}

// insert adds key to the subtree rooted at n and returns the
// (possibly new) subtree root.
func (t *Tree[K]) insert(n *Node[K], key K) (*Node[K], bool) {
	if n == nil {
		return &Node[K]{key: key}, true
	}
	var ok bool
	switch c := t.cmp(key, n.key); {
	case c < 0:
		n.l, ok = t.insert(n.l, key)
	case c > 0:
		n.r, ok = t.insert(n.r, key)
	}
	return n, ok
}

// Search returns the node holding key, or nil if no such node
// exists.
func (t *Tree[K]) Search(key K) *Node[K] {
	return t.search(t.root, key)
}

func (t *Tree[K]) search(n *Node[K], key K) *Node[K] {
	if n == nil {
		return nil
	}
	switch c := t.cmp(key, n.key); {
	case c < 0:
		return t.search(n.l, key)
	case c > 0:
		return t.search(n.r, key)
	}
	return n
}

// Contains tests if key is in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return t.Search(key) != nil
}

// Min returns the minimum key in the tree. The boolean is false if
// the tree is empty.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	if n := t.root.Min(); n != nil {
		return n.key, true
	}
	return zero, false
}

// Max returns the maximum key in the tree. The boolean is false if
// the tree is empty.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	if n := t.root.Max(); n != nil {
		return n.key, true
	}
	return zero, false
}

// Delete removes key from the tree. Returns true if a node was
// removed, or false if the key was not present, in which case the
// tree is left unchanged.
func (t *Tree[K]) Delete(key K) bool {
	var ok bool
	t.root, ok = t.remove(t.root, key)
	if ok {
		t.n--
	}
	return ok
}

// remove deletes key from the subtree rooted at n and returns the
// (possibly new) subtree root.
func (t *Tree[K]) remove(n *Node[K], key K) (*Node[K], bool) {
	if n == nil {
		return nil, false
	}
	var ok bool
	switch c := t.cmp(key, n.key); {
	case c < 0:
		n.l, ok = t.remove(n.l, key)
		return n, ok
	case c > 0:
		n.r, ok = t.remove(n.r, key)
		return n, ok
	}

	// Node to be removed is n
	if n.l == nil || n.r == nil {
		// At most one subtree: promote it (nil for a leaf) into
		// n's slot
		child := n.l
		if child == nil {
			child = n.r
		}
		n.destroy()
		return child, true
	}
	// Both subtrees. Take over the key of the in-order successor
	// (the minimum of the right subtree, which has no left
	// subtree) and remove the successor instead.
	succ := n.r.Min()
	n.key = succ.key
	n.r, _ = t.remove(n.r, succ.key)
	return n, true
}

// Height returns the height of the tree: the number of nodes on the
// longest root-to-leaf path. An empty tree has height 0.
func (t *Tree[K]) Height() int {
	var h int
	t.levels(func(n *Node[K], depth int) bool {
		if depth > h {
			h = depth
		}
		return true
	})
	return h
}

// Clear destroys every node of the tree, leaving it empty and ready
// for reuse. Nodes are destroyed children first, so that no node
// outlives its owner. Returns the number of destroyed nodes.
func (t *Tree[K]) Clear() int {
	var cnt int
	t.postorder(func(n *Node[K]) bool {
		n.destroy()
		cnt++
		return true
	})
	t.root, t.n = nil, 0
	return cnt
}
