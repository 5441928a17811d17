package bintree

import (
	"errors"
	"fmt"

	"github.com/npat-efault/bst/queue"
)

// ErrInvariant is returned by Verify when the tree is malformed.
var ErrInvariant = errors.New("tree invariant violated")

// Verify checks the tree's structure: every key in a node's left
// subtree must be less than the node's key and every key in its
// right subtree greater; every node must be reachable through
// exactly one link; and the number of nodes must match Len. Returns
// nil if the tree is well formed, or an error wrapping ErrInvariant.
func (t *Tree[K]) Verify() error {
	// Each pending node carries the open interval its key must
	// fall in; a nil bound is unbounded.
	type item struct {
		n      *Node[K]
		lo, hi *Node[K]
	}
	var s queue.Stack[item]
	seen := make(map[*Node[K]]struct{}, t.n)
	if t.root != nil {
		s.Push(item{n: t.root})
	}
	for !s.Empty() {
		it := s.Pop()
		if _, dup := seen[it.n]; dup {
			return fmt.Errorf("%w: node %v linked more than once",
				ErrInvariant, it.n.key)
		}
		seen[it.n] = struct{}{}
		if it.lo != nil && t.cmp(it.n.key, it.lo.key) <= 0 {
			return fmt.Errorf("%w: key %v not greater than ancestor %v",
				ErrInvariant, it.n.key, it.lo.key)
		}
		if it.hi != nil && t.cmp(it.n.key, it.hi.key) >= 0 {
			return fmt.Errorf("%w: key %v not less than ancestor %v",
				ErrInvariant, it.n.key, it.hi.key)
		}
		if it.n.l != nil {
			s.Push(item{it.n.l, it.lo, it.n})
		}
		if it.n.r != nil {
			s.Push(item{it.n.r, it.n, it.hi})
		}
	}
	if len(seen) != t.n {
		return fmt.Errorf("%w: %d nodes reachable, Len is %d",
			ErrInvariant, len(seen), t.n)
	}
	return nil
}
