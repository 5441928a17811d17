package bintree

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/npat-efault/bst/queue"
)

// ErrBadOrder is returned by ParseOrder for unknown traversal order
// names.
var ErrBadOrder = errors.New("bad traversal order")

// Order selects the order in which a traversal visits the tree's
// nodes.
type Order int

// Traversal orders
const (
	InOrder    Order = iota // left, node, right: ascending keys
	PreOrder                // node, left, right
	PostOrder               // left, right, node
	LevelOrder              // breadth-first, left to right
)

var orderNames = [...]string{
	InOrder:    "in",
	PreOrder:   "pre",
	PostOrder:  "post",
	LevelOrder: "level",
}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return orderNames[o]
}

// ParseOrder returns the Order named by s. Both short ("pre") and
// long ("preorder", "pre-order") names are accepted, regardless of
// case.
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if n, ok := strings.CutSuffix(name, "order"); ok {
		name = strings.TrimSuffix(n, "-")
	}
	for o, n := range orderNames {
		if n == name {
			return Order(o), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadOrder, s)
}

// MarshalText implements encoding.TextMarshaler.
func (o Order) MarshalText() ([]byte, error) {
	if o < 0 || int(o) >= len(orderNames) {
		return nil, fmt.Errorf("%w: %d", ErrBadOrder, int(o))
	}
	return []byte(orderNames[o]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the
// names ParseOrder accepts.
func (o *Order) UnmarshalText(b []byte) error {
	v, err := ParseOrder(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// All returns a sequence of the tree's keys in the given order. The
// sequence is lazy: nodes are visited as keys are consumed, and
// breaking out of the range loop stops the walk. It can be ranged
// over any number of times. The tree must not be modified while a
// walk is in progress.
func (t *Tree[K]) All(order Order) iter.Seq[K] {
	return func(yield func(K) bool) {
		visit := func(n *Node[K]) bool { return yield(n.key) }
		switch order {
		case InOrder:
			t.inorder(false, visit)
		case PreOrder:
			t.preorder(visit)
		case PostOrder:
			t.postorder(visit)
		case LevelOrder:
			t.levels(func(n *Node[K], _ int) bool { return visit(n) })
		default:
			panic("bintree: " + order.String() + ": invalid traversal order")
		}
	}
}

// Descend returns a sequence of the tree's keys in descending order.
func (t *Tree[K]) Descend() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.inorder(true, func(n *Node[K]) bool { return yield(n.key) })
	}
}

// Range returns a sequence of the keys k with low <= k <= hi, in
// ascending order. Subtrees that lie entirely outside the range are
// not visited.
func (t *Tree[K]) Range(low, hi K) iter.Seq[K] {
	return func(yield func(K) bool) {
		var s queue.Stack[*Node[K]]
		n := t.root
		for {
			for n != nil {
				if t.cmp(n.key, low) < 0 {
					// n and its left subtree precede low
					n = n.r
					continue
				}
				s.Push(n)
				n = n.l
			}
			if s.Empty() {
				return
			}
			n = s.Pop()
			if t.cmp(n.key, hi) > 0 {
				return
			}
			if !yield(n.key) {
				return
			}
			n = n.r
		}
	}
}

// Keys returns the tree's keys, in the given order, as a slice.
func (t *Tree[K]) Keys(order Order) []K {
	keys := make([]K, 0, t.n)
	for k := range t.All(order) {
		keys = append(keys, k)
	}
	return keys
}

// The walkers below are iterative, using an explicit stack (or
// queue) instead of recursion, so that tall (degenerate) trees do
// not grow the goroutine stack. They stop as soon as visit returns
// false.

func (t *Tree[K]) preorder(visit func(*Node[K]) bool) {
	if t.root == nil {
		return
	}
	var s queue.Stack[*Node[K]]
	s.Push(t.root)
	for !s.Empty() {
		n := s.Pop()
		if !visit(n) {
			return
		}
		if n.r != nil {
			s.Push(n.r)
		}
		if n.l != nil {
			s.Push(n.l)
		}
	}
}

// inorder walks the tree in ascending key order, or descending if
// "reverse" is true.
func (t *Tree[K]) inorder(reverse bool, visit func(*Node[K]) bool) {
	var s queue.Stack[*Node[K]]
	pre := func(n *Node[K]) *Node[K] { return n.l }
	post := func(n *Node[K]) *Node[K] { return n.r }
	if reverse {
		pre, post = post, pre
	}
	n := t.root
	for n != nil || !s.Empty() {
		for n != nil {
			s.Push(n)
			n = pre(n)
		}
		n = s.Pop()
		if !visit(n) {
			return
		}
		n = post(n)
	}
}

// postorder visits a node only after both its subtrees are done, and
// never looks at a node's links after visiting it, so visit may
// destroy the node.
func (t *Tree[K]) postorder(visit func(*Node[K]) bool) {
	var s queue.Stack[*Node[K]]
	var last *Node[K]
	n := t.root
	for n != nil || !s.Empty() {
		for n != nil {
			s.Push(n)
			n = n.l
		}
		top := s.Peek()
		if top.r != nil && top.r != last {
			n = top.r
			continue
		}
		s.Pop()
		if !visit(top) {
			return
		}
		last = top
	}
}

// levels walks the tree breadth-first, passing each node's depth
// (the root is at depth 1) to visit.
func (t *Tree[K]) levels(visit func(n *Node[K], depth int) bool) {
	type item struct {
		n *Node[K]
		d int
	}
	if t.root == nil {
		return
	}
	q := queue.NewFIFO[item](16)
	q.Push(item{t.root, 1})
	for !q.Empty() {
		it := q.Pop()
		if !visit(it.n, it.d) {
			return
		}
		if it.n.l != nil {
			q.Push(item{it.n.l, it.d + 1})
		}
		if it.n.r != nil {
			q.Push(item{it.n.r, it.d + 1})
		}
	}
}

// A Scanner is a pull-style cursor over the tree's keys, for callers
// that cannot use a range loop.
type Scanner[K any] struct {
	next func() (K, bool)
	stop func()
}

// NewScanner returns a scanner that walks the tree in the given
// order. The tree must not be modified while the scanner is in use.
func (t *Tree[K]) NewScanner(order Order) *Scanner[K] {
	next, stop := iter.Pull(t.All(order))
	return &Scanner[K]{next, stop}
}

// Next returns the next key. If "ok" (the second return value) is
// true, then "k" (the first return value) is the key. If "ok" is
// false, then there are no more keys.
func (sc *Scanner[K]) Next() (k K, ok bool) {
	return sc.next()
}

// Stop must be called in order to stop the scanner (and free the
// resources used by it) without completing the scan. There is no need
// (but it doesn't hurt) to call Stop after Next returns "ok" ==
// false.
func (sc *Scanner[K]) Stop() {
	sc.stop()
}
