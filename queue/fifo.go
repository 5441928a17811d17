package queue

// FIFO is a first-in first-out queue made with a slice. *NOT* THREAD
// SAFE.
type FIFO[T any] struct {
	m uint32 /* queue mask (cap - 1) */
	s uint32 /* start index */
	e uint32 /* end index */
	b []T    /* buffer */
}

// NewFIFO allocates and returns a new queue with initial space for sz
// elements. Panics if sz is not a power of 2.
func NewFIFO[T any](sz int) *FIFO[T] {
	if sz <= 0 || sz&(sz-1) != 0 {
		panic("FIFO: invalid Q size (not a power of 2)")
	}
	return &FIFO[T]{m: uint32(sz) - 1, b: make([]T, sz)}
}

// Empty tests if the queue is empty.
func (q *FIFO[T]) Empty() bool {
	return q.s == q.e
}

// Len returns the number of elements waiting in the queue.
func (q *FIFO[T]) Len() int {
	return int(q.e - q.s)
}

// Cap returns the current capacity of the queue (# of element
// slots). It only ever grows.
func (q *FIFO[T]) Cap() int {
	return len(q.b)
}

// Peek returns the first element in the queue, without removing
// it. Panics if the queue is empty.
func (q *FIFO[T]) Peek() T {
	if q.Empty() {
		panic("FIFO: peek at empty Q")
	}
	return q.b[q.s&q.m]
}

// Pop removes the first element from the queue and returns
// it. Panics if the queue is empty.
func (q *FIFO[T]) Pop() T {
	var zero T
	if q.Empty() {
		panic("FIFO: pop from empty Q")
	}
	i := q.s & q.m
	v := q.b[i]
	q.b[i] = zero
	q.s++
	return v
}

// Push adds element "v" to the tail of the queue, doubling its
// capacity first if it is full.
func (q *FIFO[T]) Push(v T) {
	if q.Len() == len(q.b) {
		q.grow()
	}
	q.b[q.e&q.m] = v
	q.e++
}

// grow doubles the buffer, unrolling the ring so that the first
// element lands at index 0.
func (q *FIFO[T]) grow() {
	n := q.Len()
	b := make([]T, 2*len(q.b))
	for i := 0; i < n; i++ {
		b[i] = q.b[(q.s+uint32(i))&q.m]
	}
	q.b, q.m, q.s, q.e = b, uint32(len(b))-1, 0, uint32(n)
}
