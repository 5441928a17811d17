package queue

// Stack is a last-in first-out stack made with a slice. The zero
// value is an empty stack ready to use. *NOT* THREAD SAFE.
type Stack[T any] struct {
	b []T
}

// NewStack returns a stack with initial space for sz elements.
func NewStack[T any](sz int) *Stack[T] {
	return &Stack[T]{b: make([]T, 0, sz)}
}

// Empty tests if the stack is empty.
func (s *Stack[T]) Empty() bool {
	return len(s.b) == 0
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return len(s.b)
}

// Peek returns the top element, without removing it. Panics if the
// stack is empty.
func (s *Stack[T]) Peek() T {
	if s.Empty() {
		panic("Stack: peek at empty stack")
	}
	return s.b[len(s.b)-1]
}

// Pop removes the top element and returns it. Panics if the stack is
// empty.
func (s *Stack[T]) Pop() T {
	var zero T
	if s.Empty() {
		panic("Stack: pop from empty stack")
	}
	i := len(s.b) - 1
	v := s.b[i]
	s.b[i] = zero
	s.b = s.b[:i]
	return v
}

// Push adds element "v" to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.b = append(s.b, v)
}

// Reset empties the stack, keeping its storage for reuse.
func (s *Stack[T]) Reset() {
	clear(s.b)
	s.b = s.b[:0]
}
