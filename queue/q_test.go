package queue

import (
	"testing"
)

/* Tests */

func TestFIFO(t *testing.T) {
	const qsz = 128
	q := NewFIFO[int](qsz)

	// check emptyness
	if !q.Empty() {
		t.Fatal("Q not empty!")
	}
	if l := q.Len(); l != 0 {
		t.Fatal("Bad Q len:", l)
	}
	if cp := q.Cap(); cp != qsz {
		t.Fatal("Bad Q cap:", cp)
	}

	// fill
	for i := 0; i < qsz; i++ {
		q.Push(i)
	}
	if l := q.Len(); l != qsz {
		t.Fatal("Bad Q len:", l)
	}

	// roll, start index wraps around the ring
	for i := 0; i < qsz; i++ {
		e := q.Pop()
		if e != i {
			t.Fatal("Bad elem", e, "!=", i)
		}
		q.Push(i)
	}
	if cp := q.Cap(); cp != qsz {
		t.Fatal("Q grew while rolling:", cp)
	}

	// empty
	for i := 0; i < qsz; i++ {
		if q.Peek() != i {
			t.Fatal("Bad peek", q.Peek(), "!=", i)
		}
		if e := q.Pop(); e != i {
			t.Fatal("Bad elem", e, "!=", i)
		}
	}
	if !q.Empty() {
		t.Fatal("Q not empty")
	}
}

func TestFIFOGrow(t *testing.T) {
	q := NewFIFO[int](4)

	// offset the ring so growing has to unroll it
	q.Push(-1)
	q.Push(-2)
	q.Pop()
	q.Pop()
	for i := 0; i < 37; i++ {
		q.Push(i)
	}
	if cp := q.Cap(); cp != 64 {
		t.Fatal("Bad Q cap:", cp)
	}
	for i := 0; i < 37; i++ {
		if e := q.Pop(); e != i {
			t.Fatal("Bad elem", e, "!=", i)
		}
	}
	if !q.Empty() {
		t.Fatal("Q not empty")
	}
}

func TestFIFOBadSize(t *testing.T) {
	for _, sz := range []int{0, 3, 100, -8} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatal("no panic for size", sz)
				}
			}()
			NewFIFO[int](sz)
		}()
	}
}

func TestStack(t *testing.T) {
	var s Stack[string]

	if !s.Empty() {
		t.Fatal("stack not empty!")
	}
	for _, v := range []string{"a", "b", "c"} {
		s.Push(v)
	}
	if s.Len() != 3 || s.Peek() != "c" {
		t.Fatal("Bad stack:", s.Len(), s.Peek())
	}
	for _, want := range []string{"c", "b", "a"} {
		if e := s.Pop(); e != want {
			t.Fatal("Bad elem", e, "!=", want)
		}
	}
	if !s.Empty() {
		t.Fatal("stack not empty")
	}

	s.Push("x")
	s.Reset()
	if !s.Empty() {
		t.Fatal("stack not empty after Reset")
	}
}

func TestPopEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("pop from empty stack did not panic")
		}
	}()
	NewStack[int](8).Pop()
}

/* Benchmarks */

type eT struct {
	f1, f2, f3, f4 int
}

func BenchmarkFIFO(b *testing.B) {
	const qsz = 128
	q := NewFIFO[eT](qsz)
	for i := 0; i < qsz; i++ {
		q.Push(eT{f1: i})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(q.Pop())
	}
}

func BenchmarkStack(b *testing.B) {
	s := NewStack[*eT](128)
	e := &eT{}
	for i := 0; i < b.N; i++ {
		s.Push(e)
		e = s.Pop()
	}
}
