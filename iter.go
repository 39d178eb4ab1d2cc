package arraystack

import "iter"

// Collect drains seq into a new Stack of the given capacity. The first
// element yielded ends up at the bottom, the last on top.
// Collect panics if seq yields more than capacity elements.
func Collect[T any](capacity int, seq iter.Seq[T]) *Stack[T] {
	s := New[T](capacity)
	s.PushSeq(seq)
	return s
}

// PushSeq pushes every element yielded by seq, in order.
// PushSeq panics at the first element that does not fit.
func (s *Stack[T]) PushSeq(seq iter.Seq[T]) {
	for v := range seq {
		s.Push(v)
	}
}

// All returns an iterator over index-element pairs from the bottom of the
// stack to the top.
func (s *Stack[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.top; i++ {
			if !yield(i, s.data[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-element pairs from the top of the
// stack to the bottom, the order elements would be popped in.
func (s *Stack[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := s.top - 1; i >= 0; i-- {
			if !yield(i, s.data[i]) {
				return
			}
		}
	}
}
