// Package arraystack provides Stack[T], a generic LIFO stack with a fixed
// capacity chosen at construction time.
//
// The backing storage is a single contiguous block allocated once by the
// constructor; no operation after construction ever allocates. This makes
// Stack suitable for hot loops, parsing scratch space, and bounded-depth
// traversals where append-backed stacks would churn the allocator.
//
// Operations come in two tiers. The default tier ([Stack.Push], [Stack.Pop],
// [Stack.Peek], ...) treats precondition violations - pushing onto a full
// stack, popping an empty one, indexing past the top - as caller bugs and
// panics. The checked tier ([Stack.TryPush], [Stack.TryPop], [Stack.TryPeek])
// reports failure with a bool for callers that want to probe instead.
//
// Stacks are not safe for concurrent use.
package arraystack

import "fmt"

// Stack is a LIFO stack of T holding at most Cap() elements in a contiguous
// block allocated once at construction.
//
// Elements live at indices [0, Len()) of the block in push order: index 0 is
// the bottom (oldest), index Len()-1 the top (newest). top is the index of
// the next free slot. Free slots are kept zero-valued: every operation that
// vacates a slot zeroes it, so values popped off the stack are released to
// the garbage collector immediately rather than pinned until overwritten.
//
// The zero value is a usable stack with capacity zero.
type Stack[T any] struct {
	data []T
	top  int
}

// New returns an empty Stack that can hold up to capacity elements.
// The backing block is allocated here and never again.
// New panics if capacity is negative.
func New[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		panic("negative stack capacity")
	}
	return &Stack[T]{data: make([]T, capacity)}
}

// Of returns a full Stack whose capacity is len(elems), with elems[0] at the
// bottom and elems[len(elems)-1] on top. The elements are copied; the stack
// owns its storage exclusively.
func Of[T any](elems ...T) *Stack[T] {
	s := &Stack[T]{data: make([]T, len(elems)), top: len(elems)}
	copy(s.data, elems)
	return s
}

// Cap returns the fixed capacity of the stack.
func (s *Stack[T]) Cap() int {
	return len(s.data)
}

// Len returns the number of elements currently on the stack.
func (s *Stack[T]) Len() int {
	return s.top
}

// Empty returns true if the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return s.top == 0
}

// Full returns true if the stack holds Cap() elements.
func (s *Stack[T]) Full() bool {
	return s.top == len(s.data)
}

// Peek returns the top element without removing it.
// Peek panics if the stack is empty.
func (s *Stack[T]) Peek() T {
	if s.top == 0 {
		panic("peek of empty stack")
	}
	return s.data[s.top-1]
}

// Push places v on top of the stack.
// Push panics if the stack is full.
func (s *Stack[T]) Push(v T) {
	if s.top == len(s.data) {
		panic("push to full stack")
	}
	s.data[s.top] = v
	s.top++
}

// Emplace claims the next free slot and returns a pointer to it, so the new
// top element can be constructed in place instead of being copied through
// [Stack.Push]. The slot is zero-valued. The pointer stays valid until the
// element is popped or the stack is cleared.
// Emplace panics if the stack is full.
func (s *Stack[T]) Emplace() *T {
	if s.top == len(s.data) {
		panic("push to full stack")
	}
	p := &s.data[s.top]
	s.top++
	return p
}

// Pop removes and returns the top element. The vacated slot is zeroed so the
// popped value is no longer reachable through the stack.
// Pop panics if the stack is empty.
func (s *Stack[T]) Pop() T {
	if s.top == 0 {
		panic("pop of empty stack")
	}
	s.top--
	v := s.data[s.top]
	var zero T
	s.data[s.top] = zero
	return v
}

// PushSlice pushes the elements of elems in order, so elems[len(elems)-1]
// ends up on top.
// PushSlice panics if the elements do not all fit.
func (s *Stack[T]) PushSlice(elems []T) {
	if s.top+len(elems) > len(s.data) {
		panic("push past stack capacity")
	}
	copy(s.data[s.top:], elems)
	s.top += len(elems)
}

// TryPush places v on top of the stack and returns true, or returns false
// leaving the stack unchanged if it is full.
func (s *Stack[T]) TryPush(v T) bool {
	if s.top == len(s.data) {
		return false
	}
	s.data[s.top] = v
	s.top++
	return true
}

// TryPop removes and returns the top element, or returns false if the stack
// is empty.
func (s *Stack[T]) TryPop() (T, bool) {
	if s.top == 0 {
		var zero T
		return zero, false
	}
	return s.Pop(), true
}

// TryPeek returns the top element without removing it, or false if the stack
// is empty.
func (s *Stack[T]) TryPeek() (T, bool) {
	if s.top == 0 {
		var zero T
		return zero, false
	}
	return s.data[s.top-1], true
}

// At returns the element at index i, counting from the bottom of the stack:
// At(0) is the oldest element, At(Len()-1) the newest.
// At panics if i is out of range.
func (s *Stack[T]) At(i int) T {
	if i < 0 || i >= s.top {
		panic(fmt.Sprintf("index out of range [%d] with length %d", i, s.top))
	}
	return s.data[i]
}

// Set replaces the element at index i, counting from the bottom of the stack.
// Set panics if i is out of range.
func (s *Stack[T]) Set(i int, v T) {
	if i < 0 || i >= s.top {
		panic(fmt.Sprintf("index out of range [%d] with length %d", i, s.top))
	}
	s.data[i] = v
}

// Clear removes all elements, zeroing their slots. The capacity is unchanged.
func (s *Stack[T]) Clear() {
	clear(s.data[:s.top])
	s.top = 0
}

// Swap exchanges the contents of s and other. Only slots up to the larger of
// the two lengths are touched, so the cost is O(max(s.Len(), other.Len()))
// rather than O(Cap()).
// Swap panics if the two stacks have different capacities.
func (s *Stack[T]) Swap(other *Stack[T]) {
	if len(s.data) != len(other.data) {
		panic("swap of stacks with different capacities")
	}
	n := max(s.top, other.top)
	for i := 0; i < n; i++ {
		s.data[i], other.data[i] = other.data[i], s.data[i]
	}
	s.top, other.top = other.top, s.top
}

// Clone returns a new Stack with the same capacity and contents as s.
// Only the elements below the top are copied.
func (s *Stack[T]) Clone() *Stack[T] {
	c := &Stack[T]{data: make([]T, len(s.data)), top: s.top}
	copy(c.data, s.data[:s.top])
	return c
}

// String formats the stack bottom-first, e.g. "stack([1, 2, 3])" where 3 is
// the top element.
func (s *Stack[T]) String() string {
	var b []byte
	b = append(b, "stack(["...)
	for i := 0; i < s.top; i++ {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = fmt.Appendf(b, "%v", s.data[i])
	}
	b = append(b, "])"...)
	return string(b)
}
