package arraystack

import (
	"cmp"
	"slices"
)

// Comparisons are package-level functions rather than methods so the element
// constraint lives on the function: Stack itself stays Stack[T any], and only
// callers that compare stacks need comparable or ordered elements. Only the
// elements below each top participate; free slots never influence a result.

// Equal reports whether a and b hold the same elements in the same order.
// Stacks of different lengths are never equal, regardless of contents.
// Capacity does not participate: a full 3-stack and a 3-length 10-stack with
// the same elements are equal.
func Equal[T comparable](a, b *Stack[T]) bool {
	return slices.Equal(a.data[:a.top], b.data[:b.top])
}

// EqualFunc is like [Equal] but compares elements with eq, allowing stacks of
// different element types.
func EqualFunc[T, U any](a *Stack[T], b *Stack[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.data[:a.top], b.data[:b.top], eq)
}

// Compare orders a and b lexicographically, bottom-first: the first unequal
// pair of elements decides, and if one stack's contents are a prefix of the
// other's, the shorter stack sorts first. The result is -1 when a < b,
// 0 when the contents are equal, and +1 when a > b.
func Compare[T cmp.Ordered](a, b *Stack[T]) int {
	return slices.Compare(a.data[:a.top], b.data[:b.top])
}

// CompareFunc is like [Compare] but compares element pairs with cmp, which
// should return -1, 0, or +1 in the manner of [cmp.Compare].
func CompareFunc[T, U any](a *Stack[T], b *Stack[U], cmp func(T, U) int) int {
	return slices.CompareFunc(a.data[:a.top], b.data[:b.top], cmp)
}
