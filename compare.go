package cherry

import "cmp"

// Compare orders two nodes by their values: -1 if a's value is smaller,
// 0 if equal, +1 if larger. Labels and children do not participate.
func Compare[T cmp.Ordered](a, b Node[T]) int {
	return cmp.Compare(a.value, b.value)
}

// Less reports whether a's value is smaller than b's.
func Less[T cmp.Ordered](a, b Node[T]) bool {
	return a.value < b.value
}

// Equal reports whether two nodes hold equal values. Labels and children
// do not participate.
func Equal[T comparable](a, b Node[T]) bool {
	return a.value == b.value
}
