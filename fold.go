package cherry

import "cmp"

// Fold reduces first and rest with f, left to right, and records the whole
// reduction as a single node: its value is the reduction result and its
// children are all operands in argument order.
func Fold[T any](label string, f func(T, T) T, first Node[T], rest ...Node[T]) Node[T] {
	acc := first.value
	children := make([]subexpr, 0, 1+len(rest))
	children = append(children, first)
	for _, n := range rest {
		acc = f(acc, n.value)
		children = append(children, n)
	}
	return Node[T]{label: label, value: acc, children: children}
}

// Sum folds the operands with addition under the label "sum".
func Sum[T Number](first Node[T], rest ...Node[T]) Node[T] {
	return Fold("sum", func(x, y T) T { return x + y }, first, rest...)
}

// Product folds the operands with multiplication under the label "product".
func Product[T Number](first Node[T], rest ...Node[T]) Node[T] {
	return Fold("product", func(x, y T) T { return x * y }, first, rest...)
}

// Max folds the operands to their largest value under the label "maximum".
func Max[T cmp.Ordered](first Node[T], rest ...Node[T]) Node[T] {
	return Fold("maximum", func(x, y T) T { return max(x, y) }, first, rest...)
}

// Min folds the operands to their smallest value under the label "minimum".
func Min[T cmp.Ordered](first Node[T], rest ...Node[T]) Node[T] {
	return Fold("minimum", func(x, y T) T { return min(x, y) }, first, rest...)
}
