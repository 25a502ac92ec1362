package cherry

// subexpr is the type-erased view of a child node. Children of an internal
// node may carry payload types different from their parent's, so the tree
// holds them behind this interface for naming and serialization only.
type subexpr interface {
	Name() string
	Document() Document
}

// Node is one element of a computation trace: a label, the value computed
// at this point of the expression, and the ordered operand nodes that
// produced it. Leaves have no children; composed nodes are created only by
// the operator, fold and map functions in this package.
//
// A Node is immutable after construction. Transformations such as Labeled
// and Map return a new node and never mutate the receiver.
type Node[T any] struct {
	label    string
	value    T
	children []subexpr
}

// Name returns the node's label.
func (n Node[T]) Name() string { return n.label }

// Quantity returns the value recorded at this node.
func (n Node[T]) Quantity() T { return n.value }

// Labeled returns a copy of the node with its label replaced. Value and
// children are unchanged.
func (n Node[T]) Labeled(label string) Node[T] {
	n.label = label
	return n
}

// Map applies f to the node's value and records the application as a new
// node labeled "(map)" whose single child is the original node. Use Labeled
// on the result to override the label.
func Map[T, R any](n Node[T], f func(T) R) Node[R] {
	return Node[R]{
		label:    "(map)",
		value:    f(n.value),
		children: []subexpr{n},
	}
}
