package cherry

// defaultLeafName is used when a leaf is built without an explicit name.
const defaultLeafName = "(leaf)"

// LeafBuilder is the entry stage of leaf construction. It has no Build
// method: a value must be supplied first, which advances the builder to
// ValuedLeaf. This enforces value presence at compile time.
type LeafBuilder[T any] struct {
	name string
}

// Leaf starts building a leaf node.
func Leaf[T any]() LeafBuilder[T] {
	return LeafBuilder[T]{}
}

// Name sets the leaf's label.
func (b LeafBuilder[T]) Name(name string) LeafBuilder[T] {
	b.name = name
	return b
}

// Value supplies the leaf's payload and advances the builder to the stage
// that can be finalized.
func (b LeafBuilder[T]) Value(v T) ValuedLeaf[T] {
	return ValuedLeaf[T]{name: b.name, value: v}
}

// ValuedLeaf is a leaf builder whose value has been supplied.
type ValuedLeaf[T any] struct {
	name  string
	value T
}

// Name sets the leaf's label.
func (b ValuedLeaf[T]) Name(name string) ValuedLeaf[T] {
	b.name = name
	return b
}

// Build finalizes the leaf. An unset name defaults to "(leaf)".
func (b ValuedLeaf[T]) Build() Node[T] {
	name := b.name
	if name == "" {
		name = defaultLeafName
	}
	return Node[T]{label: name, value: b.value}
}
