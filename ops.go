package cherry

// Number constrains payload types usable with the built-in arithmetic
// operators.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Combine applies op to the values of a and b and records the application
// as a new node with the given label and children [a, b] in that order.
// It is the general form of the arithmetic operators below, for payload
// types whose operations are methods rather than built-in operators, or
// whose result type differs from the operand types:
//
//	area := cherry.Combine("(mul)", quantity.Quantity.Mul, width, height)
//
// Failures intrinsic to op (division semantics, overflow, unit mismatch)
// propagate unchanged.
func Combine[T, U, R any](label string, op func(T, U) R, a Node[T], b Node[U]) Node[R] {
	return Node[R]{
		label:    label,
		value:    op(a.value, b.value),
		children: []subexpr{a, b},
	}
}

// Add records a + b as a node labeled "(add)".
func Add[T Number](a, b Node[T]) Node[T] {
	return Combine("(add)", func(x, y T) T { return x + y }, a, b)
}

// Sub records a - b as a node labeled "(sub)".
func Sub[T Number](a, b Node[T]) Node[T] {
	return Combine("(sub)", func(x, y T) T { return x - y }, a, b)
}

// Mul records a * b as a node labeled "(mul)".
func Mul[T Number](a, b Node[T]) Node[T] {
	return Combine("(mul)", func(x, y T) T { return x * y }, a, b)
}

// Div records a / b as a node labeled "(div)". Division failures follow the
// payload type: integer division by zero panics, floating point yields
// Inf or NaN.
func Div[T Number](a, b Node[T]) Node[T] {
	return Combine("(div)", func(x, y T) T { return x / y }, a, b)
}
