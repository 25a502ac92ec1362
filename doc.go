// Package cherry builds explainable computation traces. Arithmetic and
// functional operations on named values are recorded as an immutable tree
// whose structure mirrors the expression that produced the final value;
// the tree serializes to a nested document for logging and audit, and its
// value can be checked against named predicates with accumulated,
// labeled error reporting.
//
// # Building trees
//
// Leaves are built with a staged builder that requires a value before the
// tree can be finalized:
//
//	a := cherry.Leaf[int]().Name("a").Value(2).Build()
//	b := cherry.Leaf[int]().Name("b").Value(3).Build()
//
// Composed nodes are created only through the operator, fold and map
// functions. Each records its operands as children in evaluation order and
// tags the result with a canonical label:
//
//	sum := cherry.Add(a, b)            // label "(add)", value 5
//	res := cherry.Mul(sum, other)      // label "(mul)"
//	flr := cherry.Map(x, math.Floor)   // label "(map)", one child
//
// Payload types whose operations are methods, or whose operations change
// the result type, go through Combine with an explicit op func; the
// quantity subpackage shows this for unit-carrying values.
//
// Nodes are immutable: Labeled returns a renamed copy, and every
// composition consumes its operands into the child slots of the result.
// Construction is pure and single-threaded by design; there is no shared
// mutable state to protect.
//
// # Validation
//
// Validate starts a chain of named predicates over the node's value. Every
// predicate runs — there is no short-circuit — so a failed chain reports
// the complete, ordered set of violated rules together with a document
// snapshot of the node:
//
//	checked, err := res.
//		Validate("must be even", func(v int) bool { return v%2 == 0 }).
//		Validate("must be less than 4", func(v int) bool { return v < 4 }).
//		IntoResult()
//
// # Serialization
//
// Document renders a node as {label, value, unit, subexpr}, with subexpr
// omitted for leaves and nesting depth equal to expression depth. Values
// implementing Quantified render as magnitude plus unit string; all others
// render as-is with unit "dimensionless". Documents round-trip through
// JSON and YAML, and FromDocument restores a node from persisted form.
package cherry
