package cherry

import (
	"fmt"
	"strings"
)

// ValidationError reports every predicate a node's value violated during
// one validation pass.
type ValidationError struct {
	// Label is the validated node's own label.
	Label string `json:"label"`
	// Failed holds the labels of the violated predicates, in the order the
	// predicates were declared on the chain.
	Failed []string `json:"failed"`
	// Tree is the document snapshot of the node taken when the chain
	// resolved, for diagnostic context.
	Tree Document `json:"tree"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation of %q failed: %s", e.Label, strings.Join(e.Failed, "; "))
}

// Chain accumulates named predicate checks against one node's value.
// Every predicate is evaluated exactly once against the value captured
// when the chain started; there is no short-circuit, so a resolved chain
// reports the complete set of violated predicates rather than the first.
//
// A chain is single-use: IntoResult resolves it exactly once.
type Chain[T any] struct {
	node   Node[T]
	failed []string
}

// Validate starts a validation chain on the node's value. The label names
// the rule in failure reports.
func (n Node[T]) Validate(label string, predicate func(T) bool) *Chain[T] {
	c := &Chain[T]{node: n}
	return c.Validate(label, predicate)
}

// Validate continues the chain with another named predicate.
func (c *Chain[T]) Validate(label string, predicate func(T) bool) *Chain[T] {
	if !predicate(c.node.value) {
		c.failed = append(c.failed, label)
	}
	return c
}

// IntoResult resolves the chain. If every predicate held, the original
// node is returned unchanged; otherwise the error is a *ValidationError
// listing all violated predicate labels.
func (c *Chain[T]) IntoResult() (Node[T], error) {
	if len(c.failed) == 0 {
		return c.node, nil
	}
	return Node[T]{}, &ValidationError{
		Label:  c.node.label,
		Failed: c.failed,
		Tree:   c.node.Document(),
	}
}
