package cherry

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DimensionlessUnit is the unit recorded for payload values that carry no
// unit metadata.
const DimensionlessUnit = "dimensionless"

// Quantified is implemented by payload types that carry unit metadata.
// Such values serialize as their numeric magnitude with the unit string
// exposed separately; everything else serializes as-is with the unit
// "dimensionless".
type Quantified interface {
	Magnitude() float64
	Unit() string
}

// Document is the structured rendering of a node and its descendants.
// Nesting depth equals the depth of the recorded expression. Field order
// is fixed for output stability.
type Document struct {
	Label   string     `json:"label" yaml:"label"`
	Value   any        `json:"value" yaml:"value"`
	Unit    string     `json:"unit" yaml:"unit"`
	Subexpr []Document `json:"subexpr,omitempty" yaml:"subexpr,omitempty"`
}

// Document renders the node and its descendants. Rendering is
// deterministic and has no side effects.
func (n Node[T]) Document() Document {
	doc := Document{
		Label: n.label,
		Value: documentValue(n.value),
		Unit:  documentUnit(n.value),
	}
	for _, c := range n.children {
		doc.Subexpr = append(doc.Subexpr, c.Document())
	}
	return doc
}

// ToJSON renders the node's document as JSON text.
func (n Node[T]) ToJSON() ([]byte, error) {
	return json.Marshal(n.Document())
}

// MarshalJSON serializes the node through its document form.
func (n Node[T]) MarshalJSON() ([]byte, error) {
	return n.ToJSON()
}

func documentValue(v any) any {
	if q, ok := v.(Quantified); ok {
		return q.Magnitude()
	}
	return v
}

func documentUnit(v any) string {
	if q, ok := v.(Quantified); ok {
		return q.Unit()
	}
	return DimensionlessUnit
}

// ToJSON encodes the document as JSON text.
func (d Document) ToJSON() ([]byte, error) {
	return json.Marshal(d)
}

// ToYAML encodes the document as YAML text.
func (d Document) ToYAML() ([]byte, error) {
	return yaml.Marshal(d)
}

// ParseDocument decodes a JSON document.
func ParseDocument(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("parsing document: %v", err)
	}
	return d, nil
}

// ParseDocumentYAML decodes a YAML document.
func ParseDocumentYAML(data []byte) (Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("parsing document: %v", err)
	}
	return d, nil
}

// FromDocument reconstructs a node from a decoded document. The document
// value is coerced into T where the decoder widened it (JSON numbers
// arrive as float64); subexpressions stay document-backed and reappear
// unchanged when the node is serialized again.
func FromDocument[T any](d Document) (Node[T], error) {
	v, err := coerceValue[T](d.Value)
	if err != nil {
		return Node[T]{}, fmt.Errorf("document %q: %v", d.Label, err)
	}
	children := make([]subexpr, 0, len(d.Subexpr))
	for _, sub := range d.Subexpr {
		children = append(children, docNode{doc: sub})
	}
	if len(children) == 0 {
		children = nil
	}
	return Node[T]{label: d.Label, value: v, children: children}, nil
}

// docNode is a document-backed subexpression: a child restored from
// persisted form whose original payload type is no longer known.
type docNode struct {
	doc Document
}

func (d docNode) Name() string       { return d.doc.Label }
func (d docNode) Document() Document { return d.doc }

// coerceValue narrows a decoded document value into the payload type.
func coerceValue[T any](v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	switch any(zero).(type) {
	case int:
		if f, ok := v.(float64); ok {
			return any(int(f)).(T), nil
		}
	case int64:
		if f, ok := v.(float64); ok {
			return any(int64(f)).(T), nil
		}
	case float32:
		if f, ok := v.(float64); ok {
			return any(float32(f)).(T), nil
		}
	case float64:
		switch n := v.(type) {
		case int:
			return any(float64(n)).(T), nil
		case int64:
			return any(float64(n)).(T), nil
		}
	}
	return zero, fmt.Errorf("cannot coerce %v (%T) to %T", v, v, zero)
}
