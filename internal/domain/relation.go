package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Relation is a reference to another document that arrives either as a bare identifier
// or as the fully expanded document. The zero value is an absent relation.
type Relation[T any] struct {
	ID    string
	Value *T
}

// Ref returns a Relation holding only the identifier id.
func Ref[T any](id string) Relation[T] {
	return Relation[T]{ID: id}
}

// Expanded returns a Relation holding the document v.
func Expanded[T any](v *T) Relation[T] {
	return Relation[T]{Value: v}
}

// IsZero reports whether the relation is absent.
func (r Relation[T]) IsZero() bool {
	return r.ID == "" && r.Value == nil
}

// IsExpanded reports whether the relation carries the full document.
func (r Relation[T]) IsExpanded() bool {
	return r.Value != nil
}

// Resolve returns the expanded document, looking the identifier up in known when the
// relation is only a reference. It returns nil for absent or dangling references.
func (r Relation[T]) Resolve(known map[string]*T) *T {
	if r.Value != nil {
		return r.Value
	}
	if r.ID == "" {
		return nil
	}
	return known[r.ID]
}

// UnmarshalJSON accepts null, a JSON string (identifier) or a JSON object (document).
func (r *Relation[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*r = Relation[T]{}
		return nil
	case data[0] == '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Relation[T]{ID: id}
		return nil
	case data[0] == '{':
		v := new(T)
		if err := json.Unmarshal(data, v); err != nil {
			return err
		}
		*r = Relation[T]{Value: v}
		return nil
	default:
		return fmt.Errorf("%w: relation must be an id or an object", ErrInvalidInput)
	}
}

// MarshalJSON writes the document when expanded, the identifier otherwise.
func (r Relation[T]) MarshalJSON() ([]byte, error) {
	if r.Value != nil {
		return json.Marshal(r.Value)
	}
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

// UnmarshalYAML accepts a scalar (identifier) or a mapping (document).
func (r *Relation[T]) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*r = Relation[T]{}
			return nil
		}
		*r = Relation[T]{ID: node.Value}
		return nil
	case yaml.MappingNode:
		v := new(T)
		if err := node.Decode(v); err != nil {
			return err
		}
		*r = Relation[T]{Value: v}
		return nil
	default:
		return fmt.Errorf("%w: relation must be an id or a mapping (line %d)", ErrInvalidInput, node.Line)
	}
}
