package model

import (
	"bytes"
	"encoding/json"
)

// Nullable tracks presence and value of a nullable JSON field for partial updates:
//   - Present=false: field absent (leave unchanged)
//   - Present=true, Value=nil: explicit null (set to NULL)
//   - Present=true, Value!=nil: set to value
type Nullable[T any] struct {
	Present bool
	Value   *T
}

// Set returns a present Nullable holding v.
func Set[T any](v T) Nullable[T] {
	return Nullable[T]{Present: true, Value: &v}
}

// Null returns a present Nullable holding null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Present: true}
}

// UnmarshalJSON is only called when the field is present in the document.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Present = true
	if string(bytes.TrimSpace(data)) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}
