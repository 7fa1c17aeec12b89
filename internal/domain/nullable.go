package domain

import (
	"bytes"
	"encoding/json"
)

// Nullable is a patch field that distinguishes an omitted JSON member from an
// explicit null. Present is true whenever the member appeared in the document;
// Null is true when its value was the literal null.
type Nullable[T any] struct {
	Value   T
	Present bool
	Null    bool
}

// Set returns a Nullable holding v.
func Set[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Present: true}
}

// Null returns a Nullable that clears the field it is applied to.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Present: true, Null: true}
}

// IsSet reports whether the field carries a non-null value.
func (n Nullable[T]) IsSet() bool {
	return n.Present && !n.Null
}

// IsNull reports whether the field was explicitly cleared.
func (n Nullable[T]) IsNull() bool {
	return n.Present && n.Null
}

// Ptr returns a pointer to the value when set, nil otherwise.
func (n Nullable[T]) Ptr() *T {
	if !n.IsSet() {
		return nil
	}
	v := n.Value
	return &v
}

// UnmarshalJSON implements json.Unmarshaler.
// encoding/json only calls it for members that are present in the input.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		n.Value = zero
		n.Null = true
		return nil
	}
	n.Null = false
	return json.Unmarshal(data, &n.Value)
}

// MarshalJSON implements json.Marshaler. Absent and null fields both encode as null.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
