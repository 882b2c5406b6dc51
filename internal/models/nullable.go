package models

import "encoding/json"

// Nullable represents an optional JSON field that can distinguish between:
// - Field absent in JSON: Set=false, Valid=false
// - Field present with null: Set=true, Valid=false
// - Field present with value: Set=true, Valid=true, Value=the value
//
// Pointer fields cannot tell "absent" from "null" after unmarshaling, which
// PATCH-style updates need in order to clear a column.
type Nullable[T any] struct {
	Value T
	Valid bool // true if Value is not null
	Set   bool // true if field was present in JSON
}

// NullableOf returns a set, valid Nullable holding v
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Valid: true, Set: true}
}

// Null returns a Nullable that was explicitly set to null
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true

	var zero T
	if string(data) == "null" {
		n.Valid = false
		n.Value = zero
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = v
	n.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// ToPtr converts the field to a pointer, nil when null or absent.
func (n Nullable[T]) ToPtr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
