package models

import "encoding/json"

// Nullable distinguishes the three states a PATCH-style JSON field can be in:
//   - absent:         Set=false, Valid=false
//   - explicit null:  Set=true,  Valid=false
//   - present:        Set=true,  Valid=true, Value holds the decoded value
//
// A plain pointer cannot tell "absent" from "null", which matters when a
// client wants to clear an optional field such as a mood entry's notes.
type Nullable[T any] struct {
	Value T
	Valid bool
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true

	if string(data) == "null" {
		var zero T
		n.Value = zero
		n.Valid = false
		return nil
	}

	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// ToPtr returns nil for null/absent, otherwise a pointer to a copy of Value
func (n Nullable[T]) ToPtr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// Apply writes the field into dst when it was present in the payload
func (n Nullable[T]) Apply(dst **T) {
	if !n.Set {
		return
	}
	*dst = n.ToPtr()
}
