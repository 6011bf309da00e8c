package domain

import "encoding/json"

// Optional distinguishes a JSON key that was omitted from one that was sent
// as null and from one that carries a value. PATCH bodies need all three
// states: omitted means "no change" while an explicit null is rejected as
// input, never treated as "clear the field".
type Optional[T any] struct {
	present bool
	null    bool
	value   T
}

// UnmarshalJSON only runs when the key is present, so the zero Optional
// stays "absent".
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.present = true
	if string(data) == "null" {
		o.null = true
		return nil
	}
	return json.Unmarshal(data, &o.value)
}

// Present reports whether the key appeared in the payload at all.
func (o Optional[T]) Present() bool { return o.present }

// Null reports whether the key was sent as an explicit null.
func (o Optional[T]) Null() bool { return o.present && o.null }

// Get returns the value and whether a non-null value was provided.
func (o Optional[T]) Get() (T, bool) {
	if !o.present || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}
