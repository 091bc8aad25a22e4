package bvec

import (
	"encoding/json"
	"fmt"
)

var (
	_ json.Marshaler   = (*Vec[any])(nil)
	_ json.Unmarshaler = (*Vec[any])(nil)
)

// MarshalJSON encodes the live elements as a JSON array, in insertion order.
func (v *Vec[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.data[:v.length])
}

// UnmarshalJSON replaces the contents of the vector with the decoded
// elements. If the array holds more elements than the vector's capacity,
// an error is returned and the vector is unchanged.
func (v *Vec[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	if len(items) > len(v.data) {
		return fmt.Errorf("decoded %d elements into vec of capacity %d", len(items), len(v.data))
	}

	v.Clear()
	v.length = copy(v.data, items)

	return nil
}
