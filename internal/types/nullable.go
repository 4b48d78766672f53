package types

import (
	"bytes"
	"encoding/json"
	"time"
)

var jsonNull = []byte("null")

// NullableTime distinguishes an absent JSON field from an explicit
// null in partial-update payloads: absent leaves Set false, null sets
// Set with a nil Value. json.Unmarshal only calls UnmarshalJSON for
// keys present in the payload, which is what makes the distinction
// observable.
type NullableTime struct {
	Set   bool
	Value *time.Time
}

func (n *NullableTime) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, jsonNull) {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

func (n NullableTime) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return jsonNull, nil
	}
	return json.Marshal(n.Value)
}

// NullableUint is NullableTime's counterpart for nullable numeric
// references, such as a material's owner link.
type NullableUint struct {
	Set   bool
	Value *uint
}

func (n *NullableUint) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, jsonNull) {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

func (n NullableUint) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return jsonNull, nil
	}
	return json.Marshal(n.Value)
}
