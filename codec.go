package cell

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Encoders below never add framing of their own: a cell encodes as its
// held value. They have value receivers so that cells reached by value,
// such as the elements of a projected []Cell[T], encode the same way.
// Decoders decode into a fresh T and only replace the held value on
// success.

var (
	jsonMarshal   func(v any) ([]byte, error)
	jsonUnmarshal func(data []byte, v any) error
)

// SetDefaultJSONMarshal sets the default JSON serialization and deserialization functions.
// If not set, the standard library is used by default.
func SetDefaultJSONMarshal(marshal func(v any) ([]byte, error), unmarshal func(data []byte, v any) error) {
	jsonMarshal, jsonUnmarshal = marshal, unmarshal
}

// MarshalJSON JSON serialization
func (c Cell[T]) MarshalJSON() ([]byte, error) {
	if jsonMarshal != nil {
		return jsonMarshal(c.v)
	}
	return json.Marshal(c.v)
}

// UnmarshalJSON JSON deserialization
func (c *Cell[T]) UnmarshalJSON(data []byte) error {
	var v T
	if jsonUnmarshal != nil {
		if err := jsonUnmarshal(data, &v); err != nil {
			return err
		}
	} else {
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
	}
	c.v = v
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (c Cell[T]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(c.v)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (c *Cell[T]) UnmarshalCBOR(data []byte) error {
	var v T
	if err := cbor.Unmarshal(data, &v); err != nil {
		return err
	}
	c.v = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Cell[T]) MarshalYAML() (any, error) {
	return c.v, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Cell[T]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	c.v = v
	return nil
}

var (
	_ json.Marshaler   = Cell[int]{}
	_ cbor.Marshaler   = Cell[int]{}
	_ yaml.Marshaler   = Cell[int]{}
	_ json.Unmarshaler = (*Cell[int])(nil)
	_ cbor.Unmarshaler = (*Cell[int])(nil)
	_ yaml.Unmarshaler = (*Cell[int])(nil)
)
