package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"sigs.k8s.io/yaml"
)

var ErrDeserialization = errors.New("deserialization failed")

// DeserializationError reports a malformed single object
// of the given category. The data is used to determine the
// id of the object for the error message.
func DeserializationError(t ObjectType, data []byte, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrDeserialization, t, PeekId(data), err)
}

// PeekId extracts the object id from serialized data without
// decoding the rest. It returns ? if no id can be determined.
func PeekId(data []byte) string {
	var meta struct {
		Id *int `json:"id"`
	}
	if yaml.Unmarshal(data, &meta) != nil || meta.Id == nil {
		return "?"
	}
	return strconv.Itoa(*meta.Id)
}

// ToDict provides the key/value document representation
// of an object.
func ToDict(o interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	err = json.Unmarshal(data, &m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Decoder decodes serialized objects of a category.
type Decoder[T any] interface {
	Decode(data []byte) (T, error)
}

// FromDict decodes an object from its key/value document
// representation with the given decoder.
func FromDict[T any](d Decoder[T], t ObjectType, m map[string]interface{}) (T, error) {
	var _nil T

	data, err := json.Marshal(m)
	if err != nil {
		return _nil, DeserializationError(t, nil, err)
	}
	return Decode(d, t, data)
}

// Decode decodes an object with the given decoder and maps errors
// to deserialization errors.
func Decode[T any](d Decoder[T], t ObjectType, data []byte) (T, error) {
	o, err := d.Decode(data)
	if err != nil {
		return o, DeserializationError(t, data, err)
	}
	return o, nil
}
