package pathobj

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// FromJSON builds an Object from a JSON document. Integral numbers come in
// as int64, others as float64.
func FromJSON(d []byte, opts ...Option) (*Object, error) {
	v, err := decodeJSON(d)
	if err != nil {
		return nil, err
	}
	return New(v, opts...), nil
}

// FromYAML builds an Object from a YAML document.
func FromYAML(d []byte, opts ...Option) (*Object, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return New(v, opts...), nil
}

func decodeJSON(d []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
