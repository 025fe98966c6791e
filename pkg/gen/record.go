package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

// Record is one generated test case: field values in declaration order.
//
// Records built by the generator hold typed values (int, float64, string,
// bool, []int, [][]int, Adjacency, []WeightedEdge, or a choice option).
// Records decoded from JSON hold each value as json.RawMessage so that a
// round trip reproduces the original bytes, key order included.
type Record struct {
	names  []string
	values map[string]any
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// Set stores v under name. A new name is appended to the field order.
func (r *Record) Set(name string, v any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = v
}

// Get returns the value stored under name.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.names)
}

// Names returns the field names in order.
func (r *Record) Names() []string {
	return append([]string(nil), r.names...)
}

// All iterates fields in order.
func (r *Record) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, name := range r.names {
			if !yield(name, r.values[name]) {
				return
			}
		}
	}
}

// MarshalJSON encodes the record as a JSON object in field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[name])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping field order and storing each
// value as json.RawMessage.
func (r *Record) UnmarshalJSON(data []byte) error {
	*r = Record{values: make(map[string]any)}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record must be a JSON object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		r.Set(name, raw)
	}
	_, err = dec.Token()
	return err
}

// MarshalYAML encodes the record as a YAML mapping in field order.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range r.names {
		val, err := yamlValue(r.values[name])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name},
			val,
		)
	}
	return node, nil
}

// yamlValue converts a field value to a YAML node. Raw JSON is parsed as YAML,
// which keeps object key order.
func yamlValue(v any) (*yaml.Node, error) {
	var node yaml.Node
	if raw, ok := v.(json.RawMessage); ok {
		if err := yaml.Unmarshal(raw, &node); err != nil {
			return nil, err
		}
		if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
			return node.Content[0], nil
		}
		return &node, nil
	}
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	return &node, nil
}
