package constraint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

// Set is an insertion-ordered mapping from field name to constraint.
// The zero value is an empty set ready to use.
type Set struct {
	names  []string
	byName map[string]Constraint
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{byName: make(map[string]Constraint)}
}

// Put stores c under name. A new name is appended to the order; an existing
// name keeps its position and has its constraint replaced.
func (s *Set) Put(name string, c Constraint) *Set {
	if s.byName == nil {
		s.byName = make(map[string]Constraint)
	}
	if _, ok := s.byName[name]; !ok {
		s.names = append(s.names, name)
	}
	s.byName[name] = c
	return s
}

// Get returns the constraint stored under name.
func (s *Set) Get(name string) (Constraint, bool) {
	c, ok := s.byName[name]
	return c, ok
}

// Len returns the number of fields.
func (s *Set) Len() int {
	return len(s.names)
}

// Names returns the field names in declaration order.
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}

// All iterates fields in declaration order.
func (s *Set) All() iter.Seq2[string, Constraint] {
	return func(yield func(string, Constraint) bool) {
		for _, name := range s.names {
			if !yield(name, s.byName[name]) {
				return
			}
		}
	}
}

// MarshalJSON encodes the set as a JSON object in declaration order.
func (s *Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.byName[name])
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

// UnmarshalJSON decodes a JSON object, keeping the order of its keys.
func (s *Set) UnmarshalJSON(data []byte) error {
	*s = Set{byName: make(map[string]Constraint)}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("constraints must be a JSON object, got %v", tok)
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
		var c Constraint
		if err := dec.Decode(&c); err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		s.Put(name, c)
	}

	_, err = dec.Token()
	return err
}

// UnmarshalYAML decodes a YAML mapping, keeping the order of its keys.
func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	*s = Set{byName: make(map[string]Constraint)}

	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: constraints must be a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var c Constraint
		if err := val.Decode(&c); err != nil {
			return fmt.Errorf("field %s: %w", key.Value, err)
		}
		s.Put(key.Value, c)
	}
	return nil
}

// MarshalYAML encodes the set as a YAML mapping in declaration order.
func (s *Set) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range s.names {
		var val yaml.Node
		if err := val.Encode(s.byName[name]); err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name},
			&val,
		)
	}
	return node, nil
}
