package either

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Either documents are single-key mappings: {"left": v} or {"right": v}.
const (
	leftKey  = "left"
	rightKey = "right"
)

// MarshalJSON implements json.Marshaler.
func (e Either[L, R]) MarshalJSON() ([]byte, error) {
	if e.isRight {
		return json.Marshal(map[string]R{rightKey: e.right})
	}
	return json.Marshal(map[string]L{leftKey: e.left})
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves e unchanged,
// like it does for the standard library's own types.
func (e *Either[L, R]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(doc) != 1 {
		return fmt.Errorf("%w: want exactly one of %q or %q, got %d keys", ErrMalformed, leftKey, rightKey, len(doc))
	}

	if raw, ok := doc[leftKey]; ok {
		var v L
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decode left: %w", err)
		}
		mustDistinct[L, R]("UnmarshalJSON")
		e.SetLeft(v)
		return nil
	}
	if raw, ok := doc[rightKey]; ok {
		var v R
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decode right: %w", err)
		}
		mustDistinct[L, R]("UnmarshalJSON")
		e.SetRight(v)
		return nil
	}
	return fmt.Errorf("%w: unknown key", ErrMalformed)
}

// MarshalYAML implements yaml.Marshaler.
func (e Either[L, R]) MarshalYAML() (interface{}, error) {
	if e.isRight {
		return map[string]R{rightKey: e.right}, nil
	}
	return map[string]L{leftKey: e.left}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Either[L, R]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("%w: line %d: want a mapping with exactly one of %q or %q", ErrMalformed, node.Line, leftKey, rightKey)
	}

	key, value := node.Content[0], node.Content[1]
	switch key.Value {
	case leftKey:
		var v L
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("decode left: %w", err)
		}
		mustDistinct[L, R]("UnmarshalYAML")
		e.SetLeft(v)
	case rightKey:
		var v R
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("decode right: %w", err)
		}
		mustDistinct[L, R]("UnmarshalYAML")
		e.SetRight(v)
	default:
		return fmt.Errorf("%w: line %d: unknown key %q", ErrMalformed, key.Line, key.Value)
	}
	return nil
}
