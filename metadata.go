package workflow

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one key/value pair of Metadata.
type Field struct {
	Key   string
	Value string
}

// Metadata is a string mapping that keeps the order keys were written in.
// It encodes as a JSON object with keys in that order.
type Metadata []Field

// Get returns the value stored under key.
func (m Metadata) Get(key string) (string, bool) {
	for _, f := range m {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Set replaces the value of an existing key in place or appends a new one.
func (m Metadata) Set(key, value string) Metadata {
	for i, f := range m {
		if f.Key == key {
			m[i].Value = value
			return m
		}
	}
	return append(m, Field{Key: key, Value: value})
}

// MarshalJSON writes the fields as an object in order. Nil encodes as null.
func (m Metadata) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keeping key order. A repeated key keeps its
// first position and its last value.
func (m *Metadata) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*m = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("workflow: metadata must be an object")
	}

	out := Metadata{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("workflow: metadata key must be a string")
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("workflow: metadata %q: %w", key, err)
		}
		out = out.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}
