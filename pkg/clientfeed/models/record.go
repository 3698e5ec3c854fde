package models

import (
	"bytes"
	"encoding/json"
)

// Record is an output record: a mapping from field name to value that
// preserves insertion order when marshalled. Downstream consumers are
// order-sensitive, so field order must survive serialization.
type Record struct {
	keys   []string
	fields map[string]interface{}
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{fields: make(map[string]interface{})}
}

// Set stores a field. A new key is appended after all existing keys;
// setting an existing key overwrites its value in place.
func (r *Record) Set(key string, value interface{}) {
	if _, ok := r.fields[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.fields[key] = value
}

// Get returns the value of a field and whether it is present.
func (r *Record) Get(key string) (interface{}, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Has reports whether a field is present.
func (r *Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	return r.keys
}

// MarshalJSON encodes the record as a compact JSON object with fields
// in insertion order. HTML characters and non-ASCII text are left
// unescaped.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(k); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
		buf.WriteByte(':')
		if err := enc.Encode(r.fields[k]); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
