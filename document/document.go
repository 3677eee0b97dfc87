package document

import (
	json "github.com/goccy/go-json"
)

// Document is a JSON object that remembers the order its keys were inserted.
//
// The zero value is not usable; create instances with New or Parse. Documents
// built by the codec are treated as immutable value objects: constructed once
// by a read or encode operation and only inspected afterwards.
type Document struct {
	keys   []string
	values map[string]any
}

// New creates an empty document.
func New() *Document {
	return &Document{values: make(map[string]any)}
}

// Len returns the number of keys in the document.
func (d *Document) Len() int {
	return len(d.keys)
}

// Keys returns the document's keys in insertion order.
//
// The returned slice is a copy; mutating it does not affect the document.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)

	return keys
}

// Has reports whether the document contains the given key.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Get returns the value stored under key and whether the key is present.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Set stores value under key. A new key is appended after all existing keys;
// setting an existing key replaces its value but keeps its original position.
func (d *Document) Set(key string, value any) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// GetDocument returns the nested object stored under key.
// The second result is false when the key is absent or holds a non-object.
func (d *Document) GetDocument(key string) (*Document, bool) {
	v, ok := d.values[key]
	if !ok {
		return nil, false
	}
	sub, ok := v.(*Document)

	return sub, ok
}

// GetArray returns the array stored under key.
// The second result is false when the key is absent or holds a non-array.
func (d *Document) GetArray(key string) ([]any, bool) {
	v, ok := d.values[key]
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)

	return arr, ok
}

// GetString returns the string stored under key.
// The second result is false when the key is absent or holds a non-string.
func (d *Document) GetString(key string) (string, bool) {
	v, ok := d.values[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)

	return s, ok
}

// GetNumber returns the number stored under key.
// The second result is false when the key is absent or holds a non-number.
func (d *Document) GetNumber(key string) (json.Number, bool) {
	v, ok := d.values[key]
	if !ok {
		return "", false
	}
	n, ok := v.(json.Number)

	return n, ok
}
