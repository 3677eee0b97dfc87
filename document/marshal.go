package document

import (
	"bytes"

	json "github.com/goccy/go-json"
)

var _ json.Marshaler = (*Document)(nil)

// MarshalJSON serializes the document with keys in insertion order.
//
// Nested documents marshal recursively, so a parsed document serializes back
// with the exact object key order of its source.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')

		vb, err := json.Marshal(d.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// JSON serializes the document to JSON-stat text.
func (d *Document) JSON() (string, error) {
	data, err := d.MarshalJSON()
	if err != nil {
		return "", err
	}

	return string(data), nil
}
