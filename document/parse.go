package document

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// Parse decodes a JSON object from data into a Document.
//
// The top-level value must be an object. Object key order is preserved as the
// document's key order; when a key occurs more than once, the last value wins
// but the key keeps the position of its first occurrence. Numbers decode as
// json.Number so their lexical form survives a round trip.
func Parse(data []byte) (*Document, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader decodes a JSON object from r into a Document.
//
// See Parse for decoding semantics.
func ParseReader(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read opening token: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("top-level JSON value is %v, expected an object", tok)
	}

	return parseObject(dec)
}

// parseObject consumes object members up to and including the closing brace.
// The opening brace has already been consumed by the caller.
func parseObject(dec *json.Decoder) (*Document, error) {
	doc := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %v, expected a string", tok)
		}

		value, err := parseValue(dec)
		if err != nil {
			return nil, fmt.Errorf("parse value of %q: %w", key, err)
		}
		doc.Set(key, value)
	}

	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read object end: %w", err)
	}

	return doc, nil
}

func parseArray(dec *json.Decoder) ([]any, error) {
	arr := make([]any, 0)
	for dec.More() {
		value, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}

	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read array end: %w", err)
	}

	return arr, nil
}

func parseValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", delim)
		}
	}

	// string, json.Number, bool or nil.
	return tok, nil
}
