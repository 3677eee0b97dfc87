// Package document provides an order-preserving JSON object model for JSON-stat
// documents.
//
// JSON-stat leans on object key order in several places: the 2.0 envelope is
// expected to serialize as version, class, id, size, dimension, value, and the
// per-dimension category maps are conventionally written in category order.
// Go's built-in maps discard insertion order, so this package keeps an explicit
// key list alongside the value map and drives both parsing and serialization
// through it.
//
// # Value Types
//
// A parsed Document holds values of the following dynamic types:
//
//   - *Document: nested JSON object
//   - []any: JSON array (elements recursively use these same types)
//   - json.Number: JSON number (lexical form preserved, int vs float intact)
//   - string, bool, nil: the remaining JSON scalars
//
// Numbers are never folded into float64; they stay as json.Number so that a
// parse/serialize round trip is lossless for integer values outside the
// float64 mantissa and for decimal forms such as 1.10.
//
// # Usage
//
//	doc, err := document.Parse(data)
//	if err != nil {
//	    return err
//	}
//	dim, ok := doc.GetDocument("dimension")
//
// Parsing and serialization use github.com/goccy/go-json, a drop-in
// replacement for encoding/json with the same Decoder token API.
package document
