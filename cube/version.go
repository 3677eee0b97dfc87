package cube

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/arloliu/jsonstat/document"
)

// IsVersion2 reports whether the document declares a JSON-stat version of 2.0
// or later. Documents without a version attribute are treated as pre-2.0.
func IsVersion2(doc *document.Document) bool {
	v, ok := doc.Get("version")
	if !ok {
		return false
	}

	var version float64
	switch t := v.(type) {
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return false
		}
		version = f
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return false
		}
		version = f
	default:
		return false
	}

	return version >= 2.0
}

// DimensionIDs returns the ordered dimension id list of a dataset document.
//
// For version 2.0 and later the id list lives at the top level; for older
// documents it is nested under the dimension object.
func DimensionIDs(doc *document.Document) ([]string, error) {
	arr, ok := doc.GetArray("id")
	if !ok {
		dim, found := doc.GetDocument("dimension")
		if !found {
			return nil, fmt.Errorf("document has no dimension object")
		}
		arr, ok = dim.GetArray("id")
	}
	if !ok {
		return nil, fmt.Errorf("document has no dimension id list")
	}

	ids := make([]string, len(arr))
	for i, v := range arr {
		ids[i] = ToCanonical(v)
	}

	return ids, nil
}

// Sizes returns the ordered dimension cardinality list of a dataset document,
// checking the top level first and falling back to dimension.size.
//
// Returns ErrMissingSize when neither location carries a size list.
func Sizes(doc *document.Document) ([]int, error) {
	arr, ok := doc.GetArray("size")
	if !ok {
		if dim, found := doc.GetDocument("dimension"); found {
			arr, ok = dim.GetArray("size")
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: document carries neither size nor dimension.size", ErrMissingSize)
	}

	sizes := make([]int, len(arr))
	for i, v := range arr {
		n, err := toInt(v)
		if err != nil {
			return nil, fmt.Errorf("size entry %d: %w", i, err)
		}
		sizes[i] = n
	}

	return sizes, nil
}

// toInt converts a parsed JSON scalar to an int.
func toInt(v any) (int, error) {
	switch t := v.(type) {
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, fmt.Errorf("value %q is not an integer", t.String())
		}

		return int(n), nil
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case float64:
		return int(t), nil
	default:
		return 0, fmt.Errorf("value %v is not a number", v)
	}
}
