package cube

import (
	"fmt"
	"strconv"

	"github.com/arloliu/jsonstat/document"
)

// ResolveValues returns the dense flat value array of a dataset document.
//
// A dense list is returned unchanged. A sparse encoding, a mapping from
// decimal-string flat index to value, is reconstructed into a dense slice of
// length product(size) with nil at every unmapped offset. The size list is
// read from the top level first, then from dimension.size; when sparse
// reconstruction is needed and neither is present the resolver fails with
// ErrMissingSize.
//
// Sparse keys must parse as integers below product(size); offending keys fail
// with ErrIndexOutOfRange.
func ResolveValues(doc *document.Document, valueKey string) ([]any, error) {
	v, ok := doc.Get(valueKey)
	if !ok {
		return nil, fmt.Errorf("document has no %q array", valueKey)
	}

	switch values := v.(type) {
	case []any:
		return values, nil
	case *document.Document:
		return denseFromSparse(doc, values)
	default:
		return nil, fmt.Errorf("%q is neither a value list nor a sparse value mapping", valueKey)
	}
}

func denseFromSparse(doc *document.Document, sparse *document.Document) ([]any, error) {
	sizes, err := Sizes(doc)
	if err != nil {
		return nil, err
	}

	total := 1
	for _, size := range sizes {
		total *= size
	}

	dense := make([]any, total)
	for _, key := range sparse.Keys() {
		idx, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("sparse value key %q is not an integer", key)
		}
		if idx < 0 || idx >= total {
			return nil, fmt.Errorf("%w: sparse value key %d outside cube of %d cells", ErrIndexOutOfRange, idx, total)
		}
		dense[idx], _ = sparse.Get(key)
	}

	return dense, nil
}
