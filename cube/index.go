package cube

import (
	"fmt"

	"github.com/arloliu/jsonstat/document"
)

// FlatIndex computes the flat value-array index of one cube cell from its
// per-dimension category indices, using row-major mixed-radix weighting:
// dimension d has positional weight product(sizes[d+1:]), so dimension 0 is
// the outermost (slowest-varying) axis.
//
// Fails when the two lists differ in length or any index falls outside its
// dimension's extent (ErrIndexOutOfRange).
func FlatIndex(indices, sizes []int) (int, error) {
	if len(indices) != len(sizes) {
		return 0, fmt.Errorf("got %d dimension indices for %d dimensions", len(indices), len(sizes))
	}

	index := 0
	weight := 1
	for d := len(sizes) - 1; d >= 0; d-- {
		if indices[d] < 0 || indices[d] >= sizes[d] {
			return 0, fmt.Errorf("%w: index %d of dimension %d exceeds size %d", ErrIndexOutOfRange, indices[d], d, sizes[d])
		}
		index += indices[d] * weight
		weight *= sizes[d]
	}

	return index, nil
}

// DimensionIndex returns the position of a category within one dimension's
// declared order.
//
// A list-shaped category.index is scanned linearly; a mapping is looked up
// directly. A dimension without a category.index key has a single category at
// position 0, so 0 is returned for any query against it. A category missing
// from an explicit index fails with ErrUnknownCategory.
func DimensionIndex(doc *document.Document, dimID, category string) (int, error) {
	desc, err := descriptor(doc, dimID)
	if err != nil {
		return 0, err
	}

	cat, ok := desc.GetDocument("category")
	if !ok {
		return 0, nil
	}
	v, ok := cat.Get("index")
	if !ok {
		return 0, nil
	}

	switch index := v.(type) {
	case []any:
		for i, id := range index {
			if ToCanonical(id) == category {
				return i, nil
			}
		}
	case *document.Document:
		if pos, ok := index.Get(category); ok {
			return toInt(pos)
		}
	}

	return 0, fmt.Errorf("%w: %q in dimension %q", ErrUnknownCategory, category, dimID)
}

// DimensionIndices converts a category query into one index per dimension, in
// declared dimension order. The query maps dimension id to the requested
// category id; every dimension must be constrained, an unconstrained
// dimension fails with ErrUnknownCategory.
func DimensionIndices(doc *document.Document, query map[string]string) ([]int, error) {
	ids, err := DimensionIDs(doc)
	if err != nil {
		return nil, err
	}

	indices := make([]int, len(ids))
	for d, id := range ids {
		category, ok := query[id]
		if !ok {
			return nil, fmt.Errorf("%w: query constrains no category for dimension %q", ErrUnknownCategory, id)
		}
		idx, err := DimensionIndex(doc, id, category)
		if err != nil {
			return nil, err
		}
		indices[d] = idx
	}

	return indices, nil
}

// Lookup resolves a category query to a single cell value: query to dimension
// indices, indices to flat index, flat index into the value array. Works for
// both dense and sparse value encodings.
//
// Fails with ErrIndexOutOfRange when the computed index is at or beyond the
// end of the value array.
func Lookup(doc *document.Document, query map[string]string) (any, error) {
	indices, err := DimensionIndices(doc, query)
	if err != nil {
		return nil, err
	}

	sizes, err := Sizes(doc)
	if err != nil {
		return nil, err
	}

	index, err := FlatIndex(indices, sizes)
	if err != nil {
		return nil, err
	}

	values, err := ResolveValues(doc, "value")
	if err != nil {
		return nil, err
	}
	if index >= len(values) {
		return nil, fmt.Errorf("%w: flat index %d exceeds %d values", ErrIndexOutOfRange, index, len(values))
	}

	return values[index], nil
}
