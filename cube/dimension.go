package cube

import (
	"fmt"
	"sort"

	"github.com/arloliu/jsonstat/document"
)

// Category is one discrete value along a dimension: an identifier, a display
// label and the category's position within the dimension's declared order.
type Category struct {
	ID    string
	Label string
	Index int
}

// ResolveDimension produces the ordered category list of one dimension.
//
// The descriptor is located under dimension[dimID], unless doc itself already
// is a dimension-shaped object (a standalone version 2.0 dimension document
// with a top-level category key), in which case doc is used directly.
//
// Two fallback rules apply, both defined behavior rather than errors:
//   - category.label absent, or an id missing from it: the id doubles as its
//     own label.
//   - category.index absent: the dimension has exactly one category, the first
//     labelled id at position 0. This is the common encoding for degenerate
//     constant dimensions.
//
// The result is sorted ascending by category position. The sort is mandatory:
// when category.index is a mapping, the declared positions govern, not the
// key order of the source object.
//
// Returns ErrMalformedDimension when the descriptor is missing, or when it
// carries neither a category index nor category labels.
func ResolveDimension(doc *document.Document, dimID string) ([]Category, error) {
	desc, err := descriptor(doc, dimID)
	if err != nil {
		return nil, err
	}

	category, ok := desc.GetDocument("category")
	if !ok {
		return nil, fmt.Errorf("%w: dimension %q has no category object", ErrMalformedDimension, dimID)
	}

	labels, hasLabels := categoryLabels(category)

	cats, hasIndex, err := categoryIndex(category, dimID)
	if err != nil {
		return nil, err
	}
	if !hasIndex {
		// No explicit index: a single synthesized category, the first
		// labelled id at position 0.
		if !hasLabels || len(labels.order) == 0 {
			return nil, fmt.Errorf("%w: dimension %q has neither category index nor labels", ErrMalformedDimension, dimID)
		}
		cats = []Category{{ID: labels.order[0], Index: 0}}
	}

	for i := range cats {
		if label, ok := labels.byID[cats[i].ID]; ok {
			cats[i].Label = label
		} else {
			cats[i].Label = cats[i].ID
		}
	}

	sort.SliceStable(cats, func(i, j int) bool { return cats[i].Index < cats[j].Index })

	return cats, nil
}

// DimensionName returns the display name of a dimension: its descriptor's
// label, falling back to the dimension id when the label is empty or absent.
func DimensionName(doc *document.Document, dimID string) string {
	desc, err := descriptor(doc, dimID)
	if err != nil {
		return dimID
	}
	if name, ok := desc.GetString("label"); ok && name != "" {
		return name
	}

	return dimID
}

// descriptor locates the descriptor object for dimID. A document that itself
// carries a category key is treated as the descriptor (standalone dimension
// input); otherwise the lookup descends into dimension[dimID].
func descriptor(doc *document.Document, dimID string) (*document.Document, error) {
	if doc.Has("category") {
		return doc, nil
	}

	dim, ok := doc.GetDocument("dimension")
	if !ok {
		return nil, fmt.Errorf("%w: document has no dimension object", ErrMalformedDimension)
	}
	desc, ok := dim.GetDocument(dimID)
	if !ok {
		return nil, fmt.Errorf("%w: no descriptor for dimension %q", ErrMalformedDimension, dimID)
	}

	return desc, nil
}

// labelSet holds resolved category labels plus the id order they appeared in.
type labelSet struct {
	byID  map[string]string
	order []string
}

func categoryLabels(category *document.Document) (labelSet, bool) {
	set := labelSet{byID: make(map[string]string)}

	labels, ok := category.GetDocument("label")
	if !ok {
		return set, false
	}
	for _, id := range labels.Keys() {
		v, _ := labels.Get(id)
		set.byID[id] = ToCanonical(v)
		set.order = append(set.order, id)
	}

	return set, true
}

// categoryIndex reads category.index in either of its two shapes: an ordered
// id list (position = offset) or an id to position mapping.
func categoryIndex(category *document.Document, dimID string) ([]Category, bool, error) {
	v, ok := category.Get("index")
	if !ok {
		return nil, false, nil
	}

	switch index := v.(type) {
	case []any:
		cats := make([]Category, len(index))
		for i, id := range index {
			cats[i] = Category{ID: ToCanonical(id), Index: i}
		}

		return cats, true, nil
	case *document.Document:
		cats := make([]Category, 0, index.Len())
		for _, id := range index.Keys() {
			pos, _ := index.Get(id)
			n, err := toInt(pos)
			if err != nil {
				return nil, false, fmt.Errorf("%w: dimension %q index for category %q: %v", ErrMalformedDimension, dimID, id, err)
			}
			cats = append(cats, Category{ID: id, Index: n})
		}

		return cats, true, nil
	default:
		return nil, false, fmt.Errorf("%w: dimension %q category.index is neither list nor mapping", ErrMalformedDimension, dimID)
	}
}
