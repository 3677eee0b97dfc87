package jsonstat

import (
	"context"
	"fmt"

	"github.com/arloliu/jsonstat/cube"
	"github.com/arloliu/jsonstat/document"
	"github.com/arloliu/jsonstat/format"
	"github.com/arloliu/jsonstat/table"
)

// Dataset is a JSON-stat dataset document: a cube of values over ordered
// categorical dimensions. Datasets are immutable once read.
type Dataset struct {
	doc *document.Document
}

// ReadDataset constructs a Dataset from any supported source.
//
// In addition to the shared source kinds (document, JSON text, bytes, reader,
// URL), a *table.Table source is encoded into a version 2.0 dataset with the
// default "value" column.
func ReadDataset(ctx context.Context, source any, opts ...ReadOption) (*Dataset, error) {
	cfg, err := newReadConfig(opts)
	if err != nil {
		return nil, err
	}

	if tbl, ok := source.(*table.Table); ok {
		doc, err := cube.Encode(tbl)
		if err != nil {
			return nil, err
		}

		return &Dataset{doc: doc}, nil
	}

	doc, err := readDocument(ctx, cfg, source)
	if err != nil {
		return nil, err
	}

	return &Dataset{doc: doc}, nil
}

// Document returns the dataset's underlying ordered document.
func (d *Dataset) Document() *document.Document {
	return d.doc
}

// JSON serializes the dataset to JSON-stat text.
func (d *Dataset) JSON() (string, error) {
	return d.doc.JSON()
}

// Table decodes the dataset into a flat table. Decoding options (naming mode,
// value key) pass through to cube.Decode.
//
// Legacy 1.3 bundles, where the dataset nests under a wrapper key such as
// "dataset1", are unwrapped to their first dataset.
func (d *Dataset) Table(opts ...cube.DecodeOption) (*table.Table, error) {
	doc, err := d.datasetDocument()
	if err != nil {
		return nil, err
	}

	return cube.Decode(doc, opts...)
}

// Write serializes the dataset to the requested target: JSON-stat text for
// format.OutputJSON, a *table.Table for format.OutputTable.
func (d *Dataset) Write(target format.OutputFormat) (any, error) {
	switch target {
	case format.OutputJSON:
		return d.JSON()
	case format.OutputTable:
		return d.Table()
	default:
		return nil, fmt.Errorf("%w: %s, dataset targets are jsonstat or table", ErrUnsupportedFormat, target)
	}
}

// DimensionIndex converts a dimension id and a category id into the numeric
// index of that category within the dimension.
func (d *Dataset) DimensionIndex(dimID, category string) (int, error) {
	doc, err := d.datasetDocument()
	if err != nil {
		return 0, err
	}

	return cube.DimensionIndex(doc, dimID, category)
}

// DimensionIndices converts a category query (dimension id to category id,
// one entry per dimension) into a per-dimension index list in declared
// dimension order.
func (d *Dataset) DimensionIndices(query map[string]string) ([]int, error) {
	doc, err := d.datasetDocument()
	if err != nil {
		return nil, err
	}

	return cube.DimensionIndices(doc, query)
}

// ValueIndex converts a per-dimension index list into the flat value index.
func (d *Dataset) ValueIndex(indices []int) (int, error) {
	doc, err := d.datasetDocument()
	if err != nil {
		return 0, err
	}
	sizes, err := cube.Sizes(doc)
	if err != nil {
		return 0, err
	}

	return cube.FlatIndex(indices, sizes)
}

// ValueAt returns the cell value at a flat value index.
func (d *Dataset) ValueAt(index int) (any, error) {
	doc, err := d.datasetDocument()
	if err != nil {
		return nil, err
	}
	values, err := cube.ResolveValues(doc, "value")
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(values) {
		return nil, fmt.Errorf("%w: flat index %d exceeds %d values", cube.ErrIndexOutOfRange, index, len(values))
	}

	return values[index], nil
}

// Value resolves a category query to a single cell value: query to dimension
// indices, indices to flat index, flat index into the value array.
func (d *Dataset) Value(query map[string]string) (any, error) {
	doc, err := d.datasetDocument()
	if err != nil {
		return nil, err
	}

	return cube.Lookup(doc, query)
}

// datasetDocument unwraps legacy 1.3 bundles. A document that already carries
// a dimension object (or declares itself a dataset) is used directly;
// otherwise the first nested object carrying one is the dataset.
func (d *Dataset) datasetDocument() (*document.Document, error) {
	if d.doc.Has("dimension") {
		return d.doc, nil
	}
	if class, ok := d.doc.GetString("class"); ok && class == format.ClassDataset.String() {
		return d.doc, nil
	}

	// A 2.0 document is the dataset itself; only pre-2.0 responses wrap the
	// dataset inside named bundle entries.
	if !cube.IsVersion2(d.doc) {
		for _, key := range d.doc.Keys() {
			if inner, ok := d.doc.GetDocument(key); ok && inner.Has("dimension") {
				return inner, nil
			}
		}
	}

	return nil, fmt.Errorf("document contains no dataset")
}
