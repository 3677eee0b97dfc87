package jsonstat

import (
	"context"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/arloliu/jsonstat/cube"
	"github.com/arloliu/jsonstat/document"
	"github.com/arloliu/jsonstat/format"
	"github.com/arloliu/jsonstat/table"
)

// Dimension is a standalone JSON-stat dimension document: one named axis with
// an ordered set of categories.
type Dimension struct {
	doc *document.Document
}

// ReadDimension constructs a Dimension from any supported source.
//
// A *table.Table source must carry an "id" column plus one label column (any
// column named neither "id" nor "index"); it is encoded into a version 2.0
// dimension document whose category index lists the ids in row order.
func ReadDimension(ctx context.Context, source any, opts ...ReadOption) (*Dimension, error) {
	cfg, err := newReadConfig(opts)
	if err != nil {
		return nil, err
	}

	if tbl, ok := source.(*table.Table); ok {
		doc, err := dimensionFromTable(tbl)
		if err != nil {
			return nil, err
		}

		return &Dimension{doc: doc}, nil
	}

	doc, err := readDocument(ctx, cfg, source)
	if err != nil {
		return nil, err
	}

	return &Dimension{doc: doc}, nil
}

// Document returns the dimension's underlying ordered document.
func (d *Dimension) Document() *document.Document {
	return d.doc
}

// JSON serializes the dimension to JSON-stat text.
func (d *Dimension) JSON() (string, error) {
	return d.doc.JSON()
}

// Table flattens the dimension into a three-column table: the category ids,
// their labels under the dimension's display name, and their positions.
func (d *Dimension) Table() (*table.Table, error) {
	name, _ := d.doc.GetString("label")
	if name == "" {
		name = "label"
	}

	cats, err := cube.ResolveDimension(d.doc, name)
	if err != nil {
		return nil, err
	}

	tbl := table.New("id", name, "index")
	for _, cat := range cats {
		if err := tbl.AppendRow(cat.ID, cat.Label, json.Number(strconv.Itoa(cat.Index))); err != nil {
			return nil, err
		}
	}

	return tbl, nil
}

// Write serializes the dimension to the requested target: JSON-stat text for
// format.OutputJSON, a *table.Table for format.OutputTable.
func (d *Dimension) Write(target format.OutputFormat) (any, error) {
	switch target {
	case format.OutputJSON:
		return d.JSON()
	case format.OutputTable:
		return d.Table()
	default:
		return nil, fmt.Errorf("%w: %s, dimension targets are jsonstat or table", ErrUnsupportedFormat, target)
	}
}

// dimensionFromTable builds a version 2.0 dimension document from an
// id + label table.
func dimensionFromTable(tbl *table.Table) (*document.Document, error) {
	idIdx := tbl.ColumnIndex("id")
	if idIdx < 0 {
		return nil, fmt.Errorf("dimension table must have an %q column", "id")
	}

	labelColumn := ""
	labelIdx := -1
	for i, col := range tbl.Columns {
		if col != "id" && col != "index" {
			labelColumn = col
			labelIdx = i
			break
		}
	}
	if labelIdx < 0 {
		return nil, fmt.Errorf("dimension table must have a label column besides id and index")
	}

	index := make([]any, 0, tbl.NumRows())
	labels := document.New()
	for _, row := range tbl.Cells {
		id := cube.ToCanonical(row[idIdx])
		index = append(index, id)
		labels.Set(id, cube.ToCanonical(row[labelIdx]))
	}

	category := document.New()
	category.Set("index", index)
	category.Set("label", labels)

	doc := document.New()
	doc.Set("version", format.V2_0.String())
	doc.Set("class", format.ClassDimension.String())
	doc.Set("label", labelColumn)
	doc.Set("category", category)

	return doc, nil
}
