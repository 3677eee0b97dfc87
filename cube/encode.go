package cube

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/arloliu/jsonstat/document"
	"github.com/arloliu/jsonstat/format"
	"github.com/arloliu/jsonstat/internal/options"
	"github.com/arloliu/jsonstat/table"
)

// encodeConfig holds the encoder settings.
type encodeConfig struct {
	valueColumn string
	version     format.Version
}

// EncodeOption configures Encode.
type EncodeOption = options.Option[*encodeConfig]

// WithValueColumn names the table column holding cell values; every other
// column is treated as a dimension. Defaults to "value".
func WithValueColumn(name string) EncodeOption {
	return options.New(func(c *encodeConfig) error {
		if name == "" {
			return fmt.Errorf("value column cannot be empty")
		}
		c.valueColumn = name

		return nil
	})
}

// WithVersion selects the wire envelope: format.V2_0 (the default) or the
// legacy format.V1_3 bundle.
func WithVersion(version format.Version) EncodeOption {
	return options.New(func(c *encodeConfig) error {
		if version != format.V1_3 && version != format.V2_0 {
			return fmt.Errorf("unsupported JSON-stat version %d", version)
		}
		c.version = version

		return nil
	})
}

// Encode converts a flat table into a JSON-stat dataset document.
//
// Every column except the value column becomes a dimension. A column's unique
// cell values, in first-seen row order, define its categories: the canonical
// string form is both id and label, and the first-seen position is the
// 0-based category index.
//
// The value array is a dense slice of length product(size). Each row's value
// is written at the flat index computed from its category positions via
// FlatIndex, so the encoding is correct regardless of input row order; rows
// are never assumed to already be in row-major order. A repeated composite
// key overwrites the earlier value. Cells never written stay JSON null.
//
// Fails with ErrNoValueColumn when the value column is absent and with
// ErrDuplicateColumn when any column name repeats (the category columns must
// form a valid composite key).
func Encode(tbl *table.Table, opts ...EncodeOption) (*document.Document, error) {
	cfg := &encodeConfig{valueColumn: "value", version: format.V2_0}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	valueIdx := tbl.ColumnIndex(cfg.valueColumn)
	if valueIdx < 0 {
		return nil, fmt.Errorf("%w: table has no column %q", ErrNoValueColumn, cfg.valueColumn)
	}

	seen := make(map[string]struct{}, len(tbl.Columns))
	for _, name := range tbl.Columns {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		seen[name] = struct{}{}
	}

	var dimColumns []int
	for i := range tbl.Columns {
		if i != valueIdx {
			dimColumns = append(dimColumns, i)
		}
	}

	// Unique categories per dimension column, in first-seen row order.
	catOrder := make([][]string, len(dimColumns))
	catIndex := make([]map[string]int, len(dimColumns))
	for d := range dimColumns {
		catIndex[d] = make(map[string]int)
	}
	for _, row := range tbl.Cells {
		for d, col := range dimColumns {
			id := ToCanonical(row[col])
			if _, ok := catIndex[d][id]; !ok {
				catIndex[d][id] = len(catOrder[d])
				catOrder[d] = append(catOrder[d], id)
			}
		}
	}

	sizes := make([]int, len(dimColumns))
	for d := range dimColumns {
		sizes[d] = len(catOrder[d])
	}

	total := 1
	for _, size := range sizes {
		total *= size
	}
	values := make([]any, total)

	indices := make([]int, len(dimColumns))
	for _, row := range tbl.Cells {
		for d, col := range dimColumns {
			indices[d] = catIndex[d][ToCanonical(row[col])]
		}
		flat, err := FlatIndex(indices, sizes)
		if err != nil {
			return nil, err
		}
		values[flat] = row[valueIdx]
	}

	ids := make([]any, len(dimColumns))
	sizeList := make([]any, len(dimColumns))
	dimension := document.New()
	for d, col := range dimColumns {
		name := tbl.Columns[col]
		ids[d] = name
		sizeList[d] = json.Number(strconv.Itoa(sizes[d]))

		index := document.New()
		label := document.New()
		for pos, id := range catOrder[d] {
			index.Set(id, json.Number(strconv.Itoa(pos)))
			label.Set(id, id)
		}
		category := document.New()
		category.Set("index", index)
		category.Set("label", label)

		desc := document.New()
		desc.Set("label", name)
		desc.Set("category", category)
		dimension.Set(name, desc)
	}

	if cfg.version == format.V1_3 {
		// Legacy bundle: id and size nest inside the dimension object and the
		// dataset wraps under a "dataset1" key.
		dimension.Set("id", ids)
		dimension.Set("size", sizeList)

		inner := document.New()
		inner.Set("dimension", dimension)
		inner.Set(cfg.valueColumn, values)

		doc := document.New()
		doc.Set("dataset1", inner)

		return doc, nil
	}

	doc := document.New()
	doc.Set("version", format.V2_0.String())
	doc.Set("class", format.ClassDataset.String())
	doc.Set("id", ids)
	doc.Set("size", sizeList)
	doc.Set("dimension", dimension)
	doc.Set(cfg.valueColumn, values)

	return doc, nil
}
