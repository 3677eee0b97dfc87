package cube

import (
	"fmt"

	"github.com/arloliu/jsonstat/document"
	"github.com/arloliu/jsonstat/format"
	"github.com/arloliu/jsonstat/internal/options"
	"github.com/arloliu/jsonstat/table"
)

// decodeConfig holds the decoder settings.
type decodeConfig struct {
	naming   format.Naming
	valueKey string
}

// DecodeOption configures Decode.
type DecodeOption = options.Option[*decodeConfig]

// WithNaming selects whether decoded columns and cells carry display labels
// (format.NamingLabel, the default) or identifiers (format.NamingID).
func WithNaming(naming format.Naming) DecodeOption {
	return options.New(func(c *decodeConfig) error {
		if !naming.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidNaming, naming)
		}
		c.naming = naming

		return nil
	})
}

// WithValueKey sets the document key holding the value array, and with it the
// name of the decoded table's value column. Defaults to "value".
func WithValueKey(key string) DecodeOption {
	return options.New(func(c *decodeConfig) error {
		if key == "" {
			return fmt.Errorf("value key cannot be empty")
		}
		c.valueKey = key

		return nil
	})
}

// Decode converts a JSON-stat dataset document into a flat table.
//
// One column per dimension in declared order, plus a trailing value column.
// With label naming, column names are dimension display names and cells carry
// category labels; with id naming both use identifiers. Row i of the table
// corresponds to value[i] of the (dense-resolved) value array.
//
// Fails with ErrShapeMismatch when the product of dimension cardinalities
// does not equal the value array length.
func Decode(doc *document.Document, opts ...DecodeOption) (*table.Table, error) {
	cfg := &decodeConfig{naming: format.NamingLabel, valueKey: "value"}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	ids, err := DimensionIDs(doc)
	if err != nil {
		return nil, err
	}

	dims := make([][]Category, len(ids))
	columns := make([]string, 0, len(ids)+1)
	for i, id := range ids {
		cats, err := ResolveDimension(doc, id)
		if err != nil {
			return nil, err
		}
		dims[i] = cats

		if cfg.naming == format.NamingLabel {
			columns = append(columns, DimensionName(doc, id))
		} else {
			columns = append(columns, id)
		}
	}
	columns = append(columns, cfg.valueKey)

	values, err := ResolveValues(doc, cfg.valueKey)
	if err != nil {
		return nil, err
	}
	if count := RowCount(dims); count != len(values) {
		return nil, fmt.Errorf("%w: %d category combinations, %d values", ErrShapeMismatch, count, len(values))
	}

	tbl := table.New(columns...)
	tbl.Cells = make([][]any, 0, len(values))

	i := 0
	for row := range Rows(dims, cfg.naming) {
		cells := make([]any, 0, len(row)+1)
		for _, cell := range row {
			cells = append(cells, cell)
		}
		cells = append(cells, values[i])
		tbl.Cells = append(tbl.Cells, cells)
		i++
	}

	return tbl, nil
}
