// Package table provides the flat row-oriented representation of a decoded
// statistical cube: one column per dimension plus a trailing value column,
// one row per dimension-category combination.
package table

import (
	"fmt"
)

// Table is a flat, row-major table.
//
// Cells hold string, json.Number or nil, matching the value types produced by
// the document package. The table is a plain value object; the codec never
// mutates a table after handing it to the caller.
type Table struct {
	// Columns holds the column names in order. For a decoded cube this is the
	// dimension names followed by the value column.
	Columns []string

	// Cells holds the rows in order; every row has len(Columns) cells.
	Cells [][]any
}

// New creates an empty table with the given column names.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int {
	return len(t.Cells)
}

// AppendRow appends one row to the table.
//
// Returns an error if the row width does not match the number of columns.
func (t *Table) AppendRow(cells ...any) error {
	if len(cells) != len(t.Columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.Columns))
	}
	t.Cells = append(t.Cells, cells)

	return nil
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}

	return -1
}

// Column returns all cells of the named column in row order.
//
// Returns an error if the column does not exist.
func (t *Table) Column(name string) ([]any, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("table has no column %q", name)
	}

	cells := make([]any, len(t.Cells))
	for i, row := range t.Cells {
		cells[i] = row[idx]
	}

	return cells, nil
}
