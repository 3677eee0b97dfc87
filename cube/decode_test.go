package cube

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/jsonstat/format"
)

const decodeCube = `{
	"version": "2.0",
	"class": "dataset",
	"id": ["region", "year"],
	"size": [2, 3],
	"dimension": {
		"region": {
			"label": "Region",
			"category": {
				"index": ["n", "s"],
				"label": {"n": "North", "s": "South"}
			}
		},
		"year": {
			"label": "Year",
			"category": {"index": ["2022", "2023", "2024"]}
		}
	},
	"value": [1, 2, 3, 4, 5, null]
}`

func TestDecode_Labels(t *testing.T) {
	doc := mustParse(t, decodeCube)

	tbl, err := Decode(doc)
	require.NoError(t, err)
	require.Equal(t, []string{"Region", "Year", "value"}, tbl.Columns)
	require.Equal(t, 6, tbl.NumRows())

	require.Equal(t, []any{"North", "2022", json.Number("1")}, tbl.Cells[0])
	require.Equal(t, []any{"North", "2024", json.Number("3")}, tbl.Cells[2])
	require.Equal(t, []any{"South", "2022", json.Number("4")}, tbl.Cells[3])
	require.Equal(t, []any{"South", "2024", nil}, tbl.Cells[5])
}

func TestDecode_IDs(t *testing.T) {
	doc := mustParse(t, decodeCube)

	tbl, err := Decode(doc, WithNaming(format.NamingID))
	require.NoError(t, err)
	require.Equal(t, []string{"region", "year", "value"}, tbl.Columns)
	require.Equal(t, []any{"n", "2022", json.Number("1")}, tbl.Cells[0])
}

func TestDecode_Version13Layout(t *testing.T) {
	// Pre-2.0: id and size nested under dimension.
	doc := mustParse(t, `{
		"dimension": {
			"id": ["sex"],
			"size": [2],
			"sex": {"category": {"index": ["M", "F"]}}
		},
		"value": [10, 20]
	}`)

	tbl, err := Decode(doc, WithNaming(format.NamingID))
	require.NoError(t, err)
	require.Equal(t, []string{"sex", "value"}, tbl.Columns)
	require.Equal(t, 2, tbl.NumRows())
}

func TestDecode_SparseValues(t *testing.T) {
	doc := mustParse(t, `{
		"version": "2.0",
		"id": ["a"],
		"size": [2],
		"dimension": {"a": {"category": {"index": ["x", "y"]}}},
		"value": {"1": 9}
	}`)

	tbl, err := Decode(doc, WithNaming(format.NamingID))
	require.NoError(t, err)
	require.Equal(t, []any{"x", nil}, tbl.Cells[0])
	require.Equal(t, []any{"y", json.Number("9")}, tbl.Cells[1])
}

func TestDecode_ShapeMismatch(t *testing.T) {
	doc := mustParse(t, `{
		"version": "2.0",
		"id": ["a"],
		"size": [2],
		"dimension": {"a": {"category": {"index": ["x", "y"]}}},
		"value": [1, 2, 3]
	}`)

	_, err := Decode(doc)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDecode_InvalidNaming(t *testing.T) {
	doc := mustParse(t, decodeCube)

	_, err := Decode(doc, WithNaming(format.Naming(99)))
	require.ErrorIs(t, err, ErrInvalidNaming)
}

func TestDecode_CustomValueKey(t *testing.T) {
	doc := mustParse(t, `{
		"version": "2.0",
		"id": ["a"],
		"size": [1],
		"dimension": {"a": {"category": {"index": ["x"]}}},
		"measure": [5]
	}`)

	tbl, err := Decode(doc, WithNaming(format.NamingID), WithValueKey("measure"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "measure"}, tbl.Columns)
	require.Equal(t, []any{"x", json.Number("5")}, tbl.Cells[0])
}
