package cube

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestResolveValues_Dense(t *testing.T) {
	doc := mustParse(t, `{"value": [1, 2.5, null, "conf"]}`)

	values, err := ResolveValues(doc, "value")
	require.NoError(t, err)
	require.Equal(t, []any{json.Number("1"), json.Number("2.5"), nil, "conf"}, values)
}

func TestResolveValues_SparseReconstruction(t *testing.T) {
	doc := mustParse(t, `{"size": [2, 2], "value": {"0": 10, "3": 40}}`)

	values, err := ResolveValues(doc, "value")
	require.NoError(t, err)
	require.Equal(t, []any{json.Number("10"), nil, nil, json.Number("40")}, values)
}

func TestResolveValues_SparseNestedSize(t *testing.T) {
	doc := mustParse(t, `{"dimension": {"size": [3]}, "value": {"1": 7}}`)

	values, err := ResolveValues(doc, "value")
	require.NoError(t, err)
	require.Equal(t, []any{nil, json.Number("7"), nil}, values)
}

func TestResolveValues_SparseMissingSize(t *testing.T) {
	doc := mustParse(t, `{"value": {"0": 1}}`)

	_, err := ResolveValues(doc, "value")
	require.ErrorIs(t, err, ErrMissingSize)
}

func TestResolveValues_SparseKeyOutOfRange(t *testing.T) {
	doc := mustParse(t, `{"size": [2], "value": {"5": 1}}`)

	_, err := ResolveValues(doc, "value")
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestResolveValues_SparseKeyNotInteger(t *testing.T) {
	doc := mustParse(t, `{"size": [2], "value": {"first": 1}}`)

	_, err := ResolveValues(doc, "value")
	require.Error(t, err)
}

func TestResolveValues_MissingKey(t *testing.T) {
	doc := mustParse(t, `{"size": [2]}`)

	_, err := ResolveValues(doc, "value")
	require.Error(t, err)
}

func TestResolveValues_CustomKey(t *testing.T) {
	doc := mustParse(t, `{"measure": [1, 2]}`)

	values, err := ResolveValues(doc, "measure")
	require.NoError(t, err)
	require.Len(t, values, 2)
}
