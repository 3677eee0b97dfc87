package document

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesKeyOrder(t *testing.T) {
	data := []byte(`{"zulu": 1, "alpha": 2, "mike": {"b": true, "a": null}}`)

	doc, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, []string{"zulu", "alpha", "mike"}, doc.Keys())

	sub, ok := doc.GetDocument("mike")
	require.True(t, ok)
	require.Equal(t, []string{"b", "a"}, sub.Keys())
}

func TestParse_ValueTypes(t *testing.T) {
	data := []byte(`{"s": "txt", "i": 42, "f": 1.10, "b": false, "n": null, "a": [1, "two", null]}`)

	doc, err := Parse(data)
	require.NoError(t, err)

	s, ok := doc.GetString("s")
	require.True(t, ok)
	require.Equal(t, "txt", s)

	i, ok := doc.GetNumber("i")
	require.True(t, ok)
	require.Equal(t, json.Number("42"), i)

	// Lexical form of floats must survive, including trailing zeros.
	f, ok := doc.GetNumber("f")
	require.True(t, ok)
	require.Equal(t, json.Number("1.10"), f)

	b, ok := doc.Get("b")
	require.True(t, ok)
	require.Equal(t, false, b)

	n, ok := doc.Get("n")
	require.True(t, ok)
	require.Nil(t, n)

	arr, ok := doc.GetArray("a")
	require.True(t, ok)
	require.Equal(t, []any{json.Number("1"), "two", nil}, arr)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte(`[1, 2, 3]`))
	require.Error(t, err)

	_, err = Parse([]byte(`{"unterminated": `))
	require.Error(t, err)

	_, err = ParseReader(strings.NewReader(`"scalar"`))
	require.Error(t, err)
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	doc, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, doc.Keys())

	v, ok := doc.GetNumber("a")
	require.True(t, ok)
	require.Equal(t, json.Number("3"), v)
}

func TestSet_AppendAndReplace(t *testing.T) {
	doc := New()
	doc.Set("first", "1")
	doc.Set("second", "2")
	doc.Set("first", "one")

	require.Equal(t, []string{"first", "second"}, doc.Keys())
	require.Equal(t, 2, doc.Len())

	v, ok := doc.GetString("first")
	require.True(t, ok)
	require.Equal(t, "one", v)
	require.True(t, doc.Has("second"))
	require.False(t, doc.Has("third"))
}

func TestMarshalJSON_RoundTrip(t *testing.T) {
	src := `{"version":"2.0","class":"dataset","id":["region","year"],"size":[2,3],"value":[1,2,null,4,5.5,6]}`

	doc, err := Parse([]byte(src))
	require.NoError(t, err)

	out, err := doc.JSON()
	require.NoError(t, err)
	require.Equal(t, src, out)
}

func TestMarshalJSON_Empty(t *testing.T) {
	out, err := New().JSON()
	require.NoError(t, err)
	require.Equal(t, "{}", out)
}
