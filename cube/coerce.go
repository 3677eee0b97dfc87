package cube

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// ToScalar converts s to an int64 when it parses as an integer, otherwise it
// returns s unchanged. Category ids may arrive as either JSON numbers or
// strings; this restores the numeric form where one exists. It is the
// caller-facing inverse of ToCanonical, for consumers that want typed
// category values back from decoded table cells.
func ToScalar(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}

	return s
}

// ToCanonical returns the canonical string form of a scalar cell value, used
// to build consistent map keys for category ids regardless of whether the
// source carried them as JSON numbers or strings.
//
// Numeric values are rendered in their decimal form; json.Number keeps its
// lexical form. Strings pass through unchanged, nil becomes the empty string.
func ToCanonical(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
