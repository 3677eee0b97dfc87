package cube

import "errors"

// Error kinds surfaced by the codec. All errors returned by this package wrap
// one of these sentinels together with the offending identifier (dimension id,
// column name or index value), so callers can match them with errors.Is.
var (
	// ErrMalformedDimension indicates a dimension id that has no descriptor in
	// the document, or a descriptor with neither category index nor labels.
	ErrMalformedDimension = errors.New("malformed dimension")

	// ErrMissingSize indicates that neither a top-level size list nor a
	// dimension.size list is present while one is required.
	ErrMissingSize = errors.New("missing size list")

	// ErrShapeMismatch indicates that the number of category combinations does
	// not equal the length of the value array.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrDuplicateColumn indicates a repeated column name in a table being
	// encoded; category columns must form a valid composite key.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrNoValueColumn indicates that the requested value column is absent
	// from a table being encoded.
	ErrNoValueColumn = errors.New("no value column")

	// ErrUnknownCategory indicates a point query naming a category that is not
	// present in the queried dimension.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrIndexOutOfRange indicates a flat index at or beyond the end of the
	// value array, or a sparse value key outside the cube's extent.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidNaming indicates a naming mode other than label or id.
	ErrInvalidNaming = errors.New("invalid naming mode")
)
