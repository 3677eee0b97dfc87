// Package cube implements the JSON-stat cube codec: the bidirectional mapping
// between a multi-dimensional value array addressed by a mixed-radix index
// over ordered categorical dimensions, and a flat table where each row names
// one category per dimension and carries one value.
//
// # Index Arithmetic
//
// JSON-stat stores cube cells in a single dense array in row-major order:
// dimension 0 is the outermost (slowest-varying) axis and the last dimension
// the innermost (fastest-varying) one. The flat index of a cell is
//
//	index = sum(indices[d] * product(sizes[d+1:]))
//
// Every component of this package agrees on that ordering: the row generator
// enumerates combinations in the same order the value array is laid out, and
// the encoder writes each table row at its computed flat index. Getting the
// two out of sync does not fail loudly, it silently scrambles data, which is
// why the ordering is centralized in FlatIndex and Rows.
//
// # Components
//
//   - ResolveDimension: ordered category list per dimension, with the two
//     defined fallbacks (missing labels, missing index).
//   - ResolveValues: dense value array, reconstructing from the sparse
//     index-keyed encoding when needed.
//   - Rows: lazy odometer enumeration of all category combinations.
//   - Decode / Encode: cube document to flat table and back, supporting both
//     the 1.3 and 2.0 envelopes.
//   - FlatIndex / DimensionIndices / Lookup: point queries.
//
// All operations are pure functions over immutable inputs.
package cube
