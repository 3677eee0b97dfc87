package cube

import (
	"iter"

	"github.com/arloliu/jsonstat/format"
)

// Rows lazily enumerates every combination of one category per dimension, in
// row-major order: dimension 0 is the outermost loop and the last dimension
// varies fastest. This is exactly the order the flat value array is laid out
// in, so row i of the sequence pairs with value[i].
//
// The enumeration is an explicit odometer rather than per-dimension
// recursion, so documents with dozens of dimensions pose no depth problem.
// The returned sequence is finite (RowCount(dims) rows), restartable, and a
// pure function of its inputs; every yielded row is a fresh slice. Cells
// carry the category label or id according to naming.
//
// An empty dimension list, or any dimension with zero categories, yields an
// empty sequence.
func Rows(dims [][]Category, naming format.Naming) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		n := len(dims)
		if n == 0 {
			return
		}
		for _, dim := range dims {
			if len(dim) == 0 {
				return
			}
		}

		counters := make([]int, n)
		for {
			row := make([]string, n)
			for d, dim := range dims {
				cat := dim[counters[d]]
				if naming == format.NamingID {
					row[d] = cat.ID
				} else {
					row[d] = cat.Label
				}
			}
			if !yield(row) {
				return
			}

			// Advance the odometer: bump the innermost counter and carry
			// leftwards; overflow of dimension 0 ends the sequence.
			d := n - 1
			for ; d >= 0; d-- {
				counters[d]++
				if counters[d] < len(dims[d]) {
					break
				}
				counters[d] = 0
			}
			if d < 0 {
				return
			}
		}
	}
}

// RowCount returns the number of rows Rows yields for dims: the product of
// the dimension cardinalities, or zero for an empty dimension list.
func RowCount(dims [][]Category) int {
	if len(dims) == 0 {
		return 0
	}

	count := 1
	for _, dim := range dims {
		count *= len(dim)
	}

	return count
}
