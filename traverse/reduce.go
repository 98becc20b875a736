// SPDX-License-Identifier: MIT

package traverse

import (
	"fmt"

	"github.com/katalvlaran/lvarray/expr"
	"github.com/katalvlaran/lvarray/shape"
	"golang.org/x/exp/constraints"
)

// Sum evaluates e over every position of sh in natural order and returns the
// total. Only the extents of sh matter. Natural order keeps the floating-point
// summation deterministic.
//
// Errors:
//   - expr.ErrShapeMismatch (aggregated) when e does not conform to sh.
func Sum[T constraints.Float](e expr.Expr[T], sh shape.Shape) (T, error) {
	if err := expr.Conform(sh, e); err != nil {
		return 0, fmt.Errorf("traverse.Sum%v: %w", sh, err)
	}
	z, err := shape.New(sh.Extents()...)
	if err != nil {
		return 0, fmt.Errorf("traverse.Sum: %w", err)
	}
	var acc T
	pos := make([]int, z.Rank())
	for ok := z.First(pos); ok; ok = z.Next(pos) {
		acc += e.At(pos)
	}

	return acc, nil
}
