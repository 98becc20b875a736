// SPDX-License-Identifier: MIT

package stencil

import (
	"fmt"

	"github.com/katalvlaran/lvarray/array"
)

// Checksum returns Σ a(i,j,k)·((i+1) + N·(j+1) + N²·(k+1)) accumulated in
// float64, where (i,j,k) are zero-based and N is the first extent.
//
// Errors:
//   - array.ErrRankMismatch when a is not rank 3.
//   - array.ErrDanglingView after the storage was released.
func Checksum(a *array.Array[float32]) (float64, error) {
	if a.Rank() != 3 {
		return 0, fmt.Errorf("stencil.Checksum: rank %d: %w", a.Rank(), array.ErrRankMismatch)
	}
	sh := a.Shape()
	n := float64(sh.Extent(0))
	var sum float64
	err := a.Do(func(pos []int, v float32) bool {
		i := float64(pos[0] - sh.Lower(0) + 1)
		j := float64(pos[1] - sh.Lower(1) + 1)
		k := float64(pos[2] - sh.Lower(2) + 1)
		sum += float64(v) * (i + n*j + n*n*k)
		return true
	})
	if err != nil {
		return 0, fmt.Errorf("stencil.Checksum: %w", err)
	}

	return sum, nil
}
