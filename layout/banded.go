// SPDX-License-Identifier: MIT

// Package layout - Banded storage.
//
// Purpose:
//   - Store kl sub-diagonals, the main diagonal and ku super-diagonals of a
//     rows×cols matrix, packed row by row with no padding.
//
// Implementation:
//   - Stage 1: row i stores columns [max(0,i-kl), min(cols-1,i+ku)].
//   - Stage 2: rowStart[i] is the prefix sum of stored counts (O(rows) once).
//   - Stage 3: offset(i,j) = rowStart[i] + (j - FirstInRow(i)).

package layout

import (
	"fmt"

	"github.com/katalvlaran/lvarray/internal/check"
)

// Banded is a packed band structure.
type Banded struct {
	rows, cols int
	kl, ku     int   // lower / upper bandwidths (>= 0)
	rowStart   []int // len rows+1; rowStart[rows] == NumElements()
}

var _ Structure = (*Banded)(nil)

// NewBanded returns a rows×cols band structure with kl sub-diagonals and ku
// super-diagonals. kl == ku == 0 stores the diagonal only.
//
// Errors:
//   - ErrBadShape for negative extents or bandwidths.
//
// Complexity: O(rows) time and memory.
func NewBanded(rows, cols, kl, ku int) (*Banded, error) {
	if err := validateDims("NewBanded", rows, cols); err != nil {
		return nil, err
	}
	if kl < 0 || ku < 0 {
		return nil, fmt.Errorf("layout.NewBanded: kl=%d ku=%d: %w", kl, ku, ErrBadShape)
	}
	b := &Banded{rows: rows, cols: cols, kl: kl, ku: ku, rowStart: make([]int, rows+1)}
	for i := 0; i < rows; i++ {
		n := b.LastInRow(i) - b.FirstInRow(i) + 1
		if n < 0 {
			n = 0 // band has left the matrix on the right
		}
		b.rowStart[i+1] = b.rowStart[i] + n
	}

	return b, nil
}

// Bandwidths returns (kl, ku).
func (b *Banded) Bandwidths() (kl, ku int) { return b.kl, b.ku }

func (b *Banded) Kind() Kind            { return KindBanded }
func (b *Banded) Rows() int             { return b.rows }
func (b *Banded) Cols() int             { return b.cols }
func (b *Banded) NumElements() int      { return b.rowStart[b.rows] }
func (b *Banded) InRange(i, j int) bool { return inRange(i, j, b.rows, b.cols) }

// Stored reports -kl <= j-i <= ku inside the logical range.
func (b *Banded) Stored(i, j int) bool {
	return b.InRange(i, j) && j-i <= b.ku && i-j <= b.kl
}

// CoordToOffset returns the packed slot of an in-band coordinate.
func (b *Banded) CoordToOffset(i, j int) (int, error) {
	if !b.Stored(i, j) {
		return 0, coordErr(KindBanded, i, j)
	}

	return b.rowStart[i] + j - b.FirstInRow(i), nil
}

func (b *Banded) Offset(i, j int) int {
	if check.Enabled {
		assertStored(b, i, j)
	}

	return b.rowStart[i] + j - b.FirstInRow(i)
}

func (b *Banded) FirstInRow(i int) int { return max(0, i-b.kl) }
func (b *Banded) LastInRow(i int) int  { return min(b.cols-1, i+b.ku) }
func (b *Banded) FirstInCol(j int) int { return max(0, j-b.ku) }
func (b *Banded) LastInCol(j int) int  { return min(b.rows-1, j+b.kl) }

func (b *Banded) Iterator() Iterator { return newRowIterator(b) }
