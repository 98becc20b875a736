// SPDX-License-Identifier: MIT

package layout

import "github.com/katalvlaran/lvarray/internal/check"

// Toeplitz is constant along every diagonal: (i,j) maps to slot
// j - i + rows - 1, so a rows×cols matrix needs rows+cols-1 values.
// The canonical stored cells are the first row and the first column;
// every other coordinate aliases one of them.
type Toeplitz struct {
	rows, cols int
}

var _ Structure = (*Toeplitz)(nil)

// NewToeplitz returns a rows×cols Toeplitz structure.
//
// Errors:
//   - ErrBadShape for negative extents.
func NewToeplitz(rows, cols int) (*Toeplitz, error) {
	if err := validateDims("NewToeplitz", rows, cols); err != nil {
		return nil, err
	}

	return &Toeplitz{rows: rows, cols: cols}, nil
}

func (t *Toeplitz) Kind() Kind { return KindToeplitz }
func (t *Toeplitz) Rows() int  { return t.rows }
func (t *Toeplitz) Cols() int  { return t.cols }

func (t *Toeplitz) NumElements() int {
	if t.rows == 0 || t.cols == 0 {
		return 0
	}

	return t.rows + t.cols - 1
}

func (t *Toeplitz) InRange(i, j int) bool { return inRange(i, j, t.rows, t.cols) }
func (t *Toeplitz) Stored(i, j int) bool  { return t.InRange(i, j) }

func (t *Toeplitz) CoordToOffset(i, j int) (int, error) {
	if !t.InRange(i, j) {
		return 0, coordErr(KindToeplitz, i, j)
	}

	return j - i + t.rows - 1, nil
}

func (t *Toeplitz) Offset(i, j int) int {
	if check.Enabled {
		assertStored(t, i, j)
	}

	return j - i + t.rows - 1
}

func (t *Toeplitz) FirstInRow(int) int { return 0 }

// LastInRow is cols-1 for row 0 and 0 below it (first column only).
func (t *Toeplitz) LastInRow(i int) int {
	if i == 0 || t.cols == 0 {
		return t.cols - 1
	}

	return 0
}

func (t *Toeplitz) FirstInCol(int) int { return 0 }

// LastInCol is rows-1 for column 0 and 0 right of it (first row only).
func (t *Toeplitz) LastInCol(j int) int {
	if j == 0 || t.rows == 0 {
		return t.rows - 1
	}

	return 0
}

func (t *Toeplitz) Iterator() Iterator { return newRowIterator(t) }
