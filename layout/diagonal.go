// SPDX-License-Identifier: MIT

package layout

import "github.com/katalvlaran/lvarray/internal/check"

// Diagonal stores only the main diagonal of an n×n matrix; (i,i) lives at
// offset i and every off-diagonal coordinate reads as zero.
type Diagonal struct {
	size int
}

var _ Structure = (*Diagonal)(nil)

// NewDiagonal returns an n×n diagonal structure.
//
// Errors:
//   - ErrBadShape for negative extents; ErrShapeMismatch when rows != cols.
func NewDiagonal(rows, cols int) (*Diagonal, error) {
	if err := validateSquare("NewDiagonal", rows, cols); err != nil {
		return nil, err
	}

	return &Diagonal{size: rows}, nil
}

func (d *Diagonal) Kind() Kind            { return KindDiagonal }
func (d *Diagonal) Rows() int             { return d.size }
func (d *Diagonal) Cols() int             { return d.size }
func (d *Diagonal) NumElements() int      { return d.size }
func (d *Diagonal) InRange(i, j int) bool { return inRange(i, j, d.size, d.size) }
func (d *Diagonal) Stored(i, j int) bool  { return i == j && d.InRange(i, j) }

// CoordToOffset returns i for (i,i); any other coordinate is invalid.
func (d *Diagonal) CoordToOffset(i, j int) (int, error) {
	if !d.Stored(i, j) {
		return 0, coordErr(KindDiagonal, i, j)
	}

	return i, nil
}

func (d *Diagonal) Offset(i, j int) int {
	if check.Enabled {
		assertStored(d, i, j)
	}

	return i
}

func (d *Diagonal) FirstInRow(i int) int { return i }
func (d *Diagonal) LastInRow(i int) int  { return i }
func (d *Diagonal) FirstInCol(j int) int { return j }
func (d *Diagonal) LastInCol(j int) int  { return j }

func (d *Diagonal) Iterator() Iterator { return newRowIterator(d) }
