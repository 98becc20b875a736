// SPDX-License-Identifier: MIT

package layout

import "github.com/katalvlaran/lvarray/internal/check"

// General is the dense row-major structure: every coordinate is stored at
// offset i*cols + j.
type General struct {
	rows, cols int
}

var _ Structure = (*General)(nil)

// NewGeneral returns a rows×cols dense structure.
//
// Errors:
//   - ErrBadShape for negative extents.
func NewGeneral(rows, cols int) (*General, error) {
	if err := validateDims("NewGeneral", rows, cols); err != nil {
		return nil, err
	}

	return &General{rows: rows, cols: cols}, nil
}

func (g *General) Kind() Kind            { return KindGeneral }
func (g *General) Rows() int             { return g.rows }
func (g *General) Cols() int             { return g.cols }
func (g *General) NumElements() int      { return g.rows * g.cols }
func (g *General) InRange(i, j int) bool { return inRange(i, j, g.rows, g.cols) }
func (g *General) Stored(i, j int) bool  { return g.InRange(i, j) }

// CoordToOffset returns i*cols + j or ErrInvalidCoordinate.
func (g *General) CoordToOffset(i, j int) (int, error) {
	if !g.InRange(i, j) {
		return 0, coordErr(KindGeneral, i, j)
	}

	return i*g.cols + j, nil
}

// Offset is the unchecked row-major slot.
func (g *General) Offset(i, j int) int {
	if check.Enabled {
		assertStored(g, i, j)
	}

	return i*g.cols + j
}

func (g *General) FirstInRow(int) int { return 0 }
func (g *General) LastInRow(int) int  { return g.cols - 1 }
func (g *General) FirstInCol(int) int { return 0 }
func (g *General) LastInCol(int) int  { return g.rows - 1 }

// Iterator visits all coordinates in row-major order.
func (g *General) Iterator() Iterator { return newRowIterator(g) }
