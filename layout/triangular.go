// SPDX-License-Identifier: MIT

package layout

import "github.com/katalvlaran/lvarray/internal/check"

// LowerTriangular stores i >= j of an n×n matrix in row-major lower order
// (same packing as Symmetric); the strict upper half reads as zero.
type LowerTriangular struct {
	size int
}

// UpperTriangular stores i <= j of an n×n matrix in row-major upper order;
// row i starts at i*n - i*(i-1)/2. The strict lower half reads as zero.
type UpperTriangular struct {
	size int
}

var (
	_ Structure = (*LowerTriangular)(nil)
	_ Structure = (*UpperTriangular)(nil)
)

// NewLowerTriangular returns an n×n lower-triangular structure.
//
// Errors:
//   - ErrBadShape for negative extents; ErrShapeMismatch when rows != cols.
func NewLowerTriangular(rows, cols int) (*LowerTriangular, error) {
	if err := validateSquare("NewLowerTriangular", rows, cols); err != nil {
		return nil, err
	}

	return &LowerTriangular{size: rows}, nil
}

func (l *LowerTriangular) Kind() Kind            { return KindLowerTriangular }
func (l *LowerTriangular) Rows() int             { return l.size }
func (l *LowerTriangular) Cols() int             { return l.size }
func (l *LowerTriangular) NumElements() int      { return l.size * (l.size + 1) / 2 }
func (l *LowerTriangular) InRange(i, j int) bool { return inRange(i, j, l.size, l.size) }
func (l *LowerTriangular) Stored(i, j int) bool  { return i >= j && l.InRange(i, j) }

func (l *LowerTriangular) CoordToOffset(i, j int) (int, error) {
	if !l.Stored(i, j) {
		return 0, coordErr(KindLowerTriangular, i, j)
	}

	return i*(i+1)/2 + j, nil
}

func (l *LowerTriangular) Offset(i, j int) int {
	if check.Enabled {
		assertStored(l, i, j)
	}

	return i*(i+1)/2 + j
}

func (l *LowerTriangular) FirstInRow(int) int   { return 0 }
func (l *LowerTriangular) LastInRow(i int) int  { return i }
func (l *LowerTriangular) FirstInCol(j int) int { return j }
func (l *LowerTriangular) LastInCol(int) int    { return l.size - 1 }
func (l *LowerTriangular) Iterator() Iterator   { return newRowIterator(l) }

// NewUpperTriangular returns an n×n upper-triangular structure.
//
// Errors:
//   - ErrBadShape for negative extents; ErrShapeMismatch when rows != cols.
func NewUpperTriangular(rows, cols int) (*UpperTriangular, error) {
	if err := validateSquare("NewUpperTriangular", rows, cols); err != nil {
		return nil, err
	}

	return &UpperTriangular{size: rows}, nil
}

func (u *UpperTriangular) Kind() Kind            { return KindUpperTriangular }
func (u *UpperTriangular) Rows() int             { return u.size }
func (u *UpperTriangular) Cols() int             { return u.size }
func (u *UpperTriangular) NumElements() int      { return u.size * (u.size + 1) / 2 }
func (u *UpperTriangular) InRange(i, j int) bool { return inRange(i, j, u.size, u.size) }
func (u *UpperTriangular) Stored(i, j int) bool  { return i <= j && u.InRange(i, j) }

func (u *UpperTriangular) CoordToOffset(i, j int) (int, error) {
	if !u.Stored(i, j) {
		return 0, coordErr(KindUpperTriangular, i, j)
	}

	return u.offset(i, j), nil
}

func (u *UpperTriangular) Offset(i, j int) int {
	if check.Enabled {
		assertStored(u, i, j)
	}

	return u.offset(i, j)
}

func (u *UpperTriangular) offset(i, j int) int {
	return i*u.size - i*(i-1)/2 + (j - i)
}

func (u *UpperTriangular) FirstInRow(i int) int { return i }
func (u *UpperTriangular) LastInRow(int) int    { return u.size - 1 }
func (u *UpperTriangular) FirstInCol(int) int   { return 0 }
func (u *UpperTriangular) LastInCol(j int) int  { return j }
func (u *UpperTriangular) Iterator() Iterator   { return newRowIterator(u) }
