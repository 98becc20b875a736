// SPDX-License-Identifier: MIT

// Package layout - Symmetric packed storage.
//
// Purpose:
//   - Store only the lower triangle (diagonal included) of an n×n matrix.
//   - Fold (i,j) with i < j onto (j,i) so both coordinates share one slot.
//
// Packing (row-major lower order):
//
//	offset(i,j) = i*(i+1)/2 + j   for i >= j
//	offset(i,j) = j*(j+1)/2 + i   for i <  j
//
// Invariants:
//   - CoordToOffset(i,j) == CoordToOffset(j,i).
//   - NumElements() == n*(n+1)/2.

package layout

import "github.com/katalvlaran/lvarray/internal/check"

// Symmetric is the packed lower-triangular symmetric structure.
type Symmetric struct {
	size int // n; rows == cols == size
}

var _ Structure = (*Symmetric)(nil)

// NewSymmetric returns an n×n symmetric structure.
//
// Errors:
//   - ErrBadShape for negative extents.
//   - ErrShapeMismatch when rows != cols.
//
// Complexity: O(1).
func NewSymmetric(rows, cols int) (*Symmetric, error) {
	if err := validateSquare("NewSymmetric", rows, cols); err != nil {
		return nil, err
	}

	return &Symmetric{size: rows}, nil
}

func (s *Symmetric) Kind() Kind            { return KindSymmetric }
func (s *Symmetric) Rows() int             { return s.size }
func (s *Symmetric) Cols() int             { return s.size }
func (s *Symmetric) NumElements() int      { return s.size * (s.size + 1) / 2 }
func (s *Symmetric) InRange(i, j int) bool { return inRange(i, j, s.size, s.size) }

// Stored is true for every in-range coordinate: the upper half aliases the
// lower half rather than reading as zero.
func (s *Symmetric) Stored(i, j int) bool { return s.InRange(i, j) }

// CoordToOffset returns the packed slot shared by (i,j) and (j,i).
func (s *Symmetric) CoordToOffset(i, j int) (int, error) {
	if !s.InRange(i, j) {
		return 0, coordErr(KindSymmetric, i, j)
	}

	return symOffset(i, j), nil
}

// Offset is the unchecked packed slot.
func (s *Symmetric) Offset(i, j int) int {
	if check.Enabled {
		assertStored(s, i, j)
	}

	return symOffset(i, j)
}

func symOffset(i, j int) int {
	if i >= j {
		return i*(i+1)/2 + j
	}

	return j*(j+1)/2 + i
}

// Canonical stored cells: row i holds columns 0..i, column j rows j..n-1.
func (s *Symmetric) FirstInRow(int) int   { return 0 }
func (s *Symmetric) LastInRow(i int) int  { return i }
func (s *Symmetric) FirstInCol(j int) int { return j }
func (s *Symmetric) LastInCol(int) int    { return s.size - 1 }

// Iterator returns a SymmetricIterator over the lower triangle.
func (s *Symmetric) Iterator() Iterator { return NewSymmetricIterator(s.size) }

// SymmetricIterator walks the lower triangle of an n×n symmetric structure
// in storage order.
//   - Invariant while valid: 0 ≤ j ≤ i < n and offset == symOffset(i,j).
//   - offset grows by exactly one per Next.
//   - Once i reaches n the cursor is permanently invalid (no reset).
type SymmetricIterator struct {
	size   int
	i, j   int
	offset int
	valid  bool
}

var _ Iterator = (*SymmetricIterator)(nil)

// NewSymmetricIterator returns a cursor positioned at (0,0).
// A size of zero yields an already-invalid cursor.
func NewSymmetricIterator(size int) *SymmetricIterator {
	return &SymmetricIterator{size: size, valid: size > 0}
}

// Valid reports whether the cursor addresses a stored coordinate.
func (it *SymmetricIterator) Valid() bool { return it.valid }

// Next advances j, wrapping to the start of the next row once j passes i.
func (it *SymmetricIterator) Next() {
	if !it.valid {
		return
	}
	it.offset++
	it.j++
	if it.j > it.i {
		it.j = 0
		it.i++
		if it.i == it.size {
			it.valid = false
		}
	}
}

func (it *SymmetricIterator) Row() int    { return it.i }
func (it *SymmetricIterator) Col() int    { return it.j }
func (it *SymmetricIterator) Offset() int { return it.offset }
