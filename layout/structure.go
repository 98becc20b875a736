// SPDX-License-Identifier: MIT

// Package layout - Structure contract, kinds and the shared row iterator.
//
// Purpose:
//   - Define the single polymorphism boundary every storage policy implements.
//   - Provide rowIterator, the stored-coordinate cursor reused by every variant
//     whose stored cells form one contiguous interval per row.
//
// Determinism:
//   - Iterators visit rows top to bottom, columns left to right.

package layout

import (
	"fmt"

	"github.com/katalvlaran/lvarray/internal/check"
)

// Kind tags a Structure variant.
type Kind int

const (
	KindGeneral Kind = iota
	KindSymmetric
	KindDiagonal
	KindBanded
	KindLowerTriangular
	KindUpperTriangular
	KindToeplitz
	KindSparse
)

var kindNames = [...]string{
	KindGeneral:         "General",
	KindSymmetric:       "Symmetric",
	KindDiagonal:        "Diagonal",
	KindBanded:          "Banded",
	KindLowerTriangular: "LowerTriangular",
	KindUpperTriangular: "UpperTriangular",
	KindToeplitz:        "Toeplitz",
	KindSparse:          "Sparse",
}

// String returns the variant name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Coord is a logical (row, column) coordinate.
type Coord struct {
	I, J int
}

// Structure maps a rows×cols logical matrix onto a flat buffer of
// NumElements() values.
//
// Contract:
//   - InRange(i,j) is the logical predicate 0 ≤ i < Rows, 0 ≤ j < Cols.
//   - Stored(i,j) reports whether an in-range coordinate owns a physical slot;
//     non-stored coordinates read as implicit zero and cannot be written.
//   - CoordToOffset validates and returns the slot in [0, NumElements()).
//   - Offset is the unchecked hot-path form (asserts only in checked builds).
//   - FirstInRow/LastInRow (and the column pair) bound the canonical stored
//     cells; an empty interval is reported as last < first.
//   - Iterator visits every physical slot exactly once.
type Structure interface {
	Kind() Kind
	Rows() int
	Cols() int
	NumElements() int
	InRange(i, j int) bool
	Stored(i, j int) bool
	CoordToOffset(i, j int) (int, error)
	Offset(i, j int) int
	FirstInRow(i int) int
	LastInRow(i int) int
	FirstInCol(j int) int
	LastInCol(j int) int
	Iterator() Iterator
}

// Iterator is a one-way cursor over the stored coordinates of a Structure.
// Once Valid returns false it stays false; Next on an invalid cursor is a no-op.
type Iterator interface {
	Valid() bool
	Next()
	Row() int
	Col() int
	Offset() int
}

// New builds a parameter-free Structure of the given kind.
//
// Errors:
//   - ErrUnknownKind for KindBanded, KindSparse and undefined kinds.
//   - Errors of the variant constructor (ErrBadShape, ErrShapeMismatch).
func New(kind Kind, rows, cols int) (Structure, error) {
	switch kind {
	case KindGeneral:
		return NewGeneral(rows, cols)
	case KindSymmetric:
		return NewSymmetric(rows, cols)
	case KindDiagonal:
		return NewDiagonal(rows, cols)
	case KindLowerTriangular:
		return NewLowerTriangular(rows, cols)
	case KindUpperTriangular:
		return NewUpperTriangular(rows, cols)
	case KindToeplitz:
		return NewToeplitz(rows, cols)
	default:
		return nil, fmt.Errorf("layout.New(%v): %w", kind, ErrUnknownKind)
	}
}

// inRange is the shared logical predicate.
func inRange(i, j, rows, cols int) bool {
	return i >= 0 && i < rows && j >= 0 && j < cols
}

// coordErr builds the uniform CoordToOffset error.
func coordErr(k Kind, i, j int) error {
	return fmt.Errorf("%v.CoordToOffset(%d,%d): %w", k, i, j, ErrInvalidCoordinate)
}

// validateDims rejects negative extents.
func validateDims(ctx string, rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("layout.%s(%d,%d): %w", ctx, rows, cols, ErrBadShape)
	}

	return nil
}

// validateSquare rejects negative extents and rows != cols.
func validateSquare(ctx string, rows, cols int) error {
	if err := validateDims(ctx, rows, cols); err != nil {
		return err
	}
	if rows != cols {
		return fmt.Errorf("layout.%s(%d,%d): %w", ctx, rows, cols, ErrShapeMismatch)
	}

	return nil
}

// assertStored is the hot-path precondition shared by Offset implementations.
// Callers guard it with check.Enabled.
func assertStored(s Structure, i, j int) {
	check.Assert(s.Stored(i, j), "%v: (%d,%d) not stored in %dx%d", s.Kind(), i, j, s.Rows(), s.Cols())
}

// rowIterator walks the canonical stored interval of each row.
//   - s supplies FirstInRow/LastInRow and the slot for each coordinate.
//   - rows with last < first are skipped.
type rowIterator struct {
	s     Structure
	i, j  int
	last  int // LastInRow(i) cached per row
	valid bool
}

func newRowIterator(s Structure) *rowIterator {
	it := &rowIterator{s: s, i: -1}
	it.advanceRow()

	return it
}

// advanceRow moves to the first non-empty row after it.i.
func (it *rowIterator) advanceRow() {
	rows := it.s.Rows()
	for it.i++; it.i < rows; it.i++ {
		first, last := it.s.FirstInRow(it.i), it.s.LastInRow(it.i)
		if last >= first {
			it.j, it.last, it.valid = first, last, true
			return
		}
	}
	it.valid = false
}

func (it *rowIterator) Valid() bool { return it.valid }

func (it *rowIterator) Next() {
	if !it.valid {
		return
	}
	it.j++
	if it.j > it.last {
		it.advanceRow()
	}
}

func (it *rowIterator) Row() int    { return it.i }
func (it *rowIterator) Col() int    { return it.j }
func (it *rowIterator) Offset() int { return it.s.Offset(it.i, it.j) }
