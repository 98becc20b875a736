// SPDX-License-Identifier: MIT

// Package layout - Sparse storage over a roaring bitmap.
//
// Purpose:
//   - Store an arbitrary pattern of coordinates; everything else reads as zero.
//   - Keep offsets dense: the slot of (i,j) is its row-major rank inside the
//     pattern, so the buffer holds exactly NumElements() values.
//
// Implementation:
//   - byRow holds k = i*cols + j for every stored coordinate; Rank gives the
//     slot and Select finds the first/last stored column of a row.
//   - byCol holds j*rows + i so column queries use the same rank/select trick.
//
// Complexity:
//   - CoordToOffset / Stored: O(log nnz); First/Last queries: O(log nnz).

package layout

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring"
	"github.com/katalvlaran/lvarray/internal/check"
)

// Sparse is a pattern-defined structure.
type Sparse struct {
	rows, cols int
	byRow      *roaring.Bitmap // row-major linear indices
	byCol      *roaring.Bitmap // column-major linear indices
}

var _ Structure = (*Sparse)(nil)

// NewSparse returns a rows×cols structure storing exactly the coordinates in
// pattern. Duplicates collapse to one slot.
//
// Errors:
//   - ErrBadShape for negative extents or rows*cols beyond the 32-bit index space.
//   - ErrInvalidCoordinate for a pattern entry outside the logical range.
//
// Complexity: O(nnz log nnz).
func NewSparse(rows, cols int, pattern []Coord) (*Sparse, error) {
	if err := validateDims("NewSparse", rows, cols); err != nil {
		return nil, err
	}
	if uint64(rows)*uint64(cols) > math.MaxUint32 {
		return nil, fmt.Errorf("layout.NewSparse(%d,%d): exceeds 32-bit index space: %w", rows, cols, ErrBadShape)
	}
	s := &Sparse{rows: rows, cols: cols, byRow: roaring.New(), byCol: roaring.New()}
	for _, c := range pattern {
		if !inRange(c.I, c.J, rows, cols) {
			return nil, fmt.Errorf("layout.NewSparse: pattern (%d,%d): %w", c.I, c.J, ErrInvalidCoordinate)
		}
		s.byRow.Add(uint32(c.I*cols + c.J))
		s.byCol.Add(uint32(c.J*rows + c.I))
	}
	s.byRow.RunOptimize()
	s.byCol.RunOptimize()

	return s, nil
}

func (s *Sparse) Kind() Kind            { return KindSparse }
func (s *Sparse) Rows() int             { return s.rows }
func (s *Sparse) Cols() int             { return s.cols }
func (s *Sparse) NumElements() int      { return int(s.byRow.GetCardinality()) }
func (s *Sparse) InRange(i, j int) bool { return inRange(i, j, s.rows, s.cols) }

// Stored reports membership in the pattern.
func (s *Sparse) Stored(i, j int) bool {
	return s.InRange(i, j) && s.byRow.Contains(uint32(i*s.cols+j))
}

// CoordToOffset returns the row-major rank of (i,j) in the pattern.
func (s *Sparse) CoordToOffset(i, j int) (int, error) {
	if !s.Stored(i, j) {
		return 0, coordErr(KindSparse, i, j)
	}

	return int(s.byRow.Rank(uint32(i*s.cols+j))) - 1, nil
}

func (s *Sparse) Offset(i, j int) int {
	if check.Enabled {
		assertStored(s, i, j)
	}

	return int(s.byRow.Rank(uint32(i*s.cols+j))) - 1
}

// Pattern returns the stored coordinates in storage order.
func (s *Sparse) Pattern() []Coord {
	out := make([]Coord, 0, s.NumElements())
	for it := s.Iterator(); it.Valid(); it.Next() {
		out = append(out, Coord{I: it.Row(), J: it.Col()})
	}

	return out
}

// firstIn returns the smallest member of bm in [lo, hi) or -1.
func firstIn(bm *roaring.Bitmap, lo, hi int) int {
	var before uint64
	if lo > 0 {
		before = bm.Rank(uint32(lo - 1))
	}
	if before >= bm.GetCardinality() {
		return -1
	}
	v, err := bm.Select(uint32(before))
	if err != nil || int(v) >= hi {
		return -1
	}

	return int(v)
}

// lastIn returns the largest member of bm in [lo, hi) or -1.
func lastIn(bm *roaring.Bitmap, lo, hi int) int {
	if hi <= lo {
		return -1
	}
	upto := bm.Rank(uint32(hi - 1))
	if upto == 0 {
		return -1
	}
	v, err := bm.Select(uint32(upto - 1))
	if err != nil || int(v) < lo {
		return -1
	}

	return int(v)
}

// FirstInRow returns the first stored column of row i; empty rows report
// (0, -1) through FirstInRow/LastInRow.
func (s *Sparse) FirstInRow(i int) int {
	if k := firstIn(s.byRow, i*s.cols, (i+1)*s.cols); k >= 0 {
		return k - i*s.cols
	}

	return 0
}

func (s *Sparse) LastInRow(i int) int {
	if k := lastIn(s.byRow, i*s.cols, (i+1)*s.cols); k >= 0 {
		return k - i*s.cols
	}

	return -1
}

func (s *Sparse) FirstInCol(j int) int {
	if k := firstIn(s.byCol, j*s.rows, (j+1)*s.rows); k >= 0 {
		return k - j*s.rows
	}

	return 0
}

func (s *Sparse) LastInCol(j int) int {
	if k := lastIn(s.byCol, j*s.rows, (j+1)*s.rows); k >= 0 {
		return k - j*s.rows
	}

	return -1
}

// Iterator walks the pattern in row-major order; offsets grow by one.
func (s *Sparse) Iterator() Iterator {
	it := &sparseIterator{src: s.byRow.Iterator(), cols: s.cols, offset: -1}
	it.Next()

	return it
}

type sparseIterator struct {
	src    roaring.IntPeekable
	cols   int
	i, j   int
	offset int
	valid  bool
}

func (it *sparseIterator) Valid() bool { return it.valid }

func (it *sparseIterator) Next() {
	if !it.src.HasNext() {
		it.valid = false
		return
	}
	k := int(it.src.Next())
	it.i, it.j = k/it.cols, k%it.cols
	it.offset++
	it.valid = true
}

func (it *sparseIterator) Row() int    { return it.i }
func (it *sparseIterator) Col() int    { return it.j }
func (it *sparseIterator) Offset() int { return it.offset }
