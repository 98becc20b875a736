// SPDX-License-Identifier: MIT

// Package shape - Shape value type & natural-order cursor.
//
// Purpose:
//   - Hold per-dimension extents and lower bounds with a rank fixed at build time.
//   - Provide a deterministic row-major cursor (last dimension varies fastest).
//   - Keep Shape immutable: accessors return copies, never internal slices.
//
// Complexity quicksheet:
//   - New/NewWithBase: O(rank); Size: O(rank); Next: amortized O(1).

package shape

import (
	"fmt"
	"strings"
)

// Shape is an immutable N-dimensional extent descriptor.
//   - ext holds the number of indices in each dimension (>= 0).
//   - lo holds the first valid index in each dimension (default 0).
type Shape struct {
	ext []int // per-dimension extents
	lo  []int // per-dimension lower bounds
}

// New builds a zero-based Shape from extents.
// Stage 1 (Validate): every extent must be >= 0.
// Stage 2 (Finalize): copy extents, lower bounds all zero.
// Complexity: O(rank).
func New(extents ...int) (Shape, error) {
	return NewWithBase(nil, extents...)
}

// NewWithBase builds a Shape whose dimension d starts at lower[d].
// A nil lower vector means zero-based in every dimension.
//
// Errors:
//   - ErrBadShape when an extent is negative or len(lower) != len(extents).
//
// Complexity: O(rank).
func NewWithBase(lower []int, extents ...int) (Shape, error) {
	if lower != nil && len(lower) != len(extents) {
		return Shape{}, fmt.Errorf("shape.NewWithBase: %d bounds for rank %d: %w", len(lower), len(extents), ErrBadShape)
	}
	s := Shape{
		ext: make([]int, len(extents)),
		lo:  make([]int, len(extents)),
	}
	for d, e := range extents {
		if e < 0 {
			return Shape{}, fmt.Errorf("shape.NewWithBase: extent[%d]=%d: %w", d, e, ErrBadShape)
		}
		s.ext[d] = e
		if lower != nil {
			s.lo[d] = lower[d]
		}
	}

	return s, nil
}

// MustNew is New for package-level fixtures and tests; it panics on error.
func MustNew(extents ...int) Shape {
	s, err := New(extents...)
	if err != nil {
		panic(err)
	}

	return s
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int { return len(s.ext) }

// Extent returns the number of indices along dimension d.
func (s Shape) Extent(d int) int { return s.ext[d] }

// Lower returns the first valid index along dimension d.
func (s Shape) Lower(d int) int { return s.lo[d] }

// Upper returns the last valid index along dimension d (Lower-1 when empty).
func (s Shape) Upper(d int) int { return s.lo[d] + s.ext[d] - 1 }

// Extents returns a copy of the extent vector.
func (s Shape) Extents() []int { return append([]int(nil), s.ext...) }

// Lowers returns a copy of the lower-bound vector.
func (s Shape) Lowers() []int { return append([]int(nil), s.lo...) }

// Size returns the number of positions (product of extents).
// A rank-0 shape has size 1 (a scalar position).
func (s Shape) Size() int {
	n := 1
	for _, e := range s.ext {
		n *= e
	}

	return n
}

// IsEmpty reports whether any dimension has zero extent.
func (s Shape) IsEmpty() bool {
	for _, e := range s.ext {
		if e == 0 {
			return true
		}
	}

	return false
}

// Conformant reports equal rank and equal extents. Lower bounds are ignored:
// operands are matched position-by-position relative to their own base.
func (s Shape) Conformant(o Shape) bool {
	if len(s.ext) != len(o.ext) {
		return false
	}
	for d := range s.ext {
		if s.ext[d] != o.ext[d] {
			return false
		}
	}

	return true
}

// Equal reports identical extents and lower bounds.
func (s Shape) Equal(o Shape) bool {
	if !s.Conformant(o) {
		return false
	}
	for d := range s.lo {
		if s.lo[d] != o.lo[d] {
			return false
		}
	}

	return true
}

// Contains reports whether pos addresses a position inside the shape.
func (s Shape) Contains(pos []int) bool {
	if len(pos) != len(s.ext) {
		return false
	}
	for d, p := range pos {
		if p < s.lo[d] || p >= s.lo[d]+s.ext[d] {
			return false
		}
	}

	return true
}

// Check is Contains with a diagnostic error.
//
// Errors:
//   - ErrRankMismatch when len(pos) != Rank().
//   - ErrIndexOutOfRange when a component is outside [Lower, Upper].
func (s Shape) Check(pos []int) error {
	if len(pos) != len(s.ext) {
		return fmt.Errorf("shape.Check: %d indices for rank %d: %w", len(pos), len(s.ext), ErrRankMismatch)
	}
	for d, p := range pos {
		if p < s.lo[d] || p >= s.lo[d]+s.ext[d] {
			return fmt.Errorf("shape.Check: index[%d]=%d not in [%d,%d]: %w", d, p, s.lo[d], s.Upper(d), ErrIndexOutOfRange)
		}
	}

	return nil
}

// Rebase returns the same extents with new lower bounds.
//
// Errors:
//   - ErrRankMismatch when len(lower) != Rank().
func (s Shape) Rebase(lower ...int) (Shape, error) {
	if len(lower) != len(s.ext) {
		return Shape{}, fmt.Errorf("shape.Rebase: %d bounds for rank %d: %w", len(lower), len(s.ext), ErrRankMismatch)
	}

	return Shape{ext: s.Extents(), lo: append([]int(nil), lower...)}, nil
}

// First writes the first natural-order position into pos and reports whether
// the shape has any position at all. pos must have length Rank().
func (s Shape) First(pos []int) bool {
	copy(pos, s.lo)

	return !s.IsEmpty()
}

// Next advances pos to the next position in row-major order (last dimension
// fastest) and reports false once every position has been visited.
// The cursor never allocates; pos must come from First.
func (s Shape) Next(pos []int) bool {
	for d := len(s.ext) - 1; d >= 0; d-- {
		pos[d]++
		if pos[d] < s.lo[d]+s.ext[d] {
			return true
		}
		pos[d] = s.lo[d] // carry into the next-slower dimension
	}

	return false
}

// String renders the shape as "(2x3)" or "(1:5x0:3)" when based.
func (s Shape) String() string {
	var b strings.Builder
	b.WriteString("(")
	for d := range s.ext {
		if d > 0 {
			b.WriteString("x")
		}
		if s.lo[d] != 0 {
			fmt.Fprintf(&b, "%d:%d", s.lo[d], s.Upper(d))
			continue
		}
		fmt.Fprintf(&b, "%d", s.ext[d])
	}
	b.WriteString(")")

	return b.String()
}
