// SPDX-License-Identifier: MIT

// Package array - Array type, constructors and element access.
//
// Addressing:
//   - Strided: element at zero-based relative position p lives at
//     data[base + Σ p[d]*strides[d]]. Owners are dense row-major, base 0.
//   - Structured: rank 2, element (i,j) lives at data[structure.Offset(i,j)]
//     when stored; non-stored coordinates read as zero and reject writes.
//
// Positions:
//   - At/Set/Do use absolute indices (honoring lower bounds).
//   - Load (the expression hot path) uses zero-based relative positions.

package array

import (
	"fmt"

	"github.com/katalvlaran/lvarray/expr"
	"github.com/katalvlaran/lvarray/internal/check"
	"github.com/katalvlaran/lvarray/layout"
	"github.com/katalvlaran/lvarray/shape"
	"github.com/katalvlaran/lvarray/traverse"
	"golang.org/x/exp/constraints"
)

// buffer is the storage shared by an owner and all of its views.
type buffer[T constraints.Float] struct {
	data     []T
	released bool
	pool     *Pool[T]
}

// Array is an N-dimensional strided or structured array.
type Array[T constraints.Float] struct {
	sh        shape.Shape
	buf       *buffer[T]
	base      int              // strided only
	strides   []int            // strided only; nil when structured
	structure layout.Structure // nil when strided
	view      bool
}

var (
	_ expr.Operand[float64]         = (*Array[float64])(nil)
	_ traverse.Destination[float64] = (*Array[float64])(nil)
)

// New returns a zero-filled, zero-based, dense owning array.
//
// Errors:
//   - ErrBadShape for a negative extent.
func New[T constraints.Float](extents ...int) (*Array[T], error) {
	sh, err := shape.New(extents...)
	if err != nil {
		return nil, fmt.Errorf("array.New: %w", err)
	}

	return NewShaped[T](sh), nil
}

// NewShaped returns a zero-filled dense owning array of shape sh, lower bounds
// included.
func NewShaped[T constraints.Float](sh shape.Shape, opts ...Option[T]) *Array[T] {
	o := gatherOptions(opts)

	return &Array[T]{
		sh:      sh,
		buf:     &buffer[T]{data: o.alloc(sh.Size()), pool: o.pool},
		strides: shape.RowMajorStrides(sh.Extents()),
	}
}

// NewStructured returns a zero-filled owning Rows()×Cols() array whose storage
// is laid out by s and holds s.NumElements() values.
func NewStructured[T constraints.Float](s layout.Structure, opts ...Option[T]) *Array[T] {
	o := gatherOptions(opts)
	sh := shape.MustNew(s.Rows(), s.Cols())

	return &Array[T]{
		sh:        sh,
		buf:       &buffer[T]{data: o.alloc(s.NumElements()), pool: o.pool},
		structure: s,
	}
}

// FromSlice returns a dense owning array holding a copy of data, read in
// row-major order.
//
// Errors:
//   - ErrBadShape for a negative extent.
//   - ErrSizeMismatch when len(data) differs from the product of extents.
func FromSlice[T constraints.Float](data []T, extents ...int) (*Array[T], error) {
	sh, err := shape.New(extents...)
	if err != nil {
		return nil, fmt.Errorf("array.FromSlice: %w", err)
	}
	if len(data) != sh.Size() {
		return nil, fmt.Errorf("array.FromSlice: %d values for shape %v: %w", len(data), sh, ErrSizeMismatch)
	}
	a := NewShaped[T](sh)
	copy(a.buf.data, data)

	return a, nil
}

// Shape returns the logical shape.
func (a *Array[T]) Shape() shape.Shape { return a.sh }

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int { return a.sh.Rank() }

// Size returns the number of logical positions.
func (a *Array[T]) Size() int { return a.sh.Size() }

// IsView reports whether a borrows another array's storage.
func (a *Array[T]) IsView() bool { return a.view }

// Structure returns the storage layout, or nil for strided arrays.
func (a *Array[T]) Structure() layout.Structure { return a.structure }

// Strides returns a copy of the element strides (nil when structured).
func (a *Array[T]) Strides() []int { return append([]int(nil), a.strides...) }

// Err returns ErrDanglingView once the storage has been released.
func (a *Array[T]) Err() error {
	if a.buf.released {
		return ErrDanglingView
	}

	return nil
}

func (a *Array[T]) errorf(method string, pos []int, err error) error {
	return fmt.Errorf("Array.%s%v: %w", method, pos, err)
}

// At returns the element at absolute position pos.
//
// Errors:
//   - ErrDanglingView after Release.
//   - ErrRankMismatch / ErrIndexOutOfRange for positions outside the shape.
//
// Non-stored coordinates of a structured array read as zero.
func (a *Array[T]) At(pos ...int) (T, error) {
	if err := a.Err(); err != nil {
		return 0, a.errorf("At", pos, err)
	}
	if err := a.sh.Check(pos); err != nil {
		return 0, a.errorf("At", pos, err)
	}
	if a.structure != nil {
		i, j := pos[0]-a.sh.Lower(0), pos[1]-a.sh.Lower(1)
		if !a.structure.Stored(i, j) {
			return 0, nil
		}
		return a.buf.data[a.structure.Offset(i, j)], nil
	}

	return a.buf.data[a.sh.Offset(a.base, a.strides, pos)], nil
}

// Set stores v at absolute position pos.
//
// Errors:
//   - ErrDanglingView after Release.
//   - ErrRankMismatch / ErrIndexOutOfRange for positions outside the shape.
//   - ErrInvalidCoordinate for a non-stored coordinate of a structured array.
func (a *Array[T]) Set(v T, pos ...int) error {
	if err := a.Err(); err != nil {
		return a.errorf("Set", pos, err)
	}
	if err := a.sh.Check(pos); err != nil {
		return a.errorf("Set", pos, err)
	}
	if a.structure != nil {
		off, err := a.structure.CoordToOffset(pos[0]-a.sh.Lower(0), pos[1]-a.sh.Lower(1))
		if err != nil {
			return a.errorf("Set", pos, err)
		}
		a.buf.data[off] = v
		return nil
	}
	a.buf.data[a.sh.Offset(a.base, a.strides, pos)] = v

	return nil
}

// Load reads the element at zero-based relative position pos. It is the
// unchecked accessor used by expression evaluation; checked builds assert
// liveness and bounds.
func (a *Array[T]) Load(pos []int) T {
	if check.Enabled {
		a.assertLoad(pos)
	}
	if a.structure != nil {
		if !a.structure.Stored(pos[0], pos[1]) {
			return 0
		}
		return a.buf.data[a.structure.Offset(pos[0], pos[1])]
	}
	off := a.base
	for d, p := range pos {
		off += p * a.strides[d]
	}

	return a.buf.data[off]
}

func (a *Array[T]) assertLoad(pos []int) {
	check.Assert(!a.buf.released, "Array.Load on released storage")
	check.Assert(len(pos) == a.sh.Rank(), "Array.Load: %d indices for rank %d", len(pos), a.sh.Rank())
	for d, p := range pos {
		check.Assert(p >= 0 && p < a.sh.Extent(d), "Array.Load: index[%d]=%d not in [0,%d)", d, p, a.sh.Extent(d))
	}
}

// Footprint describes a's storage for alias analysis.
func (a *Array[T]) Footprint() expr.Footprint {
	if a.structure != nil {
		return expr.Footprint{Owner: a.buf, Lo: 0, Hi: len(a.buf.data) - 1}
	}
	lo, hi := a.sh.Span(a.base, a.strides)

	return expr.Footprint{Owner: a.buf, Base: a.base, Strides: a.strides, Lo: lo, Hi: hi}
}

// Storage exposes the physical addressing to the traversal engine.
func (a *Array[T]) Storage() traverse.Storage[T] {
	return traverse.Storage[T]{Data: a.buf.data, Base: a.base, Strides: a.strides, Structure: a.structure}
}
