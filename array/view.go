// SPDX-License-Identifier: MIT

// Package array - zero-copy views and storage release.
//
// Purpose:
//   - Slice selects an inclusive Range per dimension (a sub-array).
//   - View places an arbitrary offset/stride window over the storage; this
//     is how unaligned and misaligned operands are built.
//   - Reindex renames positions by moving the lower bounds.
//
// Views share the owner's buffer and are invalidated by the owner's Release.

package array

import (
	"fmt"

	"github.com/katalvlaran/lvarray/shape"
)

// Slice returns a view selecting ranges[d] along each dimension d. The
// view keeps the lower bounds of a.
//
// Errors:
//   - ErrDanglingView after Release.
//   - ErrStructuredView for structured arrays.
//   - ErrRankMismatch when len(ranges) != Rank().
//   - ErrIndexOutOfRange for a range leaving the dimension.
func (a *Array[T]) Slice(ranges ...shape.Range) (*Array[T], error) {
	if err := a.viewable("Slice"); err != nil {
		return nil, err
	}
	if len(ranges) != a.sh.Rank() {
		return nil, fmt.Errorf("Array.Slice: %d ranges for rank %d: %w", len(ranges), a.sh.Rank(), ErrRankMismatch)
	}
	base := a.base
	ext := make([]int, len(ranges))
	for d, r := range ranges {
		first, n, err := r.Resolve(a.sh.Lower(d), a.sh.Extent(d))
		if err != nil {
			return nil, fmt.Errorf("Array.Slice: dim %d: %w", d, err)
		}
		if n > 0 {
			base += (first - a.sh.Lower(d)) * a.strides[d]
		}
		ext[d] = n
	}
	sh, err := shape.NewWithBase(a.sh.Lowers(), ext...)
	if err != nil {
		return nil, fmt.Errorf("Array.Slice: %w", err)
	}

	return a.derive(sh, base, a.Strides()), nil
}

// View returns a zero-based view of the given extents whose first element
// sits offset slots after a's first element and whose dimension d advances
// strides[d] slots. Strides may be negative or zero.
//
// Errors:
//   - ErrDanglingView after Release.
//   - ErrStructuredView for structured arrays.
//   - ErrBadShape for negative extents, ErrRankMismatch when
//     len(strides) != len(extents).
//   - ErrIndexOutOfRange when the window leaves the buffer.
func (a *Array[T]) View(offset int, strides []int, extents ...int) (*Array[T], error) {
	if err := a.viewable("View"); err != nil {
		return nil, err
	}
	if len(strides) != len(extents) {
		return nil, fmt.Errorf("Array.View: %d strides for rank %d: %w", len(strides), len(extents), ErrRankMismatch)
	}
	sh, err := shape.New(extents...)
	if err != nil {
		return nil, fmt.Errorf("Array.View: %w", err)
	}
	base := a.base + offset
	if lo, hi := sh.Span(base, strides); lo <= hi && (lo < 0 || hi >= len(a.buf.data)) {
		return nil, fmt.Errorf("Array.View: window [%d,%d] outside buffer of %d: %w", lo, hi, len(a.buf.data), ErrIndexOutOfRange)
	}

	return a.derive(sh, base, append([]int(nil), strides...)), nil
}

// Reindex returns a view with the same elements addressed from new lower
// bounds. Structured arrays may be reindexed too.
//
// Errors:
//   - ErrDanglingView after Release.
//   - ErrRankMismatch when len(lower) != Rank().
func (a *Array[T]) Reindex(lower ...int) (*Array[T], error) {
	if err := a.Err(); err != nil {
		return nil, fmt.Errorf("Array.Reindex: %w", err)
	}
	sh, err := a.sh.Rebase(lower...)
	if err != nil {
		return nil, fmt.Errorf("Array.Reindex: %w", err)
	}
	v := a.derive(sh, a.base, a.Strides())
	v.structure = a.structure
	if a.structure != nil {
		v.strides = nil
	}

	return v, nil
}

// Release frees the storage of an owning array: the buffer goes back to its
// Pool (if any) and every view of it becomes dangling. Releasing twice, or
// releasing a view, does nothing.
func (a *Array[T]) Release() {
	if a.view || a.buf.released {
		return
	}
	a.buf.released = true
	if a.buf.pool != nil {
		a.buf.pool.Put(a.buf.data)
	}
	a.buf.data = nil
}

func (a *Array[T]) viewable(method string) error {
	if err := a.Err(); err != nil {
		return fmt.Errorf("Array.%s: %w", method, err)
	}
	if a.structure != nil {
		return fmt.Errorf("Array.%s: %v: %w", method, a.structure.Kind(), ErrStructuredView)
	}

	return nil
}

func (a *Array[T]) derive(sh shape.Shape, base int, strides []int) *Array[T] {
	return &Array[T]{sh: sh, buf: a.buf, base: base, strides: strides, view: true}
}
