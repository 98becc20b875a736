// SPDX-License-Identifier: MIT

// Package array - copies, visitors, comparison and formatting.
//
// Determinism:
//   - Every helper walks positions in natural (row-major) order.
//   - Structured arrays are read logically: non-stored coordinates yield zero
//     and symmetric coordinates fold onto their stored twin.

package array

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvarray/shape"
	"golang.org/x/exp/constraints"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// rel returns a zero-based copy of the extents as a shape for relative walks.
func (a *Array[T]) rel() shape.Shape {
	z, _ := shape.New(a.sh.Extents()...)
	return z
}

// Do calls fn for every position (absolute indices) and its value until fn
// returns false. pos is reused between calls.
//
// Errors:
//   - ErrDanglingView after Release.
func (a *Array[T]) Do(fn func(pos []int, v T) bool) error {
	if err := a.Err(); err != nil {
		return fmt.Errorf("Array.Do: %w", err)
	}
	z := a.rel()
	r, abs := make([]int, z.Rank()), make([]int, z.Rank())
	for ok := z.First(r); ok; ok = z.Next(r) {
		for d := range r {
			abs[d] = r[d] + a.sh.Lower(d)
		}
		if !fn(abs, a.Load(r)) {
			return nil
		}
	}

	return nil
}

// Data returns the logical contents in natural order as a new slice.
func (a *Array[T]) Data() ([]T, error) {
	out := make([]T, 0, a.sh.Size())
	err := a.Do(func(_ []int, v T) bool {
		out = append(out, v)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("Array.Data: %w", err)
	}

	return out, nil
}

// Clone returns an owning deep copy with the same shape (and structure).
// A strided view clones into a dense owner.
func (a *Array[T]) Clone() (*Array[T], error) {
	if err := a.Err(); err != nil {
		return nil, fmt.Errorf("Array.Clone: %w", err)
	}
	if a.structure != nil {
		c := NewStructured[T](a.structure)
		copy(c.buf.data, a.buf.data)
		c.sh = a.sh
		return c, nil
	}
	c := NewShaped[T](a.sh)
	if err := c.Assign(a.Expr()); err != nil {
		return nil, fmt.Errorf("Array.Clone: %w", err)
	}

	return c, nil
}

// String identifies the array by kind and shape, e.g. "Array(2x3)" or
// "Symmetric(3x3)". Use Dump for the contents.
func (a *Array[T]) String() string {
	if a.structure != nil {
		return a.structure.Kind().String() + a.sh.String()
	}

	return "Array" + a.sh.String()
}

// Dump renders the contents: one bracketed line per row for rank 2, a single
// line for rank 1 and a flat natural-order line otherwise.
func (a *Array[T]) Dump() string {
	if a.Err() != nil {
		return a.String() + " <released>"
	}
	var b strings.Builder
	cols := 0
	if a.sh.Rank() >= 1 {
		cols = a.sh.Extent(a.sh.Rank() - 1)
	}
	if a.sh.Rank() != 2 {
		cols = a.sh.Size()
	}
	k := 0
	_ = a.Do(func(_ []int, v T) bool {
		if k%max(cols, 1) == 0 {
			b.WriteString(_fmtRowOpen)
		} else {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%g", v)
		k++
		if k%max(cols, 1) == 0 {
			b.WriteString(_fmtRowClose)
		}
		return true
	})

	return b.String()
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds at every position.
// Negative tolerances are taken by absolute value. NaN is never close to
// anything; equal infinities are.
//
// Errors:
//   - ErrBadTolerance for NaN or infinite tolerances.
//   - ErrShapeMismatch when the extents differ.
//   - ErrDanglingView when either array was released.
func AllClose[T constraints.Float](a, b *Array[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, fmt.Errorf("array.AllClose: %w", ErrBadTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := checkPair(a, b); err != nil {
		return false, fmt.Errorf("array.AllClose: %w", err)
	}
	z := a.rel()
	pos := make([]int, z.Rank())
	for ok := z.First(pos); ok; ok = z.Next(pos) {
		x, y := float64(a.Load(pos)), float64(b.Load(pos))
		if x == y {
			continue // equal infinities
		}
		if !(math.Abs(x-y) <= atol+rtol*math.Abs(y)) {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports identical extents and values that compare == at every position.
// Released arrays are never equal.
func Equal[T constraints.Float](a, b *Array[T]) bool {
	if checkPair(a, b) != nil {
		return false
	}
	z := a.rel()
	pos := make([]int, z.Rank())
	for ok := z.First(pos); ok; ok = z.Next(pos) {
		if a.Load(pos) != b.Load(pos) {
			return false
		}
	}

	return true
}

func checkPair[T constraints.Float](a, b *Array[T]) error {
	if err := a.Err(); err != nil {
		return err
	}
	if err := b.Err(); err != nil {
		return err
	}
	if !a.sh.Conformant(b.sh) {
		return fmt.Errorf("%v vs %v: %w", a.sh, b.sh, ErrShapeMismatch)
	}

	return nil
}
