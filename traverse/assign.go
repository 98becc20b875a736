// SPDX-License-Identifier: MIT

// Package traverse - the fused assignment loop.
//
// Implementation:
//   - Stage 1 (Validate): destination liveness, then expr.Conform.
//   - Stage 2 (Plan): pick the order (natural, cached fast, or structure
//     iterator) and decide whether a scratch generation is needed.
//   - Stage 3 (Run): one pass; strided destinations advance the physical
//     offset incrementally, structured destinations write at the iterator's
//     slot.
//   - Stage 4 (Commit): only when a scratch generation was used.
//
// Complexity: O(size · nodes) time; O(1) extra space without aliasing,
// O(size) with a scratch generation.

package traverse

import (
	"fmt"

	"github.com/katalvlaran/lvarray/expr"
	"github.com/katalvlaran/lvarray/layout"
	"github.com/katalvlaran/lvarray/shape"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Storage is the physical view of a destination.
//   - Strided: Data[Base + Σ pos[d]*Strides[d]] for zero-based pos.
//   - Structured (Structure != nil): rank 2, Data[Structure.Offset(i,j)] for
//     stored coordinates; Base and Strides are unused.
type Storage[T constraints.Float] struct {
	Data      []T
	Base      int
	Strides   []int
	Structure layout.Structure
}

// Destination is an operand that can also be written in place.
type Destination[T constraints.Float] interface {
	expr.Operand[T]
	Storage() Storage[T]
}

// Assign evaluates e at every position of dst and stores the result.
//
// Errors:
//   - ErrNilDestination for a nil dst.
//   - dst.Err() (e.g. released storage).
//   - expr.ErrShapeMismatch (aggregated) when e does not conform to dst.
//
// A destination with a zero extent is left untouched and nil is returned.
func Assign[T constraints.Float](dst Destination[T], e expr.Expr[T], opts ...Option) error {
	if dst == nil {
		return fmt.Errorf("traverse.Assign: %w", ErrNilDestination)
	}
	if err := dst.Err(); err != nil {
		return fmt.Errorf("traverse.Assign: destination: %w", err)
	}
	sh := dst.Shape()
	if err := expr.Conform(sh, e); err != nil {
		return fmt.Errorf("traverse.Assign%v: %w", sh, err)
	}
	if sh.IsEmpty() {
		return nil
	}
	o := gatherOptions(opts)
	st := dst.Storage()
	ord := plan(o, sh, st)

	if !hazard(dst.Footprint(), e) {
		run(st, sh, ord, e)
		return nil
	}

	o.logger.Debug("assigning through scratch generation",
		zap.Stringer("shape", sh), zap.Stringer("expr", e))
	scratch := scratchFor(st, sh)
	run(scratch, sh, ord, e)
	commit(st, scratch, sh)

	return nil
}

// plan returns the run list to use, or nil for natural order.
func plan[T constraints.Float](o Options, sh shape.Shape, st Storage[T]) *Order {
	if o.policy != Fast || sh.Rank() == 0 {
		return nil
	}
	switch {
	case st.Structure != nil:
		o.logger.Debug("fast order ignored for structured destination",
			zap.Stringer("kind", st.Structure.Kind()))
		return nil
	case o.cache == nil:
		o.logger.Debug("fast order requested without cache; using natural order",
			zap.Stringer("shape", sh))
		return nil
	}
	ord, ok := o.cache.Lookup(sh)
	if !ok {
		o.logger.Debug("fast order not generated for shape; using natural order",
			zap.Stringer("shape", sh))
		return nil
	}

	return ord
}

// hazard reports whether some operand reads the destination's storage
// through a different mapping.
func hazard[T constraints.Float](df expr.Footprint, e expr.Expr[T]) bool {
	for _, op := range expr.Operands(e) {
		of := op.Footprint()
		if of.Overlaps(df) && !of.SameMapping(df) {
			return true
		}
	}

	return false
}

// run performs the single fused pass over st.
func run[T constraints.Float](st Storage[T], sh shape.Shape, ord *Order, e expr.Expr[T]) {
	switch {
	case st.Structure != nil:
		runStructured(st, e)
	case ord != nil:
		runOrder(st, ord, e)
	default:
		runNatural(st, sh.Extents(), e)
	}
}

// runNatural walks row-major, advancing the physical offset incrementally.
func runNatural[T constraints.Float](st Storage[T], ext []int, e expr.Expr[T]) {
	data, strides := st.Data, st.Strides
	rank := len(ext)
	pos := make([]int, rank)
	if rank == 0 {
		data[st.Base] = e.At(pos)
		return
	}
	inner := rank - 1
	n, step := ext[inner], strides[inner]
	off := st.Base
	for {
		o := off
		for k := 0; k < n; k++ {
			pos[inner] = k
			data[o] = e.At(pos)
			o += step
		}
		pos[inner] = 0

		d := inner - 1
		for ; d >= 0; d-- {
			pos[d]++
			off += strides[d]
			if pos[d] < ext[d] {
				break
			}
			off -= pos[d] * strides[d]
			pos[d] = 0
		}
		if d < 0 {
			return
		}
	}
}

// runOrder walks the cached run list.
func runOrder[T constraints.Float](st Storage[T], ord *Order, e expr.Expr[T]) {
	data, strides := st.Data, st.Strides
	rank := len(ord.ext)
	inner := rank - 1
	step := strides[inner]
	pos := make([]int, rank)
	for r, n := range ord.lens {
		copy(pos, ord.starts[r*rank:(r+1)*rank])
		off := st.Base
		for d, p := range pos {
			off += p * strides[d]
		}
		first := pos[inner]
		for k := 0; k < n; k++ {
			pos[inner] = first + k
			data[off] = e.At(pos)
			off += step
		}
	}
}

// runStructured writes every stored slot in the structure's own order.
func runStructured[T constraints.Float](st Storage[T], e expr.Expr[T]) {
	pos := make([]int, 2)
	for it := st.Structure.Iterator(); it.Valid(); it.Next() {
		pos[0], pos[1] = it.Row(), it.Col()
		st.Data[it.Offset()] = e.At(pos)
	}
}

// scratchFor allocates a private generation with the same addressing model.
func scratchFor[T constraints.Float](st Storage[T], sh shape.Shape) Storage[T] {
	if st.Structure != nil {
		return Storage[T]{Data: make([]T, st.Structure.NumElements()), Structure: st.Structure}
	}
	ext := sh.Extents()

	return Storage[T]{Data: make([]T, sh.Size()), Strides: shape.RowMajorStrides(ext)}
}

// commit copies a scratch generation into the destination.
func commit[T constraints.Float](dst, scratch Storage[T], sh shape.Shape) {
	if dst.Structure != nil {
		for it := dst.Structure.Iterator(); it.Valid(); it.Next() {
			dst.Data[it.Offset()] = scratch.Data[it.Offset()]
		}
		return
	}
	z, _ := shape.New(sh.Extents()...)
	pos, zero := make([]int, sh.Rank()), make([]int, sh.Rank())
	i := 0
	for ok := z.First(pos); ok; ok = z.Next(pos) {
		dst.Data[shape.Offset(dst.Base, dst.Strides, zero, pos)] = scratch.Data[i]
		i++
	}
}
