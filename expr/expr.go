// SPDX-License-Identifier: MIT

// Package expr - Expr contract, operand leaves, constants and index nodes.
//
// Purpose:
//   - Expr is the single evaluation contract: At(pos) for one element,
//     Shape() for the conformance walk, String() for diagnostics.
//   - Operand is what a leaf needs from an array: its shape, an unchecked
//     load at a relative position and a Footprint for alias analysis.
//
// Determinism:
//   - Nodes are immutable after construction; the same tree evaluated at the
//     same position always returns the same value (given unchanged operands).

package expr

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvarray/shape"
	"golang.org/x/exp/constraints"
)

// Expr is a lazily evaluated element-wise expression.
// The interface is sealed: only this package defines node kinds.
type Expr[T constraints.Float] interface {
	// At evaluates the expression at a destination-relative position.
	At(pos []int) T
	// Shape returns the shape of the first operand under the node, or false
	// when the node broadcasts (constants, index nodes).
	Shape() (shape.Shape, bool)
	String() string

	children() []Expr[T]
}

// Operand is a readable N-dimensional source, typically an array or a view.
type Operand[T constraints.Float] interface {
	Shape() shape.Shape
	// Load reads the element at a zero-based position relative to the
	// operand's own lower bounds. No bounds checks in unchecked builds.
	Load(pos []int) T
	// Footprint describes where the operand's elements live.
	Footprint() Footprint
	// Err reports an operand that can no longer be read (released storage).
	Err() error
}

// Footprint identifies the physical storage behind an operand.
//   - Owner is a comparable identity of the underlying buffer (nil if none).
//   - Base/Strides give the strided mapping; Strides is nil for structured
//     (layout-mapped) operands, whose mapping is fixed by the owner.
//   - Lo/Hi bound the buffer offsets the operand can touch.
type Footprint struct {
	Owner   any
	Base    int
	Strides []int
	Lo, Hi  int
}

// SameMapping reports whether two footprints address every relative position
// through the same buffer slot.
func (f Footprint) SameMapping(o Footprint) bool {
	if f.Owner != o.Owner || f.Base != o.Base || len(f.Strides) != len(o.Strides) {
		return false
	}
	for d := range f.Strides {
		if f.Strides[d] != o.Strides[d] {
			return false
		}
	}

	return true
}

// Overlaps reports whether two footprints can touch a common buffer slot.
func (f Footprint) Overlaps(o Footprint) bool {
	if f.Owner == nil || f.Owner != o.Owner {
		return false
	}

	return f.Lo <= o.Hi && o.Lo <= f.Hi
}

// constNode broadcasts a scalar.
type constNode[T constraints.Float] struct {
	v T
}

// Const returns a scalar broadcast to every position.
func Const[T constraints.Float](v T) Expr[T] { return constNode[T]{v: v} }

func (n constNode[T]) At([]int) T                 { return n.v }
func (n constNode[T]) Shape() (shape.Shape, bool) { return shape.Shape{}, false }
func (n constNode[T]) children() []Expr[T]        { return nil }
func (n constNode[T]) String() string {
	return strconv.FormatFloat(float64(n.v), 'g', -1, 64)
}

// refNode is an operand leaf. The operand is referenced, never copied.
type refNode[T constraints.Float] struct {
	op Operand[T]
}

// Ref wraps an operand as an expression leaf.
func Ref[T constraints.Float](op Operand[T]) Expr[T] { return refNode[T]{op: op} }

func (n refNode[T]) At(pos []int) T             { return n.op.Load(pos) }
func (n refNode[T]) Shape() (shape.Shape, bool) { return n.op.Shape(), true }
func (n refNode[T]) children() []Expr[T]        { return nil }
func (n refNode[T]) String() string {
	if s, ok := n.op.(fmt.Stringer); ok {
		return s.String()
	}

	return "A" + n.op.Shape().String()
}

// indexNode yields one coordinate of the evaluation position.
type indexNode[T constraints.Float] struct {
	dim int
}

// Index returns the node whose value at pos is pos[dim].
// Panics on a negative dim; dims past the destination rank are reported by
// Conform.
func Index[T constraints.Float](dim int) Expr[T] {
	if dim < 0 {
		panic(fmt.Sprintf("expr.Index: negative dimension %d", dim))
	}

	return indexNode[T]{dim: dim}
}

// I, J and K are the index nodes of dimensions 0, 1 and 2.
func I[T constraints.Float]() Expr[T] { return indexNode[T]{dim: 0} }
func J[T constraints.Float]() Expr[T] { return indexNode[T]{dim: 1} }
func K[T constraints.Float]() Expr[T] { return indexNode[T]{dim: 2} }

func (n indexNode[T]) At(pos []int) T             { return T(pos[n.dim]) }
func (n indexNode[T]) Shape() (shape.Shape, bool) { return shape.Shape{}, false }
func (n indexNode[T]) children() []Expr[T]        { return nil }
func (n indexNode[T]) String() string {
	if n.dim < 3 {
		return string("ijk"[n.dim])
	}

	return "idx" + strconv.Itoa(n.dim)
}

// firstShape returns the first operand shape found among xs.
func firstShape[T constraints.Float](xs ...Expr[T]) (shape.Shape, bool) {
	for _, x := range xs {
		if x == nil {
			continue
		}
		if s, ok := x.Shape(); ok {
			return s, true
		}
	}

	return shape.Shape{}, false
}
