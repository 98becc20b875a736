// SPDX-License-Identifier: MIT

package expr

import (
	"strings"

	"github.com/katalvlaran/lvarray/shape"
	"golang.org/x/exp/constraints"
)

// foldNode applies one associative operator over n >= 1 terms, left to right.
type foldNode[T constraints.Float] struct {
	op BinaryOp
	xs []Expr[T]
}

// Sum adds every term: Sum(a, b, c, d) is ((a+b)+c)+d.
// Panics when called without terms.
func Sum[T constraints.Float](xs ...Expr[T]) Expr[T] { return fold(OpAdd, xs) }

// Product multiplies every term left to right.
// Panics when called without terms.
func Product[T constraints.Float](xs ...Expr[T]) Expr[T] { return fold(OpMul, xs) }

func fold[T constraints.Float](op BinaryOp, xs []Expr[T]) Expr[T] {
	switch len(xs) {
	case 0:
		panic("expr: fold of zero terms")
	case 1:
		return xs[0]
	}

	return foldNode[T]{op: op, xs: append([]Expr[T](nil), xs...)}
}

func (n foldNode[T]) At(pos []int) T {
	acc := n.xs[0].At(pos)
	for _, x := range n.xs[1:] {
		acc = applyBinary(n.op, acc, x.At(pos))
	}

	return acc
}

func (n foldNode[T]) Shape() (shape.Shape, bool) { return firstShape(n.xs...) }
func (n foldNode[T]) children() []Expr[T]        { return n.xs }
func (n foldNode[T]) String() string {
	parts := make([]string, len(n.xs))
	for i, x := range n.xs {
		parts[i] = x.String()
	}

	return "(" + strings.Join(parts, " "+n.op.String()+" ") + ")"
}

// mapNode applies a caller-supplied scalar function.
type mapNode[T constraints.Float] struct {
	name string
	fn   func(T) T
	x    Expr[T]
}

// Map applies fn element-wise to x. name is used by String only.
// fn must be pure: traversal order is unspecified.
func Map[T constraints.Float](name string, fn func(T) T, x Expr[T]) Expr[T] {
	return mapNode[T]{name: name, fn: fn, x: x}
}

func (n mapNode[T]) At(pos []int) T             { return n.fn(n.x.At(pos)) }
func (n mapNode[T]) Shape() (shape.Shape, bool) { return n.x.Shape() }
func (n mapNode[T]) children() []Expr[T]        { return []Expr[T]{n.x} }
func (n mapNode[T]) String() string             { return n.name + "(" + n.x.String() + ")" }

// whereNode selects between two branches per element.
type whereNode[T constraints.Float] struct {
	cond, a, b Expr[T]
}

// Where evaluates to a where cond is non-zero and to b elsewhere. Only the
// selected branch is evaluated at each position.
func Where[T constraints.Float](cond, a, b Expr[T]) Expr[T] {
	return whereNode[T]{cond: cond, a: a, b: b}
}

func (n whereNode[T]) At(pos []int) T {
	if n.cond.At(pos) != 0 {
		return n.a.At(pos)
	}

	return n.b.At(pos)
}

func (n whereNode[T]) Shape() (shape.Shape, bool) { return firstShape(n.cond, n.a, n.b) }
func (n whereNode[T]) children() []Expr[T]        { return []Expr[T]{n.cond, n.a, n.b} }
func (n whereNode[T]) String() string {
	return "where(" + n.cond.String() + ", " + n.a.String() + ", " + n.b.String() + ")"
}
