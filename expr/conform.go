// SPDX-License-Identifier: MIT

// Package expr - tree walking, operand enumeration and conformance.
//
// Purpose:
//   - Walk visits nodes depth-first, parents before children, left to right.
//   - Operands lists leaves for alias analysis.
//   - Conform validates a tree against a destination shape right before a
//     traversal; construction never does.

package expr

import (
	"fmt"

	"github.com/katalvlaran/lvarray/shape"
	"go.uber.org/multierr"
	"golang.org/x/exp/constraints"
)

// Walk calls fn for e and then for each descendant. Returning false from fn
// skips the children of that node.
func Walk[T constraints.Float](e Expr[T], fn func(Expr[T]) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, c := range e.children() {
		Walk(c, fn)
	}
}

// Operands returns the operand of every Ref leaf in walk order. An operand
// referenced twice appears twice.
func Operands[T constraints.Float](e Expr[T]) []Operand[T] {
	var out []Operand[T]
	Walk(e, func(n Expr[T]) bool {
		if r, ok := n.(refNode[T]); ok {
			out = append(out, r.op)
		}

		return true
	})

	return out
}

// Conform checks e against a destination of shape dst.
//
// Errors (all violations are collected, not just the first):
//   - ErrNilExpr for a nil e or a nil child anywhere in the tree.
//   - ErrShapeMismatch for every operand whose extents differ from dst and
//     every index node whose dimension is >= dst.Rank().
//   - the operand's own Err() (e.g. a released view).
//
// Complexity: O(nodes * rank).
func Conform[T constraints.Float](dst shape.Shape, e Expr[T]) error {
	if e == nil {
		return fmt.Errorf("expr.Conform%v: %w", dst, ErrNilExpr)
	}
	var err error
	Walk(e, func(n Expr[T]) bool {
		for _, c := range n.children() {
			if c == nil {
				err = multierr.Append(err, fmt.Errorf("expr.Conform: nil child: %w", ErrNilExpr))
			}
		}
		switch v := n.(type) {
		case refNode[T]:
			if opErr := v.op.Err(); opErr != nil {
				err = multierr.Append(err, fmt.Errorf("expr.Conform: operand %v: %w", v, opErr))
				return true
			}
			if s := v.op.Shape(); !s.Conformant(dst) {
				err = multierr.Append(err, fmt.Errorf("expr.Conform: operand %v vs destination %v: %w", s, dst, ErrShapeMismatch))
			}
		case indexNode[T]:
			if v.dim >= dst.Rank() {
				err = multierr.Append(err, fmt.Errorf("expr.Conform: index %v on rank %d: %w", v, dst.Rank(), ErrShapeMismatch))
			}
		}

		return true
	})

	return err
}
