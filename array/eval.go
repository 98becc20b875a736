// SPDX-License-Identifier: MIT

package array

import (
	"fmt"

	"github.com/katalvlaran/lvarray/expr"
	"github.com/katalvlaran/lvarray/traverse"
	"golang.org/x/exp/constraints"
)

// Expr returns a as an expression leaf. The array is referenced, not copied.
func (a *Array[T]) Expr() expr.Expr[T] { return expr.Ref[T](a) }

// Assign evaluates e into a in one fused pass. See traverse.Assign.
//
// Errors:
//   - ErrDanglingView when a or an operand of e was released.
//   - ErrShapeMismatch (aggregated) when e does not conform to a.
func (a *Array[T]) Assign(e expr.Expr[T], opts ...traverse.Option) error {
	if err := traverse.Assign[T](a, e, opts...); err != nil {
		return fmt.Errorf("Array.Assign: %w", err)
	}

	return nil
}

// Fill sets every stored element to v.
func (a *Array[T]) Fill(v T) error {
	return a.Assign(expr.Const(v))
}

// Eval materializes e into a new dense owning array whose shape is that of
// e's first operand.
//
// Errors:
//   - ErrNoShape when e has no operand.
//   - Any error of Assign.
func Eval[T constraints.Float](e expr.Expr[T], opts ...traverse.Option) (*Array[T], error) {
	if e == nil {
		return nil, fmt.Errorf("array.Eval: %w", expr.ErrNilExpr)
	}
	sh, ok := e.Shape()
	if !ok {
		return nil, fmt.Errorf("array.Eval(%v): %w", e, ErrNoShape)
	}
	out := NewShaped[T](sh)
	if err := out.Assign(e, opts...); err != nil {
		return nil, fmt.Errorf("array.Eval: %w", err)
	}

	return out, nil
}
