// SPDX-License-Identifier: MIT
// Package expr: sentinel error set.
// Messages are prefixed with "expr: ...". Conform aggregates one wrapped
// ErrShapeMismatch per offending node; errors.Is matches the aggregate.

package expr

import "errors"

var (
	// ErrShapeMismatch indicates an operand whose extents differ from the
	// destination, or an index node addressing a dimension the destination
	// does not have.
	ErrShapeMismatch = errors.New("expr: shape mismatch")

	// ErrNilExpr indicates a nil expression handed to Conform or a traversal.
	ErrNilExpr = errors.New("expr: nil expression")
)
