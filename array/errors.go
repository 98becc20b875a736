// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
// Messages are prefixed with "array: ...". Errors that originate in the
// shape, layout and expr packages are re-exported here so callers of this
// package can match every failure with errors.Is against one import.

package array

import (
	"errors"

	"github.com/katalvlaran/lvarray/expr"
	"github.com/katalvlaran/lvarray/layout"
	"github.com/katalvlaran/lvarray/shape"
)

var (
	// ErrDanglingView indicates use of an array whose storage was released
	// by its owner.
	ErrDanglingView = errors.New("array: storage released")

	// ErrStructuredView indicates a strided view requested over a structured
	// (layout-mapped) array.
	ErrStructuredView = errors.New("array: strided view of structured array")

	// ErrSizeMismatch indicates a data slice whose length differs from the
	// number of positions of the requested shape.
	ErrSizeMismatch = errors.New("array: data length does not match shape")

	// ErrNoShape indicates Eval of an expression without any operand, whose
	// shape therefore cannot be inferred.
	ErrNoShape = errors.New("array: expression has no operand shape")

	// ErrBadTolerance indicates a NaN or infinite tolerance given to AllClose.
	ErrBadTolerance = errors.New("array: tolerance must be finite")
)

// Errors shared with the lower layers.
var (
	ErrIndexOutOfRange   = shape.ErrIndexOutOfRange
	ErrRankMismatch      = shape.ErrRankMismatch
	ErrBadShape          = shape.ErrBadShape
	ErrInvalidCoordinate = layout.ErrInvalidCoordinate
	ErrShapeMismatch     = expr.ErrShapeMismatch
	ErrNonSquare         = layout.ErrShapeMismatch // square structure given rows != cols
	ErrUnknownKind       = layout.ErrUnknownKind
)
