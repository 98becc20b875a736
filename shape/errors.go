// SPDX-License-Identifier: MIT
// Package shape: sentinel error set.
// Every message is prefixed with "shape: ..." for easy grepping. Call sites
// wrap these with fmt.Errorf("ctx: %w", ErrX); callers match with errors.Is.

package shape

import "errors"

var (
	// ErrBadShape is returned when extents are negative or the lower-bound
	// vector does not match the rank.
	ErrBadShape = errors.New("shape: invalid shape")

	// ErrIndexOutOfRange indicates that a position lies outside the shape.
	ErrIndexOutOfRange = errors.New("shape: index out of range")

	// ErrRankMismatch indicates that a position or shape has the wrong number
	// of components for the shape it is used with.
	ErrRankMismatch = errors.New("shape: rank mismatch")
)
