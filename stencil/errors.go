// SPDX-License-Identifier: MIT
// Package stencil: sentinel error set.

package stencil

import "errors"

var (
	// ErrBadSize indicates a grid too small to have an interior (N < 3).
	ErrBadSize = errors.New("stencil: grid size must be >= 3")

	// ErrClosed indicates use of a solver after Close.
	ErrClosed = errors.New("stencil: solver closed")
)
