// SPDX-License-Identifier: MIT
// Package traverse: sentinel error set.
// Messages are prefixed with "traverse: ...". Conformance failures surface
// as expr.ErrShapeMismatch wrapped with the destination shape.

package traverse

import "errors"

var (
	// ErrNilDestination indicates a nil destination handed to Assign.
	ErrNilDestination = errors.New("traverse: nil destination")

	// ErrNotPermutation indicates a visitation order that skips or repeats a
	// position of its shape.
	ErrNotPermutation = errors.New("traverse: order is not a permutation")
)
