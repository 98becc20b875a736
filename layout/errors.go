// SPDX-License-Identifier: MIT
// Package layout: sentinel error set.
// Messages are prefixed with "layout: ...". Constructors and CoordToOffset
// wrap these with call-site context; match them with errors.Is.

package layout

import "errors"

var (
	// ErrInvalidCoordinate indicates a coordinate outside the logical range of
	// a structure, or inside it but not mapped to physical storage.
	ErrInvalidCoordinate = errors.New("layout: invalid coordinate")

	// ErrShapeMismatch indicates a structure that requires a square shape was
	// given rows != cols.
	ErrShapeMismatch = errors.New("layout: shape mismatch")

	// ErrBadShape indicates negative extents or bandwidths, or a sparse
	// pattern too large to index.
	ErrBadShape = errors.New("layout: invalid shape")

	// ErrUnknownKind is returned by New for kinds that need extra parameters
	// (Banded, Sparse) or are not defined.
	ErrUnknownKind = errors.New("layout: unknown or parameterized kind")
)
