// SPDX-License-Identifier: MIT

package shape

// RowMajorStrides returns the dense row-major strides for extents:
// stride[d] = product of extents after d, stride[rank-1] = 1.
// Complexity: O(rank).
func RowMajorStrides(extents []int) []int {
	strides := make([]int, len(extents))
	acc := 1
	for d := len(extents) - 1; d >= 0; d-- {
		strides[d] = acc
		acc *= extents[d]
	}

	return strides
}

// Offset computes base + Σ (pos[d]-lower[d])*strides[d].
// No bounds checks: callers validate pos with Shape.Check first.
func Offset(base int, strides, lower, pos []int) int {
	off := base
	for d, p := range pos {
		off += (p - lower[d]) * strides[d]
	}

	return off
}

// Offset is the method form of the package Offset for this shape's bounds.
func (s Shape) Offset(base int, strides, pos []int) int {
	return Offset(base, strides, s.lo, pos)
}

// Span returns the smallest and largest buffer offsets reachable from base
// through strides over the shape. For an empty shape it returns (base, base-1).
func (s Shape) Span(base int, strides []int) (lo, hi int) {
	if s.IsEmpty() {
		return base, base - 1
	}
	lo, hi = base, base
	for d, e := range s.ext {
		reach := (e - 1) * strides[d]
		if reach < 0 {
			lo += reach
		} else {
			hi += reach
		}
	}

	return lo, hi
}
