// Package lvarray is a lazy, fused, layout-polymorphic array engine:
// whole-array arithmetic is written as an expression tree and evaluated in
// one pass over the destination, with no temporary arrays.
//
// 🚀 What is lvarray?
//
//	x = (1 - c*c)/w * a*b   becomes
//
//	    e := expr.Mul(expr.Div(expr.Sub(one, expr.Mul(c, c)), w), expr.Mul(a, b))
//	    err := x.Assign(e)
//
//	and every element of x is computed once, reading each operand once.
//
// ✨ Key features:
//   - runtime rank with Fortran-style lower bounds and sub-array views
//   - packed storage layouts (symmetric, diagonal, banded, triangular,
//     Toeplitz, sparse) behind a single Structure contract
//   - natural or cached fast (tiled) traversal, bit-identical results
//   - alias-safe assignment: shifted self-reads go through a scratch buffer
//   - index expressions (I, J, K) for coordinate-dependent fills
//
// Under the hood, everything is organized in subpackages:
//
//	shape/     extents, lower bounds, ranges, strided offsets
//	layout/    Structure contract and the packed storage variants
//	expr/      expression nodes, conformance and operand enumeration
//	traverse/  fused assignment, Natural/Fast orders, order cache
//	array/     the Array container, views, pooling, helpers
//	stencil/   3-D acoustic wave solver built on the above
//
// Build with -tags lvarray_nocheck to compile out hot-path assertions.
package lvarray
