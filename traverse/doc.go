// Package traverse evaluates an expression into a destination in one pass.
//
// 🚀 What is traverse?
//
//	Assign(dst, e) checks e against dst's shape and then visits every
//	destination position exactly once, writing dst[p] = e.At(p). However
//	deep the expression tree, the data is walked once and no intermediate
//	array is built.
//
// ✨ Policies
//
//	Natural  row-major order for strided destinations; the layout's own
//	         iterator for structured (packed) destinations.
//	Fast     a precomputed, tiled run list looked up in a Cache. The list is
//	         a permutation of natural order that depends on the extents
//	         alone, so one Generate call serves every later assignment of
//	         that shape. Results are bit-identical to Natural.
//
// 🧱 Fast order (tiling rule)
//
//	rank 0..1  one run, natural order
//	rank 2     square tiles of TileSize×TileSize, one run per tile row
//	rank >= 3  the two dimensions just outside the innermost are tiled;
//	           each run is a full innermost stripe, so the neighbor reads
//	           of a 3-D stencil (i±1, j±1) stay inside a small working set
//
// 🛡️ Aliasing
//
//	When the destination shares storage with an operand through the same
//	mapping (a = a + b) each position reads its own old value before it is
//	written, so the pass runs in place. When an operand reads the
//	destination's storage through a different mapping (a shifted stencil
//	view) the pass goes to a scratch generation first and is committed
//	afterwards.
package traverse
