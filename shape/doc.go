// Package shape describes N-dimensional extents, multi-index positions and
// strided addressing. It is the leaf dependency of lvarray.
//
// 🚀 What is a Shape?
//
//	An ordered tuple of per-dimension extents, each with an optional lower
//	bound (Fortran-style base). Rank is fixed when the Shape is built.
//
//	    New(3, 4)                 → rows 0..2, cols 0..3
//	    NewWithBase([]int{1}, 5)  → indices 1..5
//
// ✨ Key features:
//   - zero extents are legal and describe empty arrays
//   - natural (row-major) cursor via First/Next, no allocations per step
//   - Range / All for sub-array selection, resolved against a dimension
//   - RowMajorStrides / Offset for strided buffers with arbitrary base offset
//
// Performance:
//
//   - Next:   amortized O(1) per step
//   - Offset: O(rank)
package shape
