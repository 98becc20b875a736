// Package layout maps logical matrix coordinates to physical storage offsets.
//
// What & Why:
//
//	A Structure is a storage policy for a rows×cols matrix: it decides which
//	coordinates own a physical slot, where that slot lives in a flat buffer,
//	and in which order the stored slots are visited. Arrays and expressions
//	are written once against the Structure interface, so a new layout plugs
//	in without touching either.
//
// Variants:
//
//	General          dense row-major, offset = i*cols + j
//	Symmetric        packed lower triangle, (i,j) and (j,i) share a slot
//	Diagonal         only (i,i) stored
//	Banded           kl sub-diagonals and ku super-diagonals, packed by row
//	LowerTriangular  i >= j stored, upper half reads as zero
//	UpperTriangular  i <= j stored, lower half reads as zero
//	Toeplitz         one slot per diagonal (rows+cols-1 values)
//	Sparse           arbitrary pattern, offset = row-major rank in pattern
//
// Symmetric packing, row-major lower order:
//
//	[ 0 1 3 6 ]
//	[ 1 2 4 7 ]
//	[ 3 4 5 8 ]
//	[ 6 7 8 9 ]
//
// Complexity:
//
//	CoordToOffset is O(1) for every dense variant and O(log n) for Sparse.
//	Banded precomputes row starts in O(rows).
package layout
