// Package stencil is a 3-D acoustic wave solver built on fused array
// expressions.
//
// What & Why:
//
//	The solver keeps three pressure generations P1 (previous), P2 (current)
//	and P3 (next) over an N×N×N grid plus a velocity field c. Each step
//	updates the interior of P3 from a seven-point neighborhood of P2:
//
//	  P3 = (2 - 6c)·P2 + c·(P2[i±1] + P2[j±1] + P2[k±1]) - P1
//
//	The neighbors are shifted views of P2, so the whole update is a single
//	fused traversal with no temporaries. Generations then cycle
//	(P1←P2, P2←P3, P3←P1) without copying: the solver only rotates roles.
//
// Traversal:
//
//	By default the interior is walked in the cached fast order (tiled over
//	the two outer dimensions), generated once at construction.
//
// Snapshots:
//
//	Snapshots is explicit caller state: it counts steps and, every Every
//	steps, hands a quantized mid-plane Frame to a callback. Nothing is
//	written to disk.
package stencil
