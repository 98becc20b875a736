// Package array binds storage to a shape and evaluates expressions into it.
//
// 🚀 What is array?
//
//	Array[T] is an N-dimensional container over a flat buffer. It is either
//	strided (dense row-major when owning, arbitrary base and strides for
//	views) or structured: a 2-D array whose slots are placed by a
//	layout.Structure such as Symmetric or Banded. Arrays are the leaves of
//	expression trees (Expr) and the destinations of fused assignment
//	(Assign), which visits every position once with no temporaries.
//
// ✨ Key features
//
//	New / NewShaped / NewStructured / FromSlice  owning arrays
//	Slice / View / Reindex                       zero-copy views
//	Release + Pool                               deterministic buffer reuse
//	At / Set                                     checked element access
//	Assign / Fill / Eval                         fused evaluation
//
// ⚠️ Lifetime
//
//	Views share the owner's buffer. Release on the owner hands the buffer
//	back to its Pool (if any); every later use of the owner or of any view
//	fails with ErrDanglingView. Release on a view does nothing.
//
// ⚙️ Concurrency
//
//	Arrays are not synchronized. Concurrent reads are safe; concurrent
//	mutation of one buffer must be serialized by the caller.
package array
