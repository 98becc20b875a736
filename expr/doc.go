// Package expr builds lazy, fused element-wise expressions over arrays.
//
// 🚀 What is expr?
//
//	An Expr is an immutable tree describing how to compute one element of a
//	result from the same position of its operands. Nothing is evaluated
//	while the tree is built: x := Mul(Sub(One, Mul(c, c)), Add(a, b)) only
//	records the operations. A traversal later walks the destination once and
//	calls At(pos) on the root, so an arbitrarily deep tree still costs a
//	single pass and no temporary arrays.
//
// ✨ Node kinds
//
//	Const      scalar broadcast to every position
//	Ref        leaf reading an Operand (arrays implement Operand)
//	Unary      Neg Abs Sqrt Exp Log Sin Cos Tan Pow2 Pow3
//	Binary     Add Sub Mul Div Pow Min Max
//	Index      the position component of a dimension (I, J, K)
//	Map        user supplied scalar function
//	Where      element-wise select on a non-zero condition
//	Sum/Product variadic folds
//
// ⚙️ Positions
//
//	At receives destination-relative, zero-based coordinates. Operands are
//	matched position by position relative to their own lower bounds, and an
//	Index node yields the zero-based coordinate of its dimension.
//
// 🛡️ Conformance
//
//	Construction never looks at shapes. Conform(dst, e) runs right before
//	assignment and reports every operand whose extents differ from dst and
//	every Index node past dst's rank, aggregated with go.uber.org/multierr.
package expr
