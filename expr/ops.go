// SPDX-License-Identifier: MIT

// Package expr - unary and binary operator nodes.
//
// Implementation:
//   - Each operator is a small enum value; the node stores the operator and
//     its children and applies the operator in At.
//   - Transcendental functions go through float64 (math package) and are
//     converted back to T; float32 trees therefore round once per node.

package expr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvarray/shape"
	"golang.org/x/exp/constraints"
)

// UnaryOp enumerates the element-wise unary operators.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpAbs
	OpSqrt
	OpExp
	OpLog
	OpSin
	OpCos
	OpTan
	OpPow2
	OpPow3
)

var unaryNames = [...]string{
	OpNeg: "-", OpAbs: "abs", OpSqrt: "sqrt", OpExp: "exp", OpLog: "log",
	OpSin: "sin", OpCos: "cos", OpTan: "tan", OpPow2: "pow2", OpPow3: "pow3",
}

func (op UnaryOp) String() string {
	if op < 0 || int(op) >= len(unaryNames) {
		return fmt.Sprintf("UnaryOp(%d)", int(op))
	}

	return unaryNames[op]
}

// BinaryOp enumerates the element-wise binary operators.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMin
	OpMax
)

var binaryNames = [...]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/",
	OpPow: "pow", OpMin: "min", OpMax: "max",
}

func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binaryNames) {
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}

	return binaryNames[op]
}

func applyUnary[T constraints.Float](op UnaryOp, x T) T {
	switch op {
	case OpNeg:
		return -x
	case OpAbs:
		if x < 0 {
			return -x
		}
		return x
	case OpSqrt:
		return T(math.Sqrt(float64(x)))
	case OpExp:
		return T(math.Exp(float64(x)))
	case OpLog:
		return T(math.Log(float64(x)))
	case OpSin:
		return T(math.Sin(float64(x)))
	case OpCos:
		return T(math.Cos(float64(x)))
	case OpTan:
		return T(math.Tan(float64(x)))
	case OpPow2:
		return x * x
	case OpPow3:
		return x * x * x
	default:
		panic(fmt.Sprintf("expr: unknown %v", op))
	}
}

func applyBinary[T constraints.Float](op BinaryOp, x, y T) T {
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpDiv:
		return x / y
	case OpPow:
		return T(math.Pow(float64(x), float64(y)))
	case OpMin:
		return min(x, y)
	case OpMax:
		return max(x, y)
	default:
		panic(fmt.Sprintf("expr: unknown %v", op))
	}
}

type unaryNode[T constraints.Float] struct {
	op UnaryOp
	x  Expr[T]
}

// Unary applies op element-wise to x.
func Unary[T constraints.Float](op UnaryOp, x Expr[T]) Expr[T] {
	return unaryNode[T]{op: op, x: x}
}

func (n unaryNode[T]) At(pos []int) T             { return applyUnary(n.op, n.x.At(pos)) }
func (n unaryNode[T]) Shape() (shape.Shape, bool) { return n.x.Shape() }
func (n unaryNode[T]) children() []Expr[T]        { return []Expr[T]{n.x} }
func (n unaryNode[T]) String() string {
	if n.op == OpNeg {
		return "-" + n.x.String()
	}

	return n.op.String() + "(" + n.x.String() + ")"
}

func Neg[T constraints.Float](x Expr[T]) Expr[T]  { return Unary(OpNeg, x) }
func Abs[T constraints.Float](x Expr[T]) Expr[T]  { return Unary(OpAbs, x) }
func Sqrt[T constraints.Float](x Expr[T]) Expr[T] { return Unary(OpSqrt, x) }
func Exp[T constraints.Float](x Expr[T]) Expr[T]  { return Unary(OpExp, x) }
func Log[T constraints.Float](x Expr[T]) Expr[T]  { return Unary(OpLog, x) }
func Sin[T constraints.Float](x Expr[T]) Expr[T]  { return Unary(OpSin, x) }
func Cos[T constraints.Float](x Expr[T]) Expr[T]  { return Unary(OpCos, x) }
func Tan[T constraints.Float](x Expr[T]) Expr[T]  { return Unary(OpTan, x) }
func Pow2[T constraints.Float](x Expr[T]) Expr[T] { return Unary(OpPow2, x) }
func Pow3[T constraints.Float](x Expr[T]) Expr[T] { return Unary(OpPow3, x) }

type binaryNode[T constraints.Float] struct {
	op   BinaryOp
	x, y Expr[T]
}

// Binary applies op element-wise to x and y. Two operands combined here must
// have identical extents at assignment time; constants broadcast.
func Binary[T constraints.Float](op BinaryOp, x, y Expr[T]) Expr[T] {
	return binaryNode[T]{op: op, x: x, y: y}
}

func (n binaryNode[T]) At(pos []int) T {
	return applyBinary(n.op, n.x.At(pos), n.y.At(pos))
}

func (n binaryNode[T]) Shape() (shape.Shape, bool) { return firstShape(n.x, n.y) }
func (n binaryNode[T]) children() []Expr[T]        { return []Expr[T]{n.x, n.y} }
func (n binaryNode[T]) String() string {
	switch n.op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return "(" + n.x.String() + " " + n.op.String() + " " + n.y.String() + ")"
	default:
		return n.op.String() + "(" + n.x.String() + ", " + n.y.String() + ")"
	}
}

func Add[T constraints.Float](x, y Expr[T]) Expr[T] { return Binary(OpAdd, x, y) }
func Sub[T constraints.Float](x, y Expr[T]) Expr[T] { return Binary(OpSub, x, y) }
func Mul[T constraints.Float](x, y Expr[T]) Expr[T] { return Binary(OpMul, x, y) }
func Div[T constraints.Float](x, y Expr[T]) Expr[T] { return Binary(OpDiv, x, y) }
func Pow[T constraints.Float](x, y Expr[T]) Expr[T] { return Binary(OpPow, x, y) }
func Min[T constraints.Float](x, y Expr[T]) Expr[T] { return Binary(OpMin, x, y) }
func Max[T constraints.Float](x, y Expr[T]) Expr[T] { return Binary(OpMax, x, y) }
