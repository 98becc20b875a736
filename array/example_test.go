package array_test

import (
	"fmt"

	"github.com/katalvlaran/lvarray/array"
	"github.com/katalvlaran/lvarray/expr"
	"github.com/katalvlaran/lvarray/layout"
	"github.com/katalvlaran/lvarray/shape"
	"github.com/katalvlaran/lvarray/traverse"
)

// ExampleArray_Assign evaluates a whole-array expression in one pass.
func ExampleArray_Assign() {
	a, _ := array.FromSlice([]float64{1, 2, 3, 4, 5}, 5)
	b, _ := array.FromSlice([]float64{5, 4, 3, 2, 1}, 5)
	x, _ := array.New[float64](5)

	if err := x.Assign(expr.Add(a.Expr(), b.Expr())); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(x.Dump())
	// Output:
	// [6, 6, 6, 6, 6]
}

// ExampleNewStructured stores a symmetric matrix in packed form.
func ExampleNewStructured() {
	s, _ := layout.NewSymmetric(3, 3)
	m := array.NewStructured[float64](s)
	_ = m.Assign(expr.Add(expr.I[float64](), expr.J[float64]()))

	fmt.Println(m, "stores", len(m.Storage().Data), "values")
	fmt.Print(m.Dump())
	// Output:
	// Symmetric(3x3) stores 6 values
	// [0, 1, 2]
	// [1, 2, 3]
	// [2, 3, 4]
}

// ExampleArray_Slice runs a one-dimensional three-point stencil over the
// interior through shifted views of the same input.
func ExampleArray_Slice() {
	p, _ := array.FromSlice([]float64{0, 0, 1, 0, 0}, 5)
	out, _ := array.New[float64](5)

	inner, _ := out.Slice(shape.R(1, 3))
	left, _ := p.Slice(shape.R(0, 2))
	mid, _ := p.Slice(shape.R(1, 3))
	right, _ := p.Slice(shape.R(2, 4))
	lap := expr.Sum(left.Expr(), expr.Mul(expr.Const(-2.0), mid.Expr()), right.Expr())

	cache := traverse.NewCache(0)
	cache.Generate(inner.Shape())
	_ = inner.Assign(lap, traverse.WithPolicy(traverse.Fast), traverse.WithCache(cache))
	fmt.Print(out.Dump())
	// Output:
	// [0, 1, -2, 1, 0]
}
