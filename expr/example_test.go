package expr_test

import (
	"fmt"

	"github.com/katalvlaran/lvarray/expr"
	"github.com/katalvlaran/lvarray/shape"
)

// ExampleConform shows that building a tree never checks shapes; the check
// runs against a destination right before assignment.
func ExampleConform() {
	a := newVec(make([]float64, 4), 4)
	b := newVec(make([]float64, 5), 5)
	e := expr.Add(expr.Ref[float64](a), expr.Ref[float64](b))

	fmt.Println(e)
	fmt.Println(expr.Conform(shape.MustNew(4), e) != nil)
	// Output:
	// (A(4) + A(5))
	// true
}

// ExampleI evaluates a Gaussian bump built from index nodes.
func ExampleI() {
	ci := expr.Const(2.0)
	g := expr.Exp(expr.Neg(expr.Pow2(expr.Sub(expr.I[float64](), ci))))
	for i := 0; i < 5; i++ {
		fmt.Printf("%.4f ", g.At([]int{i}))
	}
	fmt.Println()
	// Output:
	// 0.0183 0.3679 1.0000 0.3679 0.0183
}
