package array_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvarray/array"
	"github.com/katalvlaran/lvarray/expr"
	"github.com/katalvlaran/lvarray/shape"
)

// sinkF keeps results observable so the compiler cannot drop the loops.
var sinkF float64

var benchSizes = []int{1 << 6, 1 << 10, 1 << 14}

// randomArray returns a length-n view at the given offset into an owner of
// length n+pad, filled with deterministic random values.
func randomArray(b *testing.B, r *rand.Rand, n, offset, pad int) *array.Array[float64] {
	b.Helper()
	owner, err := array.New[float64](n + pad)
	if err != nil {
		b.Fatal(err)
	}
	if err := owner.Assign(expr.Map("rand", func(float64) float64 { return r.Float64() }, expr.I[float64]())); err != nil {
		b.Fatal(err)
	}
	if pad == 0 {
		return owner
	}
	v, err := owner.Slice(shape.R(offset, offset+n-1))
	if err != nil {
		b.Fatal(err)
	}

	return v
}

type operands struct {
	a, b, c, d, x, y *array.Array[float64]
}

func newOperands(b *testing.B, n, offset, pad int) operands {
	r := rand.New(rand.NewSource(int64(n)))
	return operands{
		a: randomArray(b, r, n, offset, pad),
		b: randomArray(b, r, n, offset, pad),
		c: randomArray(b, r, n, offset, pad),
		d: randomArray(b, r, n, offset, pad),
		x: randomArray(b, r, n, offset, pad),
		y: randomArray(b, r, n, offset, pad),
	}
}

// loop13: x = a+b+c+d; y = u+d.
func benchLoop13(b *testing.B, offset, pad int) {
	const u = 0.39123982498157938742
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			o := newOperands(b, n, offset, pad)
			ex := expr.Sum(o.a.Expr(), o.b.Expr(), o.c.Expr(), o.d.Expr())
			ey := expr.Add(expr.Const(u), o.d.Expr())
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := o.x.Assign(ex); err != nil {
					b.Fatal(err)
				}
				if err := o.y.Assign(ey); err != nil {
					b.Fatal(err)
				}
			}
			sinkF, _ = o.x.At(n - 1 + o.x.Shape().Lower(0))
		})
	}
}

func BenchmarkLoop13(b *testing.B)           { benchLoop13(b, 0, 0) }
func BenchmarkLoop13Unaligned(b *testing.B)  { benchLoop13(b, 1, 1) }
func BenchmarkLoop13Misaligned(b *testing.B) { benchLoop13(b, 2, 5) }

// BenchmarkLoop13Index builds x from index expressions instead of reads.
func BenchmarkLoop13Index(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			o := newOperands(b, n, 0, 0)
			i := expr.I[float64]()
			ex := expr.Add(expr.Add(o.a.Expr(), expr.Mul(i, expr.Const(0.5))), o.d.Expr())
			b.ResetTimer()
			for k := 0; k < b.N; k++ {
				if err := o.x.Assign(ex); err != nil {
					b.Fatal(err)
				}
			}
			sinkF, _ = o.x.At(0)
		})
	}
}

// loop100: x = (1-c*c)/((4*w)*sin(1+c*c-2*v*c))*a*b*u*exp(-z*d), scalars u,v,w,z.
func loop100Expr(o operands) expr.Expr[float64] {
	const s = 0.39123982498157938742
	u, v, w, z := expr.Const(s), expr.Const(s), expr.Const(s), expr.Const(s)
	c := o.c.Expr()
	cc := expr.Mul(c, c)
	num := expr.Sub(expr.Const(1.0), cc)
	den := expr.Mul(expr.Mul(expr.Const(4.0), w),
		expr.Sin(expr.Sub(expr.Add(expr.Const(1.0), cc), expr.Mul(expr.Mul(expr.Const(2.0), v), c))))

	return expr.Product(expr.Div(num, den), o.a.Expr(), o.b.Expr(), u,
		expr.Exp(expr.Mul(expr.Neg(z), o.d.Expr())))
}

func benchLoop100(b *testing.B, offset, pad int) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			o := newOperands(b, n, offset, pad)
			ex := loop100Expr(o)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := o.x.Assign(ex); err != nil {
					b.Fatal(err)
				}
			}
			sinkF, _ = o.x.At(o.x.Shape().Lower(0))
		})
	}
}

func BenchmarkLoop100(b *testing.B)           { benchLoop100(b, 0, 0) }
func BenchmarkLoop100Unaligned(b *testing.B)  { benchLoop100(b, 1, 1) }
func BenchmarkLoop100Misaligned(b *testing.B) { benchLoop100(b, 2, 5) }

// BenchmarkLoop100Handwritten is the plain-slice baseline the fused
// expression is measured against.
func BenchmarkLoop100Handwritten(b *testing.B) {
	const s = 0.39123982498157938742
	u, v, w, z := s, s, s, s
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			o := newOperands(b, n, 0, 0)
			a, bb, c, d, x := o.a.Storage().Data, o.b.Storage().Data, o.c.Storage().Data, o.d.Storage().Data, o.x.Storage().Data
			b.ResetTimer()
			for k := 0; k < b.N; k++ {
				for i := range x {
					x[i] = (1 - c[i]*c[i]) / ((4 * w) * math.Sin(1+c[i]*c[i]-2*v*c[i])) * a[i] * bb[i] * u * math.Exp(-z*d[i])
				}
			}
			sinkF = x[0]
		})
	}
}
