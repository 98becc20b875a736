package array_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvarray/array"
	"github.com/katalvlaran/lvarray/expr"
	"github.com/katalvlaran/lvarray/internal/check"
	"github.com/katalvlaran/lvarray/layout"
	"github.com/katalvlaran/lvarray/shape"
	"github.com/stretchr/testify/require"
)

func mustFromSlice(t testing.TB, data []float64, extents ...int) *array.Array[float64] {
	t.Helper()
	a, err := array.FromSlice(data, extents...)
	require.NoError(t, err)

	return a
}

func mustData(t testing.TB, a *array.Array[float64]) []float64 {
	t.Helper()
	d, err := a.Data()
	require.NoError(t, err)

	return d
}

func ramp(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

// TestAssignSum covers x = a + b over a 1-D array of length 5.
func TestAssignSum(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5}, 5)
	b := mustFromSlice(t, []float64{5, 4, 3, 2, 1}, 5)
	x, err := array.New[float64](5)
	require.NoError(t, err)

	require.NoError(t, x.Assign(expr.Add(a.Expr(), b.Expr())))
	require.Equal(t, []float64{6, 6, 6, 6, 6}, mustData(t, x))
}

// TestAssignSelfInPlace covers a = a + b where a aliases itself through the
// same mapping.
func TestAssignSelfInPlace(t *testing.T) {
	a := mustFromSlice(t, ramp(12, 1, 1), 3, 4)
	b := mustFromSlice(t, ramp(12, 100, -3), 3, 4)
	old := mustData(t, a)

	require.NoError(t, a.Assign(expr.Add(a.Expr(), b.Expr())))

	got := mustData(t, a)
	bd := mustData(t, b)
	for p := range got {
		require.Equal(t, old[p]+bd[p], got[p])
	}
}

// TestAssignShiftedAliasUsesOldGeneration writes a[1:] from a[:-1]; reading
// through a shifted mapping must see only old values.
func TestAssignShiftedAliasUsesOldGeneration(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 1, 1, 1, 1, 1}, 6)
	left, err := a.Slice(shape.R(1, 5))
	require.NoError(t, err)
	right, err := a.Slice(shape.R(0, 4))
	require.NoError(t, err)

	require.NoError(t, left.Assign(expr.Mul(right.Expr(), expr.Const(2.0))))
	require.Equal(t, []float64{1, 2, 2, 2, 2, 2}, mustData(t, a))
}

// TestMisalignedViewMatchesOwner compares a view at offset 2 of a length N+5
// buffer with a directly allocated array of the same content.
func TestMisalignedViewMatchesOwner(t *testing.T) {
	const n = 17
	backing := mustFromSlice(t, ramp(n+5, -2, 0.5), n+5)
	view, err := backing.View(2, []int{1}, n)
	require.NoError(t, err)
	direct := mustFromSlice(t, ramp(n, -1, 0.5), n)
	require.True(t, array.Equal(view, direct))

	b := mustFromSlice(t, ramp(n, 3, 0.25), n)
	e := func(src *array.Array[float64]) expr.Expr[float64] {
		return expr.Div(expr.Mul(src.Expr(), b.Expr()), expr.Add(expr.Const(2.0), expr.Sin(src.Expr())))
	}
	x1, err := array.Eval(e(view))
	require.NoError(t, err)
	x2, err := array.Eval(e(direct))
	require.NoError(t, err)
	require.True(t, array.Equal(x1, x2))

	// Writing through the view lands in the backing buffer only.
	require.NoError(t, view.Assign(expr.Add(view.Expr(), b.Expr())))
	require.NoError(t, direct.Assign(expr.Add(direct.Expr(), b.Expr())))
	require.True(t, array.Equal(view, direct))
	first, err := backing.At(0)
	require.NoError(t, err)
	require.Equal(t, -2.0, first)
}

// TestZeroExtentIsNoOp checks assignment and traversal over empty shapes.
func TestZeroExtentIsNoOp(t *testing.T) {
	for _, ext := range [][]int{{0}, {3, 0}, {0, 4, 2}} {
		a, err := array.New[float64](ext...)
		require.NoError(t, err)
		b, err := array.New[float64](ext...)
		require.NoError(t, err)

		require.NoError(t, a.Assign(expr.Add(b.Expr(), expr.Const(1.0))))
		require.NoError(t, a.Fill(7))
		require.Empty(t, mustData(t, a))
		visits := 0
		require.NoError(t, a.Do(func([]int, float64) bool { visits++; return true }))
		require.Zero(t, visits)
	}
}

// TestShapeMismatchAtAssignment checks that errors surface only on Assign.
func TestShapeMismatchAtAssignment(t *testing.T) {
	a, _ := array.New[float64](4)
	b, _ := array.New[float64](5)
	x, _ := array.New[float64](4)
	e := expr.Add(a.Expr(), b.Expr()) // construction is shape-agnostic

	require.ErrorIs(t, x.Assign(e), array.ErrShapeMismatch)
	require.ErrorIs(t, x.Assign(expr.J[float64]()), array.ErrShapeMismatch)
	require.ErrorIs(t, x.Assign(expr.Add(a.Expr(), nil)), expr.ErrNilExpr)
}

// TestLayoutErrorsMatchThroughArray checks the re-exported layout sentinels.
func TestLayoutErrorsMatchThroughArray(t *testing.T) {
	_, err := layout.NewSymmetric(2, 3)
	require.ErrorIs(t, err, array.ErrNonSquare)
	require.NotErrorIs(t, err, array.ErrShapeMismatch)

	_, err = layout.New(layout.KindBanded, 2, 2)
	require.ErrorIs(t, err, array.ErrUnknownKind)
}

// TestSymmetricRoundTrip writes every stored coordinate and reads the mirror.
func TestSymmetricRoundTrip(t *testing.T) {
	const n = 5
	s, err := layout.NewSymmetric(n, n)
	require.NoError(t, err)
	a := array.NewStructured[float64](s)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			require.NoError(t, a.Set(float64(10*i+j), i, j))
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			v, err := a.At(j, i)
			require.NoError(t, err)
			require.Equal(t, float64(10*i+j), v)
		}
	}
}

// TestSymmetric3x3Scenario pins storage order and the folded read of (0,2).
func TestSymmetric3x3Scenario(t *testing.T) {
	s, err := layout.NewSymmetric(3, 3)
	require.NoError(t, err)
	a := array.NewStructured[float64](s)
	writes := []struct {
		i, j int
		v    float64
	}{{0, 0, 1}, {1, 0, 2}, {1, 1, 3}, {2, 0, 4}, {2, 1, 5}, {2, 2, 6}}
	for _, w := range writes {
		require.NoError(t, a.Set(w.v, w.i, w.j))
	}
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.Storage().Data)

	v, err := a.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
	require.Equal(t, []float64{1, 2, 4, 2, 3, 5, 4, 5, 6}, mustData(t, a))
}

// TestStructuredAssignment evaluates into and out of packed layouts.
func TestStructuredAssignment(t *testing.T) {
	s, err := layout.NewSymmetric(3, 3)
	require.NoError(t, err)
	sym := array.NewStructured[float64](s)
	require.NoError(t, sym.Assign(expr.Add(expr.Mul(expr.I[float64](), expr.Const(10.0)), expr.J[float64]())))
	require.Equal(t, []float64{0, 10, 11, 20, 21, 22}, sym.Storage().Data)

	dense, err := array.New[float64](3, 3)
	require.NoError(t, err)
	require.NoError(t, dense.Assign(sym.Expr()))
	require.Equal(t, []float64{0, 10, 20, 10, 11, 21, 20, 21, 22}, mustData(t, dense))

	// In-place update of a packed array through its own mapping.
	require.NoError(t, sym.Assign(expr.Neg(sym.Expr())))
	require.Equal(t, []float64{0, -10, -11, -20, -21, -22}, sym.Storage().Data)
}

// TestNonStoredCoordinates checks implicit zeros and rejected writes.
func TestNonStoredCoordinates(t *testing.T) {
	d, err := layout.NewDiagonal(3, 3)
	require.NoError(t, err)
	a := array.NewStructured[float64](d)
	require.NoError(t, a.Fill(2))

	v, err := a.At(0, 1)
	require.NoError(t, err)
	require.Zero(t, v)
	require.ErrorIs(t, a.Set(1, 0, 1), array.ErrInvalidCoordinate)
	require.Equal(t, []float64{2, 0, 0, 0, 2, 0, 0, 0, 2}, mustData(t, a))
}

// TestAccessErrors covers the checked accessors.
func TestAccessErrors(t *testing.T) {
	a, err := array.New[float64](2, 3)
	require.NoError(t, err)

	_, err = a.At(2, 0)
	require.ErrorIs(t, err, array.ErrIndexOutOfRange)
	require.ErrorIs(t, a.Set(1, 0, -1), array.ErrIndexOutOfRange)
	_, err = a.At(1)
	require.ErrorIs(t, err, array.ErrRankMismatch)

	_, err = array.New[float64](2, -1)
	require.ErrorIs(t, err, array.ErrBadShape)
	_, err = array.FromSlice([]float64{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, array.ErrSizeMismatch)
}

// TestLoadAssertsInCheckedBuild checks the hot-path precondition.
func TestLoadAssertsInCheckedBuild(t *testing.T) {
	if !check.Enabled {
		t.Skip("assertions compiled out")
	}
	a, _ := array.New[float64](3)
	require.Panics(t, func() { a.Load([]int{3}) })
	require.Panics(t, func() { a.Load([]int{0, 0}) })
}

// TestReleaseInvalidatesViews checks the owner/view lifetime rule.
func TestReleaseInvalidatesViews(t *testing.T) {
	a := mustFromSlice(t, ramp(6, 0, 1), 6)
	v, err := a.Slice(shape.R(1, 3))
	require.NoError(t, err)
	x, _ := array.New[float64](3)

	v.Release() // no-op on a view
	require.NoError(t, v.Err())

	a.Release()
	a.Release()
	_, err = v.At(1)
	require.ErrorIs(t, err, array.ErrDanglingView)
	require.ErrorIs(t, v.Fill(1), array.ErrDanglingView)
	require.ErrorIs(t, x.Assign(v.Expr()), array.ErrDanglingView)
	_, err = a.Slice(shape.All())
	require.ErrorIs(t, err, array.ErrDanglingView)
	_, err = v.Data()
	require.ErrorIs(t, err, array.ErrDanglingView)
	require.False(t, array.Equal(v, v))
}

// TestPoolReuse checks that released buffers come back zeroed.
func TestPoolReuse(t *testing.T) {
	p := array.NewPool[float64]()
	sh := shape.MustNew(4, 4)

	a := array.NewShaped(sh, array.WithPool(p))
	require.NoError(t, a.Fill(3))
	a.Release()

	b := array.NewShaped(sh, array.WithPool(p))
	require.Equal(t, make([]float64, 16), mustData(t, b))
	require.Panics(t, func() { array.WithPool[float64](nil) })
}

// TestSliceAndReindex covers sub-array views and lower bounds.
func TestSliceAndReindex(t *testing.T) {
	a := mustFromSlice(t, ramp(12, 0, 1), 3, 4)
	sub, err := a.Slice(shape.R(1, 2), shape.R(1, 3))
	require.NoError(t, err)
	require.True(t, sub.IsView())
	require.Equal(t, []float64{5, 6, 7, 9, 10, 11}, mustData(t, sub))

	v, err := sub.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v, "slices keep the owner's lower bounds")

	r, err := a.Reindex(1, 1)
	require.NoError(t, err)
	v, err = r.At(1, 1)
	require.NoError(t, err)
	require.Zero(t, v)
	_, err = r.At(0, 0)
	require.ErrorIs(t, err, array.ErrIndexOutOfRange)

	// A reindexed destination still conforms position by position.
	require.NoError(t, r.Assign(expr.Mul(a.Expr(), expr.Const(2.0))))
	require.Equal(t, ramp(12, 0, 2), mustData(t, a))

	_, err = a.Slice(shape.R(0, 3), shape.All())
	require.ErrorIs(t, err, array.ErrIndexOutOfRange)
	_, err = a.Slice(shape.All())
	require.ErrorIs(t, err, array.ErrRankMismatch)

	empty, err := a.Slice(shape.R(2, 1), shape.All())
	require.NoError(t, err)
	require.Zero(t, empty.Size())
}

// TestViewStrides covers explicit offset/stride windows.
func TestViewStrides(t *testing.T) {
	a := mustFromSlice(t, ramp(10, 0, 1), 10)

	evens, err := a.View(0, []int{2}, 5)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2, 4, 6, 8}, mustData(t, evens))

	rev, err := a.View(9, []int{-1}, 10)
	require.NoError(t, err)
	require.Equal(t, ramp(10, 9, -1), mustData(t, rev))

	grid, err := a.View(1, []int{3, 1}, 3, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 4, 5, 7, 8}, mustData(t, grid))

	_, err = a.View(6, []int{1}, 5)
	require.ErrorIs(t, err, array.ErrIndexOutOfRange)
	_, err = a.View(0, []int{1, 1}, 5)
	require.ErrorIs(t, err, array.ErrRankMismatch)

	s, _ := layout.NewSymmetric(2, 2)
	_, err = array.NewStructured[float64](s).View(0, []int{1}, 1)
	require.ErrorIs(t, err, array.ErrStructuredView)
}

// TestReversedViewSelfAssignment reverses an array in place; the reversed
// mapping overlaps the destination and must read the old generation.
func TestReversedViewSelfAssignment(t *testing.T) {
	a := mustFromSlice(t, ramp(7, 1, 1), 7)
	rev, err := a.View(6, []int{-1}, 7)
	require.NoError(t, err)
	require.NoError(t, a.Assign(rev.Expr()))
	require.Equal(t, ramp(7, 7, -1), mustData(t, a))
}

// TestEval covers materialization and shape inference.
func TestEval(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 4, 9}, 3)
	r, err := array.Eval(expr.Sqrt(a.Expr()))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, mustData(t, r))

	_, err = array.Eval(expr.Const(1.0))
	require.ErrorIs(t, err, array.ErrNoShape)
	_, err = array.Eval(expr.Add(a.Expr(), nil))
	require.ErrorIs(t, err, expr.ErrNilExpr)
}

// TestCloneAndCompare covers Clone, Equal, AllClose, String and Dump.
func TestCloneAndCompare(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, 2, 2)
	c, err := a.Clone()
	require.NoError(t, err)
	require.True(t, array.Equal(a, c))
	require.NoError(t, c.Set(4.0000001, 1, 1))
	require.False(t, array.Equal(a, c))

	ok, err := array.AllClose(a, c, 0, 1e-6)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = array.AllClose(a, c, 0, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	nan := mustFromSlice(t, []float64{math.NaN(), 2}, 2)
	ref := mustFromSlice(t, []float64{1, 2}, 2)
	ok, err = array.AllClose(nan, ref, 1e-9, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = array.AllClose(nan, nan, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)
	inf := mustFromSlice(t, []float64{math.Inf(1), math.Inf(-1)}, 2)
	ok, err = array.AllClose(inf, inf, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = array.AllClose(a, c, 0, math.Inf(1))
	require.ErrorIs(t, err, array.ErrBadTolerance)
	other, _ := array.New[float64](4)
	_, err = array.AllClose(a, other, 0, 0)
	require.ErrorIs(t, err, array.ErrShapeMismatch)

	require.Equal(t, "Array(2x2)", a.String())
	require.Equal(t, "[1, 2]\n[3, 4]\n", a.Dump())

	s, _ := layout.NewSymmetric(2, 2)
	sym := array.NewStructured[float64](s)
	require.NoError(t, sym.Set(5, 1, 0))
	sc, err := sym.Clone()
	require.NoError(t, err)
	require.Equal(t, "Symmetric(2x2)", sc.String())
	require.True(t, array.Equal(sym, sc))
}
