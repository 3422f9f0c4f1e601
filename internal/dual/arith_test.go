package dual_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/dualgrad/internal/dual"
	"github.com/born-ml/dualgrad/internal/session"
)

func TestAdd(t *testing.T) {
	_, v := declare(t, 2, []string{"x", "y"}, []float64{2, 3})
	x, y := v[0], v[1]

	sum := x.Add(y)
	assert.Equal(t, 5.0, sum.Value())
	assert.Equal(t, []float64{1, 1}, sum.Gradient())
	assert.False(t, sum.IsIndependent())

	inc := x.Add(dual.Scalar(1))
	assert.Equal(t, 3.0, inc.Value())
	assert.Equal(t, []float64{1, 0}, inc.Gradient())
	assert.False(t, inc.IsIndependent())
}

func TestSub(t *testing.T) {
	_, v := declare(t, 2, []string{"x", "y"}, []float64{2, 3})
	x, y := v[0], v[1]

	diff := x.Sub(y)
	assert.Equal(t, -1.0, diff.Value())
	assert.Equal(t, []float64{1, -1}, diff.Gradient())

	dec := x.Sub(dual.Scalar(1))
	assert.Equal(t, 1.0, dec.Value())
	assert.Equal(t, []float64{1, 0}, dec.Gradient())

	from := x.SubFrom(10)
	assert.Equal(t, 8.0, from.Value())
	assert.Equal(t, []float64{-1, 0}, from.Gradient())
}

func TestMul(t *testing.T) {
	_, v := declare(t, 2, []string{"x", "y"}, []float64{2, 3})
	x, y := v[0], v[1]

	prod := x.Mul(y)
	assert.Equal(t, 6.0, prod.Value())
	assert.Equal(t, 3.0, prod.MustGrad(x))
	assert.Equal(t, 2.0, prod.MustGrad(y))

	scaled := x.Mul(dual.Scalar(3))
	assert.Equal(t, 6.0, scaled.Value())
	assert.Equal(t, []float64{3, 0}, scaled.Gradient())

	square := x.Mul(x)
	assert.Equal(t, 4.0, square.Value())
	assert.Equal(t, []float64{4, 0}, square.Gradient())
}

func TestDiv(t *testing.T) {
	_, v := declare(t, 2, []string{"x", "y"}, []float64{2, 4})
	x, y := v[0], v[1]

	q := x.Div(y)
	assert.Equal(t, 0.5, q.Value())
	assert.Equal(t, 0.25, q.MustGrad(x))
	assert.Equal(t, -0.125, q.MustGrad(y))

	qs := x.Div(dual.Scalar(4))
	assert.Equal(t, 0.5, qs.Value())
	assert.Equal(t, []float64{0.25, 0}, qs.Gradient())
}

func TestDiv_ByZeroFollowsIEEE(t *testing.T) {
	s, v := declare(t, 1, []string{"x"}, []float64{2})
	x := v[0]

	q := x.Div(dual.Scalar(0))
	assert.True(t, math.IsInf(q.Value(), 1))
	assert.True(t, math.IsInf(q.Gradient()[0], 1))

	zero := dual.Constant(s, 0)
	q = x.Div(zero)
	assert.True(t, math.IsInf(q.Value(), 1))
	assert.True(t, math.IsNaN(q.Gradient()[0]))
}

func TestPow_ScalarExponent(t *testing.T) {
	_, v := declare(t, 2, []string{"x", "y"}, []float64{-3, 1})
	x := v[0]

	cube := x.Pow(dual.Scalar(3))
	assert.Equal(t, -27.0, cube.Value())
	assert.Equal(t, []float64{27, 0}, cube.Gradient())

	sq := x.Pow(dual.Scalar(2))
	assert.Equal(t, 9.0, sq.Value())
	assert.Equal(t, -6.0, sq.MustGrad(x))
}

func TestPow_DualExponent(t *testing.T) {
	_, v := declare(t, 2, []string{"a", "b"}, []float64{2, 3})
	a, b := v[0], v[1]

	p := a.Pow(b)
	assert.Equal(t, 8.0, p.Value())
	assert.InDelta(t, 12.0, p.MustGrad(a), 1e-12)
	assert.InDelta(t, 8*math.Ln2, p.MustGrad(b), 1e-12)
}

func TestPow_DualExponentNonPositiveBase(t *testing.T) {
	s, v := declare(t, 1, []string{"a"}, []float64{-2})
	a := v[0]

	p := a.Pow(dual.Constant(s, 2))
	assert.Equal(t, 4.0, p.Value())
	assert.True(t, math.IsNaN(p.Gradient()[0]), "ln of a negative base is NaN")
}

func TestNeg(t *testing.T) {
	_, v := declare(t, 2, []string{"x", "y"}, []float64{2, 3})

	n := v[0].Mul(v[1]).Neg()
	assert.Equal(t, -6.0, n.Value())
	assert.Equal(t, []float64{-3, -2}, n.Gradient())
}

func TestAbs(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
		grad  float64
	}{
		{"negative", -2, 2, -1},
		{"positive", 3, 3, 1},
		{"zero takes positive branch", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, v := declare(t, 1, []string{"x"}, []float64{tt.value})

			a := v[0].Abs()
			assert.Equal(t, tt.want, a.Value())
			assert.Equal(t, []float64{tt.grad}, a.Gradient())
			assert.False(t, a.IsIndependent())
		})
	}
}

func TestInv(t *testing.T) {
	_, v := declare(t, 1, []string{"x"}, []float64{4})

	inv := v[0].Inv()
	assert.Equal(t, 0.25, inv.Value())
	assert.Equal(t, []float64{-0.0625}, inv.Gradient())
}

func TestOperatorsDoNotMutateOperands(t *testing.T) {
	_, v := declare(t, 2, []string{"x", "y"}, []float64{2, 3})
	x, y := v[0], v[1]

	_ = x.Mul(y).Add(x).Div(y).Pow(dual.Scalar(2)).Neg().Abs()

	assert.Equal(t, 2.0, x.Value())
	assert.Equal(t, []float64{1, 0}, x.Gradient())
	assert.Equal(t, 3.0, y.Value())
	assert.Equal(t, []float64{0, 1}, y.Gradient())
}

func TestOperators_MixedSessionsPanic(t *testing.T) {
	_, a := declare(t, 1, []string{"x"}, []float64{1})
	_, b := declare(t, 1, []string{"x"}, []float64{1})

	assert.Panics(t, func() { a[0].Add(b[0]) })
	assert.Panics(t, func() { a[0].Mul(b[0]) })
	assert.Panics(t, func() { a[0].Div(b[0]) })
}

func TestOperators_LengthMismatchPanics(t *testing.T) {
	s := session.New()
	early := dual.Constant(s, 1)
	x, err := dual.NewVariable(s, "x", dual.WithValue(1), dual.WithCapacity(1))
	require.NoError(t, err)

	assert.Panics(t, func() { x.Add(early) })
}

func TestComposite(t *testing.T) {
	// f(x, y) = (x*y + x) / y at x=2, y=4
	// df/dx = (y + 1) / y = 1.25
	// df/dy = -x / y² = -0.125
	_, v := declare(t, 2, []string{"x", "y"}, []float64{2, 4})
	x, y := v[0], v[1]

	f := x.Mul(y).Add(x).Div(y)
	assert.Equal(t, 2.5, f.Value())
	assert.InDelta(t, 1.25, f.MustGrad(x), 1e-15)
	assert.InDelta(t, -0.125, f.MustGrad(y), 1e-15)
}
