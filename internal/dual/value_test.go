package dual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/dualgrad/internal/dual"
	"github.com/born-ml/dualgrad/internal/session"
)

// declare creates the named independent variables, in order, in a fresh
// session with the given capacity.
func declare(t *testing.T, capacity int, names []string, values []float64) (*session.Session, []*dual.Value) {
	t.Helper()
	require.Len(t, values, len(names))

	s := session.New()
	vars := make([]*dual.Value, len(names))
	for i, name := range names {
		opts := []dual.Option{dual.WithValue(values[i])}
		if i == 0 {
			opts = append(opts, dual.WithCapacity(capacity))
		}
		v, err := dual.NewVariable(s, name, opts...)
		require.NoError(t, err)
		vars[i] = v
	}
	return s, vars
}

func TestNewVariable(t *testing.T) {
	s := session.New()

	x, err := dual.NewVariable(s, "x", dual.WithValue(2.0), dual.WithCapacity(2))
	require.NoError(t, err)
	y, err := dual.NewVariable(s, "y", dual.WithValue(3.0))
	require.NoError(t, err)
	c := dual.Constant(s, 1.5)

	assert.Equal(t, 2.0, x.Value())
	assert.Equal(t, []float64{1, 0}, x.Gradient())
	slot, ok := x.Slot()
	assert.True(t, ok)
	assert.Equal(t, 0, slot)
	assert.Equal(t, "x", x.Name())

	assert.Equal(t, 3.0, y.Value())
	assert.Equal(t, []float64{0, 1}, y.Gradient())
	slot, ok = y.Slot()
	assert.True(t, ok)
	assert.Equal(t, 1, slot)

	assert.Equal(t, 1.5, c.Value())
	assert.Equal(t, []float64{0, 0}, c.Gradient())
	assert.False(t, c.IsIndependent())
	assert.Equal(t, "", c.Name())
	slot, ok = c.Slot()
	assert.False(t, ok)
	assert.Equal(t, -1, slot)

	assert.Equal(t, 2, s.Capacity())
	assert.Equal(t, 2, s.Count())
	assert.Same(t, s, c.Session())
}

func TestNewVariable_ZeroIsAValue(t *testing.T) {
	s := session.New()

	x, err := dual.NewVariable(s, "x", dual.WithValue(0), dual.WithCapacity(1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, x.Value())
	assert.Equal(t, []float64{1}, x.Gradient())
}

func TestNewVariable_MissingValue(t *testing.T) {
	s := session.New()

	_, err := dual.NewVariable(s, "x", dual.WithCapacity(2))
	require.ErrorIs(t, err, dual.ErrMissingValue)
	assert.Equal(t, 0, s.Count(), "nothing may be registered")
	assert.Equal(t, 0, s.Capacity(), "capacity must stay unset")
}

func TestNewVariable_CapacityConflict(t *testing.T) {
	s := session.New()
	_, err := dual.NewVariable(s, "x", dual.WithValue(1), dual.WithCapacity(2))
	require.NoError(t, err)

	_, err = dual.NewVariable(s, "y", dual.WithValue(1), dual.WithCapacity(2))
	require.NoError(t, err, "same capacity again is fine")

	s2 := session.New()
	_, err = dual.NewVariable(s2, "x", dual.WithValue(1), dual.WithCapacity(2))
	require.NoError(t, err)
	_, err = dual.NewVariable(s2, "y", dual.WithValue(1), dual.WithCapacity(3))
	require.ErrorIs(t, err, session.ErrCapacityFixed)
	assert.Equal(t, 1, s2.Count())
}

func TestNewVariable_CapacityExceeded(t *testing.T) {
	s, _ := declare(t, 2, []string{"x", "y"}, []float64{1, 2})

	_, err := dual.NewVariable(s, "z", dual.WithValue(3))
	require.ErrorIs(t, err, session.ErrCapacityExceeded)
	assert.Equal(t, []string{"x", "y"}, s.Names())
}

func TestSet(t *testing.T) {
	s, vars := declare(t, 1, []string{"x"}, []float64{1})
	x := vars[0]

	require.NoError(t, x.Set(5))
	assert.Equal(t, 5.0, x.Value())
	assert.Equal(t, []float64{1}, x.Gradient())

	c := dual.Constant(s, 2)
	require.ErrorIs(t, c.Set(3), dual.ErrNotIndependent)
	assert.Equal(t, 2.0, c.Value())

	sum := x.Add(c)
	require.ErrorIs(t, sum.Set(3), dual.ErrNotIndependent)
}

func TestGrad_Errors(t *testing.T) {
	s, vars := declare(t, 2, []string{"x", "y"}, []float64{1, 2})
	x := vars[0]
	f := x.Mul(vars[1])

	_, err := f.Grad(nil)
	require.ErrorIs(t, err, dual.ErrTypeMismatch)

	_, err = f.Grad(dual.Constant(s, 1))
	require.ErrorIs(t, err, dual.ErrNotIndependent)

	_, err = f.Grad(f)
	require.ErrorIs(t, err, dual.ErrNotIndependent)

	_, other := declare(t, 2, []string{"x", "y"}, []float64{1, 2})
	_, err = f.Grad(other[0])
	require.ErrorIs(t, err, dual.ErrTypeMismatch)

	assert.Panics(t, func() { f.MustGrad(nil) })
}

func TestGrad_ConstantBuiltBeforeCapacity(t *testing.T) {
	s := session.New()
	c := dual.Constant(s, 4)
	x, err := dual.NewVariable(s, "x", dual.WithValue(1), dual.WithCapacity(1))
	require.NoError(t, err)

	_, err = c.Grad(x)
	require.ErrorIs(t, err, session.ErrSlotOutOfRange)
}

func TestGradient_ReturnsCopy(t *testing.T) {
	_, vars := declare(t, 1, []string{"x"}, []float64{1})

	g := vars[0].Gradient()
	g[0] = 99

	assert.Equal(t, []float64{1}, vars[0].Gradient())
}
