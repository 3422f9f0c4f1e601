package dual_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/dualgrad/internal/dual"
)

func TestReport_Dependent(t *testing.T) {
	_, v := declare(t, 2, []string{"x", "y"}, []float64{2, 3})

	var buf bytes.Buffer
	require.NoError(t, v[0].Mul(v[1]).Report(&buf))

	assert.Equal(t, "f = 6\ndf/dx = 3\ndf/dy = 2\n", buf.String())
}

func TestReport_Independent(t *testing.T) {
	_, v := declare(t, 2, []string{"x", "y"}, []float64{2, 3.5})

	var buf bytes.Buffer
	require.NoError(t, v[1].Report(&buf))

	assert.Equal(t, "y = 3.5\ndy/dx = 0\ndy/dy = 1\n", buf.String())
}

func TestReport_OnlyDeclaredVariables(t *testing.T) {
	s, v := declare(t, 3, []string{"x"}, []float64{1.5})

	var buf bytes.Buffer
	require.NoError(t, dual.Constant(s, 0.25).Add(v[0]).Report(&buf))

	assert.Equal(t, "f = 1.75\ndf/dx = 1\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestReport_WriterError(t *testing.T) {
	_, v := declare(t, 1, []string{"x"}, []float64{1})

	require.Error(t, v[0].Report(failingWriter{}))
}

func TestString(t *testing.T) {
	_, v := declare(t, 2, []string{"x", "y"}, []float64{2, 4})

	assert.Equal(t, "(0.5, [0.25 -0.125])", v[0].Div(v[1]).String())
}
