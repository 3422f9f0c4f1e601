package dual

import (
	"math"

	"github.com/born-ml/dualgrad/internal/session"
)

// Algebra is the set of operations an expression needs, over a number type T.
//
// Writing a function once against Algebra lets it be evaluated on plain
// float64 (Reals) or on dual values (Duals) with the implementation picked
// at compile time:
//
//	func sphere[T any](m dual.Algebra[T], x, y T) T {
//	    return m.Add(m.Mul(x, x), m.Mul(y, y))
//	}
//
//	f := sphere[float64](dual.Reals{}, 1, 2)         // 5
//	g := sphere[*dual.Value](dual.Duals{S: s}, x, y) // 5 with gradient [2 4]
type Algebra[T any] interface {
	Const(v float64) T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Pow(a, b T) T
	PowScalar(a T, k float64) T
	Neg(a T) T
	Abs(a T) T

	Sin(a T) T
	Cos(a T) T
	Tan(a T) T
	Sinh(a T) T
	Cosh(a T) T
	Tanh(a T) T
	Asin(a T) T
	Acos(a T) T
	Atan(a T) T
	Asinh(a T) T
	Sqrt(a T) T
	Exp(a T) T
	Log(a T) T
}

// Reals is the Algebra of plain float64 values, backed by package math.
type Reals struct{}

var _ Algebra[float64] = Reals{}

func (Reals) Const(v float64) float64        { return v }
func (Reals) Add(a, b float64) float64       { return a + b }
func (Reals) Sub(a, b float64) float64       { return a - b }
func (Reals) Mul(a, b float64) float64       { return a * b }
func (Reals) Div(a, b float64) float64       { return a / b }
func (Reals) Pow(a, b float64) float64       { return math.Pow(a, b) }
func (Reals) PowScalar(a, k float64) float64 { return math.Pow(a, k) }
func (Reals) Neg(a float64) float64          { return -a }
func (Reals) Abs(a float64) float64          { return math.Abs(a) }
func (Reals) Sin(a float64) float64          { return math.Sin(a) }
func (Reals) Cos(a float64) float64          { return math.Cos(a) }
func (Reals) Tan(a float64) float64          { return math.Tan(a) }
func (Reals) Sinh(a float64) float64         { return math.Sinh(a) }
func (Reals) Cosh(a float64) float64         { return math.Cosh(a) }
func (Reals) Tanh(a float64) float64         { return math.Tanh(a) }
func (Reals) Asin(a float64) float64         { return math.Asin(a) }
func (Reals) Acos(a float64) float64         { return math.Acos(a) }
func (Reals) Atan(a float64) float64         { return math.Atan(a) }
func (Reals) Asinh(a float64) float64        { return math.Asinh(a) }
func (Reals) Sqrt(a float64) float64         { return math.Sqrt(a) }
func (Reals) Exp(a float64) float64          { return math.Exp(a) }
func (Reals) Log(a float64) float64          { return math.Log(a) }

// Duals is the Algebra of dual values of session S.
//
// Pow uses the general dual exponent rule, whose base must be positive.
// PowScalar uses the power rule and accepts any base.
type Duals struct {
	S *session.Session
}

var _ Algebra[*Value] = Duals{}

func (d Duals) Const(v float64) *Value             { return Constant(d.S, v) }
func (Duals) Add(a, b *Value) *Value               { return a.Add(b) }
func (Duals) Sub(a, b *Value) *Value               { return a.Sub(b) }
func (Duals) Mul(a, b *Value) *Value               { return a.Mul(b) }
func (Duals) Div(a, b *Value) *Value               { return a.Div(b) }
func (Duals) Pow(a, b *Value) *Value               { return a.Pow(b) }
func (Duals) PowScalar(a *Value, k float64) *Value { return a.Pow(Scalar(k)) }
func (Duals) Neg(a *Value) *Value                  { return a.Neg() }
func (Duals) Abs(a *Value) *Value                  { return a.Abs() }
func (Duals) Sin(a *Value) *Value                  { return Sin(a) }
func (Duals) Cos(a *Value) *Value                  { return Cos(a) }
func (Duals) Tan(a *Value) *Value                  { return Tan(a) }
func (Duals) Sinh(a *Value) *Value                 { return Sinh(a) }
func (Duals) Cosh(a *Value) *Value                 { return Cosh(a) }
func (Duals) Tanh(a *Value) *Value                 { return Tanh(a) }
func (Duals) Asin(a *Value) *Value                 { return Asin(a) }
func (Duals) Acos(a *Value) *Value                 { return Acos(a) }
func (Duals) Atan(a *Value) *Value                 { return Atan(a) }
func (Duals) Asinh(a *Value) *Value                { return Asinh(a) }
func (Duals) Sqrt(a *Value) *Value                 { return Sqrt(a) }
func (Duals) Exp(a *Value) *Value                  { return Exp(a) }
func (Duals) Log(a *Value) *Value                  { return Log(a) }
