package dual

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// chain returns the value v whose gradient is d * a.grad.
func chain(a *Value, v, d float64) *Value {
	out := a.fresh()
	out.value = v
	floats.ScaleTo(out.grad, d, a.grad)
	return out
}

// Sin returns sin(a).
//
//	d(sin a) = cos(a) * da
func Sin(a *Value) *Value {
	return chain(a, math.Sin(a.value), math.Cos(a.value))
}

// Cos returns cos(a).
//
//	d(cos a) = -sin(a) * da
func Cos(a *Value) *Value {
	return chain(a, math.Cos(a.value), -math.Sin(a.value))
}

// Tan returns tan(a).
//
//	d(tan a) = da / cos²(a)
func Tan(a *Value) *Value {
	c := math.Cos(a.value)
	return chain(a, math.Tan(a.value), 1/(c*c))
}

// Sinh returns sinh(a).
func Sinh(a *Value) *Value {
	return chain(a, math.Sinh(a.value), math.Cosh(a.value))
}

// Cosh returns cosh(a).
func Cosh(a *Value) *Value {
	return chain(a, math.Cosh(a.value), math.Sinh(a.value))
}

// Tanh returns tanh(a).
//
//	d(tanh a) = da / cosh²(a)
func Tanh(a *Value) *Value {
	c := math.Cosh(a.value)
	return chain(a, math.Tanh(a.value), 1/(c*c))
}

// Asin returns asin(a). NaN outside [-1, 1].
//
//	d(asin a) = da / sqrt(1 - a²)
func Asin(a *Value) *Value {
	return chain(a, math.Asin(a.value), 1/math.Sqrt(1-a.value*a.value))
}

// Acos returns acos(a). NaN outside [-1, 1].
//
//	d(acos a) = -da / sqrt(1 - a²)
func Acos(a *Value) *Value {
	return chain(a, math.Acos(a.value), -1/math.Sqrt(1-a.value*a.value))
}

// Atan returns atan(a).
//
//	d(atan a) = da / (1 + a²)
func Atan(a *Value) *Value {
	return chain(a, math.Atan(a.value), 1/(1+a.value*a.value))
}

// Asinh returns asinh(a), evaluated as log(a + sqrt(1 + a²)).
//
//	d(asinh a) = da / sqrt(1 + a²)
func Asinh(a *Value) *Value {
	r := math.Sqrt(1 + a.value*a.value)
	return chain(a, math.Log(a.value+r), 1/r)
}

// Sqrt returns sqrt(a). NaN for negative a.
//
//	d(sqrt a) = 0.5 * da / sqrt(a)
func Sqrt(a *Value) *Value {
	r := math.Sqrt(a.value)
	return chain(a, r, 0.5/r)
}

// Exp returns e**a.
func Exp(a *Value) *Value {
	e := math.Exp(a.value)
	return chain(a, e, e)
}

// Log returns the natural logarithm of a. NaN or -Inf for a <= 0.
//
//	d(log a) = da / a
func Log(a *Value) *Value {
	return chain(a, math.Log(a.value), 1/a.value)
}
