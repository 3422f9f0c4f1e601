package dual

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Pow returns a ** b.
//
// With a Scalar exponent k the power rule is used:
//
//	d(a^k) = k * a^(k-1) * da
//
// With a dual exponent the general rule is used:
//
//	d(a^b) = a^b * ((b/a)*da + ln(a)*db)
//
// The general rule needs a > 0 for ln(a) to be defined. Bases that may be
// zero or negative have to be raised to a Scalar exponent.
func (a *Value) Pow(b Operand) *Value {
	bv, bd := b.operand()
	out := a.fresh()
	out.value = math.Pow(a.value, bv)
	if bd == nil {
		floats.ScaleTo(out.grad, bv*math.Pow(a.value, bv-1), a.grad)
		return out
	}
	a.mustShare(bd)
	floats.ScaleTo(out.grad, out.value*bv/a.value, a.grad)
	floats.AddScaled(out.grad, out.value*math.Log(a.value), bd.grad)
	return out
}
