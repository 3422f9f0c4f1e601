package dual

import "gonum.org/v1/gonum/floats"

// Add returns a + b.
//
//	d(a+b) = da + db
func (a *Value) Add(b Operand) *Value {
	bv, bd := b.operand()
	out := a.fresh()
	out.value = a.value + bv
	if bd == nil {
		copy(out.grad, a.grad)
		return out
	}
	a.mustShare(bd)
	floats.AddTo(out.grad, a.grad, bd.grad)
	return out
}

// Sub returns a - b.
//
//	d(a-b) = da - db
func (a *Value) Sub(b Operand) *Value {
	bv, bd := b.operand()
	out := a.fresh()
	out.value = a.value - bv
	if bd == nil {
		copy(out.grad, a.grad)
		return out
	}
	a.mustShare(bd)
	floats.SubTo(out.grad, a.grad, bd.grad)
	return out
}

// SubFrom returns k - a.
func (a *Value) SubFrom(k float64) *Value {
	out := a.fresh()
	out.value = k - a.value
	floats.ScaleTo(out.grad, -1, a.grad)
	return out
}

// Mul returns a * b.
//
//	d(a*b) = a*db + b*da
func (a *Value) Mul(b Operand) *Value {
	bv, bd := b.operand()
	out := a.fresh()
	out.value = a.value * bv
	floats.ScaleTo(out.grad, bv, a.grad)
	if bd == nil {
		return out
	}
	a.mustShare(bd)
	floats.AddScaled(out.grad, a.value, bd.grad)
	return out
}

// Div returns a / b.
//
//	d(a/b) = (b*da - a*db) / b²
//
// A zero divisor is not guarded; the result follows IEEE semantics.
func (a *Value) Div(b Operand) *Value {
	bv, bd := b.operand()
	out := a.fresh()
	out.value = a.value / bv
	if bd == nil {
		for i, g := range a.grad {
			out.grad[i] = g / bv
		}
		return out
	}
	a.mustShare(bd)
	den := bv * bv
	for i, g := range a.grad {
		out.grad[i] = (g*bv - a.value*bd.grad[i]) / den
	}
	return out
}
