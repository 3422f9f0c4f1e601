package dual

import "gonum.org/v1/gonum/floats"

// Neg returns -a.
func (a *Value) Neg() *Value {
	out := a.fresh()
	out.value = -a.value
	floats.ScaleTo(out.grad, -1, a.grad)
	return out
}

// Abs returns |a|.
//
// The sign test is a < 0 only, so at exactly zero the gradient is passed
// through unchanged.
func (a *Value) Abs() *Value {
	if a.value < 0 {
		return a.Neg()
	}
	out := a.fresh()
	out.value = a.value
	copy(out.grad, a.grad)
	return out
}

// Inv returns 1 / a.
//
//	d(1/a) = -da / a²
func (a *Value) Inv() *Value {
	out := a.fresh()
	out.value = 1 / a.value
	floats.ScaleTo(out.grad, -1/(a.value*a.value), a.grad)
	return out
}
