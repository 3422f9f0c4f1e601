package dual

// Comparisons look at the scalar part only; gradients are ignored.
//
// NotEqual, GreaterEq and Greater are the negations of Equal, Less and
// LessEq. With a NaN operand this makes NotEqual, GreaterEq and Greater all
// report true.

// Less reports a < b.
func (a *Value) Less(b Operand) bool {
	bv, _ := b.operand()
	return a.value < bv
}

// LessEq reports a <= b.
func (a *Value) LessEq(b Operand) bool {
	bv, _ := b.operand()
	return a.value <= bv
}

// Equal reports a == b.
func (a *Value) Equal(b Operand) bool {
	bv, _ := b.operand()
	return a.value == bv
}

// NotEqual is !Equal.
func (a *Value) NotEqual(b Operand) bool {
	return !a.Equal(b)
}

// GreaterEq is !Less.
func (a *Value) GreaterEq(b Operand) bool {
	return !a.Less(b)
}

// Greater is !LessEq.
func (a *Value) Greater(b Operand) bool {
	return !a.LessEq(b)
}
