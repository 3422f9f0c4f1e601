// Package dual implements forward-mode automatic differentiation over
// dense gradient vectors.
//
// A Value pairs a float64 with its partial derivatives with respect to every
// independent variable declared in a session.Session. Arithmetic and
// elementary functions propagate that pair with the usual calculus rules, so
// the gradient of a composite expression is available as soon as its value is.
//
// Three kinds of Value exist:
//   - independent variables (NewVariable): gradient is the unit vector of
//     their slot
//   - constants (Constant): zero gradient
//   - results of operators and functions: always dependent, never own a slot
//
// Example:
//
//	s := session.New()
//	x, _ := dual.NewVariable(s, "x", dual.WithValue(2), dual.WithCapacity(2))
//	y, _ := dual.NewVariable(s, "y", dual.WithValue(3))
//
//	f := x.Mul(y).Add(dual.Sin(x)) // x*y + sin(x)
//	dfdx, _ := f.Grad(x)           // y + cos(x)
//
// Numeric domain violations (log of a negative number, division by zero)
// are not errors. They surface as NaN or ±Inf in the value and gradient.
package dual

import (
	"fmt"

	"github.com/born-ml/dualgrad/internal/session"
)

// notIndependent marks a Value that owns no gradient slot.
const notIndependent = -1

// Value is a scalar together with its gradient.
type Value struct {
	sess  *session.Session
	value float64
	grad  []float64
	slot  int
}

// Operand is the right-hand side of an operator or comparison.
//
// It is implemented by *Value and Scalar only.
type Operand interface {
	// operand returns the scalar part and, for dual operands, the operand itself.
	operand() (float64, *Value)
}

// Scalar is a plain constant used as an operand without a gradient.
type Scalar float64

func (k Scalar) operand() (float64, *Value) { return float64(k), nil }

func (a *Value) operand() (float64, *Value) { return a.value, a }

// Option configures NewVariable.
type Option func(*variableConfig)

type variableConfig struct {
	value    float64
	hasValue bool
	capacity int
}

// WithValue sets the initial value of a new independent variable.
//
// It is required; zero is a valid value.
func WithValue(v float64) Option {
	return func(c *variableConfig) {
		c.value = v
		c.hasValue = true
	}
}

// WithCapacity fixes the session capacity before the variable is declared.
//
// It only has to be given for the first variable of a session. Later calls
// must agree with the capacity already fixed.
func WithCapacity(n int) Option {
	return func(c *variableConfig) {
		c.capacity = n
	}
}

// NewVariable declares a new independent variable in s.
//
// The variable gets the next free slot, and its gradient is the unit vector
// of that slot. On error nothing is registered in the session.
func NewVariable(s *session.Session, name string, opts ...Option) (*Value, error) {
	var cfg variableConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.hasValue {
		return nil, fmt.Errorf("%w: variable %q", ErrMissingValue, name)
	}
	if cfg.capacity != 0 {
		if err := s.SetCapacity(cfg.capacity); err != nil {
			return nil, fmt.Errorf("declare %q: %w", name, err)
		}
	}

	slot, err := s.Declare(name)
	if err != nil {
		return nil, fmt.Errorf("declare %q: %w", name, err)
	}

	v := &Value{
		sess:  s,
		value: cfg.value,
		grad:  make([]float64, s.Capacity()),
		slot:  slot,
	}
	v.grad[slot] = 1.0
	return v, nil
}

// Constant returns a dependent value with a zero gradient.
//
// The gradient is sized to the capacity of s at the time of the call, so
// constants should be created after the capacity has been fixed.
func Constant(s *session.Session, v float64) *Value {
	return &Value{
		sess:  s,
		value: v,
		grad:  make([]float64, s.Capacity()),
		slot:  notIndependent,
	}
}

// fresh returns the zero result every operator starts from: zero value,
// zero gradient of the same length as a, no slot.
func (a *Value) fresh() *Value {
	return &Value{
		sess: a.sess,
		grad: make([]float64, len(a.grad)),
		slot: notIndependent,
	}
}

// Set re-seeds the value of an independent variable.
//
// The gradient is left untouched.
func (a *Value) Set(v float64) error {
	if a.slot == notIndependent {
		return fmt.Errorf("set %g: %w", v, ErrNotIndependent)
	}
	a.value = v
	return nil
}

// Value returns the scalar part.
func (a *Value) Value() float64 {
	return a.value
}

// Gradient returns a copy of the gradient vector.
func (a *Value) Gradient() []float64 {
	out := make([]float64, len(a.grad))
	copy(out, a.grad)
	return out
}

// Slot returns the slot of an independent variable.
func (a *Value) Slot() (int, bool) {
	return a.slot, a.slot != notIndependent
}

// IsIndependent reports whether a is a declared independent variable.
func (a *Value) IsIndependent() bool {
	return a.slot != notIndependent
}

// Name returns the declared name of an independent variable, or "" for
// dependent values.
func (a *Value) Name() string {
	if a.slot == notIndependent {
		return ""
	}
	name, err := a.sess.NameOf(a.slot)
	if err != nil {
		return ""
	}
	return name
}

// Session returns the session a was built against.
func (a *Value) Session() *session.Session {
	return a.sess
}

// Grad returns the partial derivative of a with respect to the independent
// variable wrt.
func (a *Value) Grad(wrt *Value) (float64, error) {
	if wrt == nil {
		return 0, fmt.Errorf("%w: nil value", ErrTypeMismatch)
	}
	if wrt.sess != a.sess {
		return 0, fmt.Errorf("%w: value from session %s, variable from session %s",
			ErrTypeMismatch, a.sess.ID(), wrt.sess.ID())
	}
	if wrt.slot == notIndependent {
		return 0, fmt.Errorf("gradient: %w", ErrNotIndependent)
	}
	if wrt.slot >= len(a.grad) {
		return 0, fmt.Errorf("gradient of length %d: %w: %d",
			len(a.grad), session.ErrSlotOutOfRange, wrt.slot)
	}
	return a.grad[wrt.slot], nil
}

// MustGrad is like Grad but panics on error.
func (a *Value) MustGrad(wrt *Value) float64 {
	g, err := a.Grad(wrt)
	if err != nil {
		panic(fmt.Sprintf("dual: %v", err))
	}
	return g
}

// mustShare panics when a and b were built against different sessions.
func (a *Value) mustShare(b *Value) {
	if a.sess != b.sess {
		panic(fmt.Sprintf("dual: operands belong to different sessions (%s and %s)",
			a.sess.ID(), b.sess.ID()))
	}
	if len(a.grad) != len(b.grad) {
		panic(fmt.Sprintf("dual: gradient lengths do not match (%d and %d)", len(a.grad), len(b.grad)))
	}
}
