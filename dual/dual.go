// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import (
	"github.com/born-ml/dualgrad/internal/dual"
	"github.com/born-ml/dualgrad/internal/session"
)

// Sessions

// Session is the registry of independent variables shared by a set of values.
type Session = session.Session

// SessionOption configures a Session.
type SessionOption = session.Option

// NewSession creates an empty session.
func NewSession(opts ...SessionOption) *Session {
	return session.New(opts...)
}

// SessionCapacity fixes the number of independent variables of a new session.
func SessionCapacity(n int) SessionOption {
	return session.WithCapacity(n)
}

// Values

// Value is a scalar together with its gradient.
type Value = dual.Value

// Operand is a *Value or a Scalar.
type Operand = dual.Operand

// Scalar is a plain number used as an operand.
type Scalar = dual.Scalar

// Option configures NewVariable.
type Option = dual.Option

// WithValue sets the initial value of an independent variable.
func WithValue(v float64) Option {
	return dual.WithValue(v)
}

// WithCapacity fixes the session capacity while declaring a variable.
func WithCapacity(n int) Option {
	return dual.WithCapacity(n)
}

// NewVariable declares an independent variable named name in s.
//
// Example:
//
//	s := dual.NewSession()
//	x, err := dual.NewVariable(s, "x", dual.WithValue(1.5), dual.WithCapacity(1))
func NewVariable(s *Session, name string, opts ...Option) (*Value, error) {
	return dual.NewVariable(s, name, opts...)
}

// Constant creates a value with zero gradient.
func Constant(s *Session, v float64) *Value {
	return dual.Constant(s, v)
}

// Generic expressions

// Algebra is the set of operations an expression needs, over a number type T.
type Algebra[T any] = dual.Algebra[T]

// Reals evaluates an Algebra expression on float64.
type Reals = dual.Reals

// Duals evaluates an Algebra expression on dual values of one session.
type Duals = dual.Duals

// Elementary functions

// Sin returns sin(a).
func Sin(a *Value) *Value { return dual.Sin(a) }

// Cos returns cos(a).
func Cos(a *Value) *Value { return dual.Cos(a) }

// Tan returns tan(a).
func Tan(a *Value) *Value { return dual.Tan(a) }

// Sinh returns sinh(a).
func Sinh(a *Value) *Value { return dual.Sinh(a) }

// Cosh returns cosh(a).
func Cosh(a *Value) *Value { return dual.Cosh(a) }

// Tanh returns tanh(a).
func Tanh(a *Value) *Value { return dual.Tanh(a) }

// Asin returns asin(a).
func Asin(a *Value) *Value { return dual.Asin(a) }

// Acos returns acos(a).
func Acos(a *Value) *Value { return dual.Acos(a) }

// Atan returns atan(a).
func Atan(a *Value) *Value { return dual.Atan(a) }

// Asinh returns asinh(a).
func Asinh(a *Value) *Value { return dual.Asinh(a) }

// Sqrt returns √a.
func Sqrt(a *Value) *Value { return dual.Sqrt(a) }

// Exp returns eᵃ.
func Exp(a *Value) *Value { return dual.Exp(a) }

// Log returns the natural logarithm of a.
func Log(a *Value) *Value { return dual.Log(a) }

// Errors

var (
	// ErrMissingValue is returned when an independent variable has no initial value.
	ErrMissingValue = dual.ErrMissingValue

	// ErrNotIndependent is returned when a derived value is used as a variable.
	ErrNotIndependent = dual.ErrNotIndependent

	// ErrTypeMismatch is returned when Grad is asked about a foreign value.
	ErrTypeMismatch = dual.ErrTypeMismatch

	// ErrCapacityFixed is returned when a session capacity is set twice to
	// different values.
	ErrCapacityFixed = session.ErrCapacityFixed

	// ErrCapacityExceeded is returned when a session has no free slot left.
	ErrCapacityExceeded = session.ErrCapacityExceeded

	// ErrInvalidCapacity is returned for a capacity below one.
	ErrInvalidCapacity = session.ErrInvalidCapacity

	// ErrSlotOutOfRange is returned for a slot the gradient does not cover.
	ErrSlotOutOfRange = session.ErrSlotOutOfRange
)
