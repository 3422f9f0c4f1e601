// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides forward-mode automatic differentiation for scalar
// functions of a few variables.
//
// # Overview
//
// A Value carries a float64 together with its partial derivatives with
// respect to every independent variable of its Session. Operators and
// elementary functions propagate both, so the gradient of an expression is
// known as soon as its value is. There is no tape and no backward pass.
//
// # Basic Usage
//
//	import "github.com/born-ml/dualgrad/dual"
//
//	func main() {
//	    s := dual.NewSession(dual.SessionCapacity(2))
//
//	    x, _ := dual.NewVariable(s, "x", dual.WithValue(2))
//	    y, _ := dual.NewVariable(s, "y", dual.WithValue(3))
//
//	    f := x.Mul(y).Add(x) // xy + x
//	    f.Report(os.Stdout)
//	    // f = 8
//	    // df/dx = 4
//	    // df/dy = 2
//	}
//
// # Sessions
//
// The number of independent variables (the capacity) is fixed once per
// Session, either up front with SessionCapacity or by the first NewVariable
// call that passes WithCapacity. Values of different sessions must not be
// combined; doing so panics.
//
// # Operands
//
// Binary operators accept any Operand: another *Value or a plain Scalar.
//
//	g := x.Mul(dual.Scalar(3)).Sub(y) // 3x - y
//	h := x.SubFrom(1)                 // 1 - x
//
// # Generic Expressions
//
// Functions written against Algebra run on float64 (Reals) and on dual
// values (Duals) without runtime dispatch:
//
//	func booth[T any](m dual.Algebra[T], x, y T) T {
//	    a := m.Sub(m.Add(x, m.Mul(m.Const(2), y)), m.Const(7))
//	    b := m.Sub(m.Add(m.Mul(m.Const(2), x), y), m.Const(5))
//	    return m.Add(m.Mul(a, a), m.Mul(b, b))
//	}
//
// # Domain Errors
//
// Operations outside a function's domain (log of a negative number,
// division by zero) never fail. They produce NaN or ±Inf following IEEE-754.
package dual
