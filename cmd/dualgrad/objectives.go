package main

import (
	"math"

	"github.com/born-ml/dualgrad/internal/dual"
	"github.com/born-ml/dualgrad/internal/optim"
	"github.com/born-ml/dualgrad/internal/session"
)

// objective is a built-in test function of two variables.
//
// start, sgdLR and sgdMomentum apply when the configuration leaves the
// start interval or the learning rate unset.
type objective struct {
	name        string
	minimum     [2]float64 // known minimizer
	start       [2]float64 // random start interval [low, high)
	sgdLR       float64
	sgdMomentum float64
	eval        func(m dual.Algebra[*dual.Value], x, y *dual.Value) *dual.Value
}

var objectives = map[string]objective{
	"sphere": {
		name:    "sphere",
		minimum: [2]float64{0, 0},
		start:   [2]float64{-10, 10},
		sgdLR:   optim.DefaultSGDLR,
		eval:    sphere[*dual.Value],
	},
	"booth": {
		name:    "booth",
		minimum: [2]float64{1, 3},
		start:   [2]float64{-10, 10},
		sgdLR:   0.05,
		eval:    booth[*dual.Value],
	},
	// The valley floor has curvature about 0.4 against 1000 across it, so
	// plain descent needs momentum to finish within the default MaxIter.
	// Starts beyond |x| = 2 make the first steps diverge at this rate.
	"rosenbrock": {
		name:        "rosenbrock",
		minimum:     [2]float64{1, 1},
		start:       [2]float64{-2, 2},
		sgdLR:       1e-4,
		sgdMomentum: 0.99,
		eval:        rosenbrock[*dual.Value],
	},
}

// sphere is x² + y².
func sphere[T any](m dual.Algebra[T], x, y T) T {
	return m.Add(m.Mul(x, x), m.Mul(y, y))
}

// booth is (x + 2y - 7)² + (2x + y - 5)².
func booth[T any](m dual.Algebra[T], x, y T) T {
	a := m.Sub(m.Add(x, m.Mul(m.Const(2), y)), m.Const(7))
	b := m.Sub(m.Add(m.Mul(m.Const(2), x), y), m.Const(5))
	return m.Add(m.Mul(a, a), m.Mul(b, b))
}

// rosenbrock is (1 - x)² + 100(y - x²)².
func rosenbrock[T any](m dual.Algebra[T], x, y T) T {
	a := m.Sub(m.Const(1), x)
	b := m.Sub(y, m.PowScalar(x, 2))
	return m.Add(m.Mul(a, a), m.Mul(m.Const(100), m.Mul(b, b)))
}

// bind turns o into an optim.Objective over the dual values of s.
func (o objective) bind(s *session.Session) optim.Objective {
	m := dual.Duals{S: s}
	return func(p []*dual.Value) *dual.Value {
		return o.eval(m, p[0], p[1])
	}
}

// distance returns the Euclidean distance from (x, y) to the known minimizer.
func (o objective) distance(x, y float64) float64 {
	return math.Hypot(x-o.minimum[0], y-o.minimum[1])
}
