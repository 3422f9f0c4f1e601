// Package optim implements first-order optimizers driven by forward-mode
// gradients.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Gradient descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//   - Minimize: evaluate, read gradients, step, until the gradient vanishes
//
// Parameters are independent dual variables. Optimizers move them with
// dual.Value.Set, so the same variables can be re-evaluated on every
// iteration without declaring new ones.
//
// Example usage:
//
//	s := session.New()
//	x, _ := dual.NewVariable(s, "x", dual.WithValue(3), dual.WithCapacity(2))
//	y, _ := dual.NewVariable(s, "y", dual.WithValue(-4))
//	params := []*dual.Value{x, y}
//
//	sphere := func(p []*dual.Value) *dual.Value {
//	    return p[0].Mul(p[0]).Add(p[1].Mul(p[1]))
//	}
//
//	opt := optim.NewSGD(params, optim.SGDConfig{LR: 0.25})
//	res, err := optim.Minimize(ctx, sphere, params, opt, optim.MinimizeConfig{}, logger)
package optim

import (
	"fmt"

	"github.com/born-ml/dualgrad/internal/dual"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - GetLR: Get current learning rate (for monitoring/scheduling)
//   - SetLR: Change the learning rate
type Optimizer interface {
	// Step applies one update to all parameters.
	//
	// grads[i] is the partial derivative of the objective with respect to
	// the i-th parameter.
	Step(grads []float64) error

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate.
	SetLR(lr float64)
}

// checkStep validates the gradient vector handed to Step.
func checkStep(params []*dual.Value, grads []float64) error {
	if len(grads) != len(params) {
		return fmt.Errorf("%w: %d gradients for %d parameters", ErrGradientLength, len(grads), len(params))
	}
	return nil
}

// move sets param to param.Value() - delta.
func move(i int, param *dual.Value, delta float64) error {
	if err := param.Set(param.Value() - delta); err != nil {
		return fmt.Errorf("parameter %d: %w", i, err)
	}
	return nil
}
