package optim

import (
	"fmt"

	"github.com/born-ml/dualgrad/internal/dual"
)

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// With the default learning rate of 0.25 and no momentum every step moves
// each parameter by a quarter of its partial derivative.
//
// Example:
//
//	optimizer := optim.NewSGD(params, optim.SGDConfig{
//	    LR:       0.1,
//	    Momentum: 0.9,
//	})
//
//	for !done {
//	    f := objective(params)
//	    optimizer.Step(gradients(f, params))
//	}
type SGD struct {
	params     []*dual.Value
	lr         float64
	momentum   float64
	velocities []float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.25)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// DefaultSGDLR is the step used when SGDConfig.LR is zero.
const DefaultSGDLR = 0.25

// NewSGD creates a new SGD optimizer.
//
// Parameters:
//   - params: Independent variables to optimize
//   - config: SGD configuration (LR, Momentum)
func NewSGD(params []*dual.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = DefaultSGDLR
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make([]float64, len(params)),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step(grads []float64) error {
	if err := checkStep(s.params, grads); err != nil {
		return err
	}

	for i, param := range s.params {
		g := grads[i]
		if s.momentum != 0 {
			// velocity = momentum * velocity + grad
			s.velocities[i] = s.momentum*s.velocities[i] + g
			g = s.velocities[i]
		}
		if err := move(i, param, s.lr*g); err != nil {
			return err
		}
	}
	return nil
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// StateDict returns the momentum buffers, keyed "velocity.{param_index}".
//
// Without momentum the map is empty.
func (s *SGD) StateDict() map[string]float64 {
	state := make(map[string]float64)
	if s.momentum == 0 {
		return state
	}
	for i, v := range s.velocities {
		state[fmt.Sprintf("velocity.%d", i)] = v
	}
	return state
}

// LoadStateDict restores momentum buffers saved by StateDict.
//
// Missing keys leave the corresponding velocity at zero.
func (s *SGD) LoadStateDict(state map[string]float64) error {
	if s.momentum == 0 {
		return nil
	}

	s.velocities = make([]float64, len(s.params))
	for key := range state {
		var i int
		if _, err := fmt.Sscanf(key, "velocity.%d", &i); err != nil {
			return fmt.Errorf("unknown state key %q", key)
		}
		if i < 0 || i >= len(s.params) {
			return fmt.Errorf("state key %q: parameter index out of range (have %d)", key, len(s.params))
		}
		s.velocities[i] = state[key]
	}
	return nil
}
