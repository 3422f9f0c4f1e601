package optim

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/dualgrad/internal/dual"
)

// Objective evaluates the function to minimize at the current parameter values.
type Objective func(params []*dual.Value) *dual.Value

// MinimizeConfig controls the stopping rule of Minimize.
type MinimizeConfig struct {
	Tolerance float64 // Stop once max|gradient| < Tolerance (default: 1e-5)
	MaxIter   int     // Give up after this many steps (default: 10000)
}

// Default stopping rule.
const (
	DefaultTolerance = 1e-5
	DefaultMaxIter   = 10000
)

// Result describes the last evaluation of a minimization run.
type Result struct {
	Iterations int         // Optimizer steps taken
	Value      float64     // Objective value at Params
	Params     []float64   // Parameter values
	Gradient   []float64   // Partial derivatives at Params, in parameter order
	MaxGrad    float64     // max|Gradient|
	Final      *dual.Value // Last evaluated objective, for reporting
}

// Minimize drives opt until the largest partial derivative of obj falls
// below cfg.Tolerance.
//
// Every parameter must be an independent variable. The parameters are left
// at the final iterate, also when an error is returned; the partial Result
// is returned alongside ErrNotConverged, ErrNonFinite or a context error.
// If the objective cannot be evaluated after a step, the Result describes
// the last successful evaluation and Iterations counts that step.
func Minimize(
	ctx context.Context,
	obj Objective,
	params []*dual.Value,
	opt Optimizer,
	cfg MinimizeConfig,
	logger *zap.Logger,
) (Result, error) {
	if cfg.Tolerance == 0 {
		cfg.Tolerance = DefaultTolerance
	}
	if cfg.MaxIter == 0 {
		cfg.MaxIter = DefaultMaxIter
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(params) == 0 {
		return Result{}, ErrNoParameters
	}
	for i, p := range params {
		if !p.IsIndependent() {
			return Result{}, fmt.Errorf("parameter %d: %w", i, dual.ErrNotIndependent)
		}
	}

	logger.Info("minimize: start",
		zap.Float64s("start", values(params)),
		zap.Float64("lr", opt.GetLR()),
		zap.Float64("tolerance", cfg.Tolerance),
		zap.Int("max_iter", cfg.MaxIter),
	)

	res, err := evaluate(obj, params)
	if err != nil {
		return res, err
	}

	for {
		if math.IsNaN(res.MaxGrad) || math.IsInf(res.MaxGrad, 0) {
			logger.Warn("minimize: non-finite gradient", zap.Int("iteration", res.Iterations))
			return res, fmt.Errorf("%w at iteration %d", ErrNonFinite, res.Iterations)
		}
		if res.MaxGrad < cfg.Tolerance {
			break
		}
		if res.Iterations >= cfg.MaxIter {
			return res, fmt.Errorf("%w after %d iterations (max gradient %g)",
				ErrNotConverged, res.Iterations, res.MaxGrad)
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		logger.Debug("minimize: iteration",
			zap.Int("iteration", res.Iterations+1),
			zap.Float64("f", res.Value),
			zap.Float64("max_grad", res.MaxGrad),
		)

		if err := opt.Step(res.Gradient); err != nil {
			return res, fmt.Errorf("step %d: %w", res.Iterations+1, err)
		}

		next, err := evaluate(obj, params)
		if err != nil {
			res.Iterations++
			return res, err
		}
		next.Iterations = res.Iterations + 1
		res = next
	}

	logger.Info("minimize: converged",
		zap.Int("iterations", res.Iterations),
		zap.Float64("f", res.Value),
		zap.Float64s("params", res.Params),
		zap.Float64("max_grad", res.MaxGrad),
	)
	return res, nil
}

// evaluate computes obj and its gradient with respect to params.
func evaluate(obj Objective, params []*dual.Value) (Result, error) {
	f := obj(params)

	grad := make([]float64, len(params))
	for i, p := range params {
		g, err := f.Grad(p)
		if err != nil {
			return Result{}, fmt.Errorf("gradient for parameter %d: %w", i, err)
		}
		grad[i] = g
	}

	return Result{
		Value:    f.Value(),
		Params:   values(params),
		Gradient: grad,
		MaxGrad:  floats.Norm(grad, math.Inf(1)),
		Final:    f,
	}, nil
}

func values(params []*dual.Value) []float64 {
	out := make([]float64, len(params))
	for i, p := range params {
		out[i] = p.Value()
	}
	return out
}

// RandomStart sets every parameter to a value drawn uniformly from [low, high).
func RandomStart(params []*dual.Value, low, high float64, rng *rand.Rand) error {
	if low >= high {
		return fmt.Errorf("random start: empty interval [%g, %g)", low, high)
	}
	for i, p := range params {
		if err := p.Set(rng.Float64()*(high-low) + low); err != nil {
			return fmt.Errorf("random start: parameter %d: %w", i, err)
		}
	}
	return nil
}
