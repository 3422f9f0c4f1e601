// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"context"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/born-ml/dualgrad/internal/dual"
	"github.com/born-ml/dualgrad/internal/optim"
	"github.com/born-ml/dualgrad/internal/parallel"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// DefaultSGDLR is the step used when SGDConfig.LR is zero.
const DefaultSGDLR = optim.DefaultSGDLR

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(
//	    []*dual.Value{x, y},
//	    optim.SGDConfig{
//	        LR:       0.1,
//	        Momentum: 0.9,
//	    },
//	)
func NewSGD(params []*dual.Value, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer := optim.NewAdam(
//	    []*dual.Value{x, y},
//	    optim.AdamConfig{
//	        LR:    0.05,
//	        Betas: [2]float64{0.9, 0.999},
//	        Eps:   1e-8,
//	    },
//	)
func NewAdam(params []*dual.Value, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}

// Minimization

// Objective evaluates the function to minimize.
type Objective = optim.Objective

// MinimizeConfig controls the stopping rule of Minimize.
type MinimizeConfig = optim.MinimizeConfig

// Result describes the last evaluation of a minimization run.
type Result = optim.Result

// Default stopping rule.
const (
	DefaultTolerance = optim.DefaultTolerance
	DefaultMaxIter   = optim.DefaultMaxIter
)

// Minimize steps opt until every partial derivative of obj is smaller in
// magnitude than cfg.Tolerance. A nil logger disables logging.
func Minimize(
	ctx context.Context,
	obj Objective,
	params []*dual.Value,
	opt Optimizer,
	cfg MinimizeConfig,
	logger *zap.Logger,
) (Result, error) {
	return optim.Minimize(ctx, obj, params, opt, cfg, logger)
}

// RandomStart sets every parameter to a value drawn uniformly from [low, high).
func RandomStart(params []*dual.Value, low, high float64, rng *rand.Rand) error {
	return optim.RandomStart(params, low, high, rng)
}

// Multi-start

// Run is one independent minimization of MultiStart.
type Run = optim.Run

// MultiStartResult is the best of several runs.
type MultiStartResult = optim.MultiStartResult

// ParallelConfig bounds the goroutines MultiStart uses.
type ParallelConfig = parallel.Config

// DefaultParallelConfig uses one worker per CPU.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// MultiStart minimizes n independently built runs concurrently and returns
// the converged one with the lowest objective value. Each run needs its own
// session.
func MultiStart(
	ctx context.Context,
	n int,
	build func(i int) (Run, error),
	cfg MinimizeConfig,
	pcfg ParallelConfig,
	logger *zap.Logger,
) (MultiStartResult, error) {
	return optim.MultiStart(ctx, n, build, cfg, pcfg, logger)
}

// Errors

var (
	// ErrGradientLength is returned by Step for a gradient of the wrong length.
	ErrGradientLength = optim.ErrGradientLength

	// ErrNotConverged is returned when MaxIter steps did not reach the tolerance.
	ErrNotConverged = optim.ErrNotConverged

	// ErrNonFinite is returned when the gradient becomes NaN or infinite.
	ErrNonFinite = optim.ErrNonFinite

	// ErrNoParameters is returned by Minimize for an empty parameter list.
	ErrNoParameters = optim.ErrNoParameters
)
