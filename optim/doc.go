// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based minimization over dual values.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Minimize: the evaluate, read gradient, step loop with a stopping rule
//   - Optimizer interface for custom optimizers
//
// Parameters are independent variables created with dual.NewVariable.
// Optimizers move them in place through Value.Set, so every evaluation of
// the objective sees the current iterate.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/dualgrad/dual"
//	    "github.com/born-ml/dualgrad/optim"
//	)
//
//	func main() {
//	    s := dual.NewSession(dual.SessionCapacity(2))
//	    a, _ := dual.NewVariable(s, "a", dual.WithValue(3))
//	    b, _ := dual.NewVariable(s, "b", dual.WithValue(-4))
//	    params := []*dual.Value{a, b}
//
//	    sphere := func(p []*dual.Value) *dual.Value {
//	        return p[0].Mul(p[0]).Add(p[1].Mul(p[1]))
//	    }
//
//	    res, err := optim.Minimize(
//	        context.Background(),
//	        sphere,
//	        params,
//	        optim.NewSGD(params, optim.SGDConfig{}),
//	        optim.MinimizeConfig{},
//	        nil,
//	    )
//	}
//
// # Optimizers
//
// SGD with the default LR of 0.25 takes a quarter of the gradient per step:
//
//	optimizer := optim.NewSGD(params, optim.SGDConfig{})
//
// Adam:
//
//	optimizer := optim.NewAdam(params, optim.AdamConfig{LR: 0.05})
//
// # Manual Loop Pattern
//
//	for range steps {
//	    // 1. Evaluate
//	    f := objective(params)
//
//	    // 2. Read partial derivatives
//	    grads := make([]float64, len(params))
//	    for i, p := range params {
//	        grads[i] = f.MustGrad(p)
//	    }
//
//	    // 3. Update parameters
//	    optimizer.Step(grads)
//	}
package optim
