package optim

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/born-ml/dualgrad/internal/dual"
	"github.com/born-ml/dualgrad/internal/parallel"
)

// Run is one independent minimization. Runs must not share a session, since
// they are stepped concurrently.
type Run struct {
	Params    []*dual.Value
	Objective Objective
	Optimizer Optimizer
}

// MultiStartResult is the best of several runs.
type MultiStartResult struct {
	Best      Result
	BestRun   int // Index of the run Best came from
	Converged int // Number of runs that reached the tolerance
}

// MultiStart builds n runs with build and minimizes them concurrently,
// returning the converged run with the lowest objective value.
//
// Failed runs are skipped. If none converges, the combined errors of all
// runs are returned.
func MultiStart(
	ctx context.Context,
	n int,
	build func(i int) (Run, error),
	cfg MinimizeConfig,
	pcfg parallel.Config,
	logger *zap.Logger,
) (MultiStartResult, error) {
	if n < 1 {
		return MultiStartResult{}, fmt.Errorf("multi-start: %d runs requested", n)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Result, n)
	errs := make([]error, n)
	parallel.For(n, func(i int) {
		run, err := build(i)
		if err != nil {
			errs[i] = fmt.Errorf("run %d: %w", i, err)
			return
		}
		res, err := Minimize(ctx, run.Objective, run.Params, run.Optimizer, cfg,
			logger.With(zap.Int("run", i)))
		if err != nil {
			errs[i] = fmt.Errorf("run %d: %w", i, err)
			return
		}
		results[i] = res
	}, pcfg)

	out := MultiStartResult{BestRun: -1}
	var combined error
	for i := range n {
		if errs[i] != nil {
			combined = multierr.Append(combined, errs[i])
			continue
		}
		out.Converged++
		if out.BestRun < 0 || results[i].Value < out.Best.Value {
			out.Best, out.BestRun = results[i], i
		}
	}
	if out.BestRun < 0 {
		return out, combined
	}

	logger.Info("multi-start: done",
		zap.Int("runs", n),
		zap.Int("converged", out.Converged),
		zap.Int("best_run", out.BestRun),
		zap.Float64("f", out.Best.Value),
	)
	if combined != nil {
		logger.Warn("multi-start: some runs failed", zap.Error(combined))
	}
	return out, nil
}
