// Package main provides the dualgrad CLI.
//
// dualgrad minimizes a built-in function of two variables from a random
// start using forward-mode gradients, then prints the minimizer together
// with the value and partial derivatives found there.
//
// Usage:
//
//	dualgrad [-config file.yaml] [-objective sphere|booth|rosenbrock]
//	dualgrad version
//
// Every setting can also be given as a DUALGRAD_* environment variable,
// which takes precedence over the config file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/born-ml/dualgrad/internal/config"
	"github.com/born-ml/dualgrad/internal/dual"
	"github.com/born-ml/dualgrad/internal/logging"
	"github.com/born-ml/dualgrad/internal/optim"
	"github.com/born-ml/dualgrad/internal/parallel"
	"github.com/born-ml/dualgrad/internal/session"
)

const version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "version" {
		fmt.Fprintf(stdout, "dualgrad %s\n", version)
		return 0
	}

	fs := flag.NewFlagSet("dualgrad", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file")
	objectiveName := fs.String("objective", "", "Function to minimize (sphere, booth, rosenbrock)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *objectiveName != "" {
		cfg.Objective = *objectiveName
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	logCfg := logging.DefaultConfig()
	if cfg.LogDev {
		logCfg = logging.DevelopmentConfig()
	}
	logCfg.Level = cfg.LogLevel
	logger, err := logging.New(logCfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if err := minimize(ctx, cfg, objectives[cfg.Objective], logger.Logger, stdout); err != nil {
		logger.Error("minimize failed", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// minimize runs cfg.Starts minimizations of obj from random starts and
// prints the best one.
func minimize(ctx context.Context, cfg *config.Config, obj objective, logger *zap.Logger, w io.Writer) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Info("dualgrad: run",
		zap.String("objective", obj.name),
		zap.String("optimizer", cfg.Optimizer),
		zap.Int("starts", cfg.Starts),
		zap.Uint64("seed", seed),
	)

	pcfg := parallel.DefaultConfig()
	if cfg.Workers > 0 {
		pcfg.NumWorkers = cfg.Workers
	}

	build := func(i int) (optim.Run, error) {
		return newRun(cfg, obj, rand.New(rand.NewPCG(seed, uint64(i))), logger)
	}
	res, err := optim.MultiStart(ctx, cfg.Starts, build,
		optim.MinimizeConfig{Tolerance: cfg.Tolerance, MaxIter: cfg.MaxIter}, pcfg, logger)
	if err != nil {
		return err
	}

	best := res.Best
	logger.Info("dualgrad: best run",
		zap.Int("run", res.BestRun),
		zap.Int("converged", res.Converged),
		zap.Float64("distance_to_minimum", obj.distance(best.Params[0], best.Params[1])),
	)
	if _, err := fmt.Fprintf(w, "the minimum of f is at %v,%v\n", best.Params[0], best.Params[1]); err != nil {
		return err
	}
	return best.Final.Report(w)
}

// newRun declares x and y in a fresh session and places them at a random start.
func newRun(cfg *config.Config, obj objective, rng *rand.Rand, logger *zap.Logger) (optim.Run, error) {
	s := session.New(session.WithCapacity(2))
	x, err := dual.NewVariable(s, "x", dual.WithValue(0))
	if err != nil {
		return optim.Run{}, err
	}
	y, err := dual.NewVariable(s, "y", dual.WithValue(0))
	if err != nil {
		return optim.Run{}, err
	}
	params := []*dual.Value{x, y}

	low, high := startInterval(cfg, obj)
	if err := optim.RandomStart(params, low, high, rng); err != nil {
		return optim.Run{}, err
	}
	logger.Debug("dualgrad: start",
		zap.String("session", s.ID()),
		zap.Float64("x", x.Value()),
		zap.Float64("y", y.Value()),
	)

	return optim.Run{
		Params:    params,
		Objective: obj.bind(s),
		Optimizer: newOptimizer(cfg, obj, params),
	}, nil
}

func newOptimizer(cfg *config.Config, obj objective, params []*dual.Value) optim.Optimizer {
	if cfg.Optimizer == "adam" {
		return optim.NewAdam(params, optim.AdamConfig{LR: cfg.LR})
	}
	lr, momentum := cfg.LR, cfg.Momentum
	if lr == 0 {
		lr = obj.sgdLR
		if momentum == 0 {
			momentum = obj.sgdMomentum
		}
	}
	return optim.NewSGD(params, optim.SGDConfig{LR: lr, Momentum: momentum})
}

// startInterval returns the configured start interval, or the objective's
// own when none is configured.
func startInterval(cfg *config.Config, obj objective) (float64, float64) {
	if cfg.HasStartInterval() {
		return cfg.Low, cfg.High
	}
	return obj.start[0], obj.start[1]
}
