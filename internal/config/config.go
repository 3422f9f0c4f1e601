// Package config loads the run configuration of the dualgrad tool.
//
// Values start from Default, are overlaid by an optional YAML file and
// finally by DUALGRAD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "DUALGRAD"

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// Known names.
var (
	Optimizers = []string{"sgd", "adam"}
	Objectives = []string{"sphere", "rosenbrock", "booth"}
	LogLevels  = []string{"debug", "info", "warn", "error"}
)

// Config holds the run configuration.
//
// Struct tags carry no defaults: envconfig only overrides variables that
// are actually set, so file values survive.
type Config struct {
	LogLevel  string  `envconfig:"LOG_LEVEL" yaml:"log_level"`
	LogDev    bool    `envconfig:"LOG_DEV" yaml:"log_dev"`
	Optimizer string  `envconfig:"OPTIMIZER" yaml:"optimizer"`
	LR        float64 `envconfig:"LR" yaml:"lr"` // 0 selects the optimizer default
	Momentum  float64 `envconfig:"MOMENTUM" yaml:"momentum"`
	Tolerance float64 `envconfig:"TOLERANCE" yaml:"tolerance"`
	MaxIter   int     `envconfig:"MAX_ITER" yaml:"max_iter"`
	Seed      uint64  `envconfig:"SEED" yaml:"seed"` // 0 picks a random seed
	Low       float64 `envconfig:"LOW" yaml:"low"`   // low = high = 0 uses the objective's interval
	High      float64 `envconfig:"HIGH" yaml:"high"`
	Objective string  `envconfig:"OBJECTIVE" yaml:"objective"`
	Starts    int     `envconfig:"STARTS" yaml:"starts"`   // independent random starts
	Workers   int     `envconfig:"WORKERS" yaml:"workers"` // 0 uses one per CPU
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		Optimizer: "sgd",
		Tolerance: 1e-5,
		MaxIter:   10000,
		Objective: "sphere",
		Starts:    1,
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is not empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.UnmarshalWithOptions(data, c, yaml.DisallowUnknownField()); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// HasStartInterval reports whether a random start interval is configured.
func (c *Config) HasStartInterval() bool {
	return c.Low != 0 || c.High != 0
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case !slices.Contains(LogLevels, c.LogLevel):
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	case !slices.Contains(Optimizers, c.Optimizer):
		return fmt.Errorf("%w: optimizer %q (want one of %v)", ErrInvalid, c.Optimizer, Optimizers)
	case !slices.Contains(Objectives, c.Objective):
		return fmt.Errorf("%w: objective %q (want one of %v)", ErrInvalid, c.Objective, Objectives)
	case c.LR < 0:
		return fmt.Errorf("%w: lr %g is negative", ErrInvalid, c.LR)
	case c.Momentum < 0:
		return fmt.Errorf("%w: momentum %g is negative", ErrInvalid, c.Momentum)
	case c.Tolerance <= 0:
		return fmt.Errorf("%w: tolerance %g must be positive", ErrInvalid, c.Tolerance)
	case c.MaxIter <= 0:
		return fmt.Errorf("%w: max iter %d must be positive", ErrInvalid, c.MaxIter)
	case c.Starts < 1:
		return fmt.Errorf("%w: starts %d must be positive", ErrInvalid, c.Starts)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d is negative", ErrInvalid, c.Workers)
	case c.HasStartInterval() && c.Low >= c.High:
		return fmt.Errorf("%w: start interval [%g, %g) is empty", ErrInvalid, c.Low, c.High)
	}
	return nil
}
