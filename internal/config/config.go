// SPDX-License-Identifier: MIT

// Package config loads the driver's defaults from NUMERIK_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name.
const Prefix = "NUMERIK"

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all driver configuration. The groups are embedded so their
// variables share the bare prefix.
type Config struct {
	LogConfig
	OutputConfig
	SolverConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format string `envconfig:"FORMAT" default:"text"`
}

// SolverConfig holds the default resolution of each numeric method.
type SolverConfig struct {
	SimpsonIntervals    int     `envconfig:"SIMPSON_INTERVALS" default:"1000"`
	RiemannStep         float64 `envconfig:"RIEMANN_STEP" default:"0.001"`
	GaussOrder          int     `envconfig:"GAUSS_ORDER" default:"10"`
	BisectionIterations int     `envconfig:"BISECTION_ITERATIONS" default:"100"`
	NewtonIterations    int     `envconfig:"NEWTON_ITERATIONS" default:"50"`
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		LogConfig: LogConfig{
			Level:       "warn",
			Development: false,
		},
		OutputConfig: OutputConfig{
			Format: "text",
		},
		SolverConfig: SolverConfig{
			SimpsonIntervals:    1000,
			RiemannStep:         1e-3,
			GaussOrder:          10,
			BisectionIterations: 100,
			NewtonIterations:    50,
		},
	}
}

// Validate checks every field.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %s_FORMAT=%q (want text or json)", ErrInvalid, Prefix, c.Format)
	}
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %s_LOG_LEVEL=%q", ErrInvalid, Prefix, c.Level)
	}
	if c.SimpsonIntervals < 1 {
		return fmt.Errorf("%w: %s_SIMPSON_INTERVALS=%d", ErrInvalid, Prefix, c.SimpsonIntervals)
	}
	if !(c.RiemannStep > 0) || math.IsInf(c.RiemannStep, 1) {
		return fmt.Errorf("%w: %s_RIEMANN_STEP=%g", ErrInvalid, Prefix, c.RiemannStep)
	}
	if c.GaussOrder < 1 {
		return fmt.Errorf("%w: %s_GAUSS_ORDER=%d", ErrInvalid, Prefix, c.GaussOrder)
	}
	if c.BisectionIterations < 0 {
		return fmt.Errorf("%w: %s_BISECTION_ITERATIONS=%d", ErrInvalid, Prefix, c.BisectionIterations)
	}
	if c.NewtonIterations < 0 {
		return fmt.Errorf("%w: %s_NEWTON_ITERATIONS=%d", ErrInvalid, Prefix, c.NewtonIterations)
	}
	return nil
}
