// Package config loads solver runs from YAML files.
//
// A file names one instance (a cost matrix; .inf marks a missing edge) and
// the run parameters:
//
//	name: four-cities
//	algorithm: bnb        # random | greedy | bnb | 2opt
//	time_limit: 60s
//	seed: 7
//	start_city: 0         # optional, branch-and-bound root
//	costs:
//	  - [.inf, 10, 15, 20]
//	  - [10, .inf, 35, 25]
//	  - [15, 35, .inf, 30]
//	  - [20, 25, 30, .inf]
//
// Unknown keys are rejected so typos do not silently fall back to defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourbound/tsp"
)

var (
	// ErrNoCosts is returned when the file has no cost matrix.
	ErrNoCosts = errors.New("config: no costs")

	// ErrNotSquare is returned when the cost matrix is not n×n.
	ErrNotSquare = errors.New("config: cost matrix is not square")

	// ErrBadCost is returned for NaN or negative costs.
	ErrBadCost = errors.New("config: cost is NaN or negative")

	// ErrBadTimeLimit is returned for a negative time limit.
	ErrBadTimeLimit = errors.New("config: negative time limit")
)

// Config is one solver run.
type Config struct {
	Name      string        `yaml:"name"`
	Algorithm string        `yaml:"algorithm"`
	TimeLimit time.Duration `yaml:"time_limit"`
	Seed      int64         `yaml:"seed"`
	StartCity *int          `yaml:"start_city"`
	Costs     [][]float64   `yaml:"costs"`
}

// Default returns the values used for keys a file leaves out.
func Default() Config {
	return Config{
		Algorithm: tsp.AlgoBranchAndBound.String(),
		TimeLimit: tsp.DefaultTimeLimit,
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes and validates one YAML document.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the algorithm name, the time limit, and the matrix shape and values.
func (c *Config) Validate() error {
	if _, err := tsp.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.TimeLimit < 0 {
		return ErrBadTimeLimit
	}
	n := len(c.Costs)
	if n == 0 {
		return ErrNoCosts
	}
	var i, j int
	for i = range c.Costs {
		if len(c.Costs[i]) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i, len(c.Costs[i]), n)
		}
		for j = range c.Costs[i] {
			if v := c.Costs[i][j]; math.IsNaN(v) || v < 0 {
				return fmt.Errorf("%w: costs[%d][%d] = %v", ErrBadCost, i, j, v)
			}
		}
	}
	if c.StartCity != nil && (*c.StartCity < 0 || *c.StartCity >= n) {
		return fmt.Errorf("config: %w", tsp.ErrStartOutOfRange)
	}

	return nil
}

// Algo returns the parsed algorithm (Validate must have passed).
func (c *Config) Algo() tsp.Algorithm {
	a, _ := tsp.ParseAlgorithm(c.Algorithm)

	return a
}

// Cities wraps the cost matrix as tsp cities.
func (c *Config) Cities() ([]tsp.City, error) {
	return tsp.CitiesFromRows(c.Costs)
}

// Options builds solver options; logger may be nil.
func (c *Config) Options(logger *zap.Logger) tsp.Options {
	opts := tsp.DefaultOptions()
	opts.TimeLimit = c.TimeLimit
	opts.Seed = c.Seed
	if c.StartCity != nil {
		opts.StartCity = *c.StartCity
	}
	if logger != nil {
		opts.Logger = logger.With(zap.String("instance", c.Name))
	}

	return opts
}
