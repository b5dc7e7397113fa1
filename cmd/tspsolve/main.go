// Command tspsolve runs one of the tsp solvers on a YAML instance.
//
//	tspsolve -config testdata/four.yaml
//	tspsolve -config hard.yaml -algo 2opt -time 5s -repeat 10 -v
//
// Flags override the values read from the file. With -repeat > 1 the run is
// repeated with consecutive seeds and a cost/time summary is printed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/tourbound/config"
	"github.com/katalvlaran/tourbound/tsp"
)

var errUsage = errors.New("tspsolve: -config is required")

type flags struct {
	configPath string
	algo       string
	timeLimit  time.Duration
	seed       int64
	seedSet    bool
	repeat     int
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("tspsolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML instance file")
	fs.StringVar(&f.algo, "algo", "", "algorithm: random, greedy, bnb, 2opt (overrides the file)")
	fs.DurationVar(&f.timeLimit, "time", 0, "time limit per run (overrides the file)")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (overrides the file)")
	fs.IntVar(&f.repeat, "repeat", 1, "number of runs with consecutive seeds")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "seed" {
			f.seedSet = true
		}
	})
	if f.configPath == "" {
		return f, errUsage
	}
	if f.repeat < 1 {
		f.repeat = 1
	}

	return f, nil
}

// apply layers the flag overrides onto cfg and revalidates it.
func (f flags) apply(cfg *config.Config) error {
	if f.algo != "" {
		cfg.Algorithm = f.algo
	}
	if f.timeLimit > 0 {
		cfg.TimeLimit = f.timeLimit
	}
	if f.seedSet {
		cfg.Seed = f.seed
	}

	return cfg.Validate()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if err = f.apply(cfg); err != nil {
		return err
	}

	logger, err := newLogger(f.verbose)
	if err != nil {
		return fmt.Errorf("tspsolve: logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cities, err := cfg.Cities()
	if err != nil {
		return err
	}
	algo := cfg.Algo()
	logger.Info("solving",
		zap.String("instance", cfg.Name),
		zap.Stringer("algorithm", algo),
		zap.Int("cities", len(cities)),
		zap.Duration("time_limit", cfg.TimeLimit),
		zap.Int("repeat", f.repeat),
	)

	results := make([]tsp.Result, 0, f.repeat)
	var i int
	for i = 0; i < f.repeat; i++ {
		opts := cfg.Options(logger)
		opts.Seed = cfg.Seed + int64(i)
		res, err := tsp.Solve(ctx, algo, cities, opts)
		if err != nil {
			return err
		}
		results = append(results, res)
		if f.repeat == 1 {
			writeResult(stdout, res)
		}
		if ctx.Err() != nil {
			logger.Warn("interrupted", zap.Int("completed", i+1))
			break
		}
	}
	if f.repeat > 1 {
		writeSummary(stdout, summarize(results))
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(2)
	}
}
