package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbound/config"
	"github.com/katalvlaran/tourbound/tsp"
)

var fourYAML = filepath.Join("..", "..", "testdata", "four.yaml")

func TestParseFlags(t *testing.T) {
	f, err := parseFlags([]string{"-config", "x.yaml", "-algo", "2opt", "-time", "3s", "-seed", "0", "-repeat", "0"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "x.yaml", f.configPath)
	require.Equal(t, "2opt", f.algo)
	require.Equal(t, 3*time.Second, f.timeLimit)
	require.True(t, f.seedSet, "an explicit zero seed still overrides")
	require.Equal(t, 1, f.repeat)

	_, err = parseFlags(nil, io.Discard)
	require.ErrorIs(t, err, errUsage)

	_, err = parseFlags([]string{"-h"}, io.Discard)
	require.ErrorIs(t, err, flag.ErrHelp)
}

func TestFlags_Apply(t *testing.T) {
	cfg, err := config.Load(fourYAML)
	require.NoError(t, err)

	f := flags{algo: "greedy", timeLimit: time.Second, seed: 3, seedSet: true}
	require.NoError(t, f.apply(cfg))
	require.Equal(t, tsp.AlgoGreedy, cfg.Algo())
	require.Equal(t, time.Second, cfg.TimeLimit)
	require.Equal(t, int64(3), cfg.Seed)

	f = flags{algo: "tabu"}
	require.ErrorIs(t, f.apply(cfg), tsp.ErrUnsupportedAlgorithm)
}

func TestRun_Single(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-config", fourYAML}, &out, io.Discard)
	require.NoError(t, err)
	require.Contains(t, out.String(), "algorithm: bnb\n")
	require.Contains(t, out.String(), "cost:      80\n")
	require.Contains(t, out.String(), "optimal:   true\n")
}

func TestRun_Repeat(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-config", fourYAML, "-repeat", "3"}, &out, io.Discard)
	require.NoError(t, err)
	require.Contains(t, out.String(), "runs:      3 (3 found a tour, 3 proved optimal)\n")
	require.Contains(t, out.String(), "cost:      min 80, median 80, mean 80.00, max 80, stddev 0.00\n")
}

func TestRun_MissingFile(t *testing.T) {
	err := run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, io.Discard, io.Discard)
	require.Error(t, err)
}

func TestSummarize(t *testing.T) {
	total, pruned, front := 10, 4, 3
	results := []tsp.Result{
		{Algorithm: tsp.AlgoBranchAndBound, Cost: 10, Time: time.Second, Route: []int{0, 1}, Solution: make([]tsp.City, 2), Optimal: true,
			TotalStates: &total, PrunedStates: &pruned, MaxFrontierSize: &front},
		{Algorithm: tsp.AlgoBranchAndBound, Cost: 20, Time: 3 * time.Second, Route: []int{1, 0}, Solution: make([]tsp.City, 2),
			TotalStates: &total, PrunedStates: &pruned, MaxFrontierSize: &front},
		{Algorithm: tsp.AlgoBranchAndBound, Cost: math.Inf(1), Time: 2 * time.Second,
			TotalStates: &total, PrunedStates: &pruned, MaxFrontierSize: &front},
	}
	s := summarize(results)
	require.Equal(t, 3, s.Runs)
	require.Equal(t, 2, s.Found)
	require.Equal(t, 1, s.Optimal)
	require.Equal(t, 10.0, s.CostMin)
	require.Equal(t, 20.0, s.CostMax)
	require.Equal(t, 15.0, s.CostMean)
	require.Equal(t, 15.0, s.CostMed)
	require.Equal(t, 5.0, s.CostStdDev)
	require.Equal(t, 2.0, s.SecondsMean)
	require.Equal(t, 10.0, s.TotalStatesMean)

	none := summarize(results[2:])
	require.Equal(t, 0, none.Found)
	require.True(t, math.IsInf(none.CostMin, 1))

	var out bytes.Buffer
	writeSummary(&out, none)
	require.Contains(t, out.String(), "cost:      no tour\n")
}
