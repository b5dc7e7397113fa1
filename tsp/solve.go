// Package tsp - unified dispatcher.
//
// Solve is the single synchronous entry point used by front-ends that pick
// the algorithm at run time (the tspsolve CLI, configuration files).
// SolveMatrix is the same for callers that only hold a distance matrix.
package tsp

import (
	"context"

	"github.com/katalvlaran/tourbound/matrix"
)

// Solve routes to the solver selected by algo.
//
// Errors: ErrUnsupportedAlgorithm, plus the input-validation sentinels of
// the selected solver. Search failure and expired budgets are data.
func Solve(ctx context.Context, algo Algorithm, cities []City, opts Options) (Result, error) {
	switch algo {
	case AlgoRandom:
		return RandomTour(ctx, cities, opts)
	case AlgoGreedy:
		return Greedy(ctx, cities, opts)
	case AlgoBranchAndBound:
		return BranchAndBound(ctx, cities, opts)
	case AlgoTwoOpt:
		return TwoOpt(ctx, cities, opts)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}

// SolveMatrix wraps dist with CitiesFromMatrix and calls Solve. Result.Route
// indexes rows of dist.
func SolveMatrix(ctx context.Context, algo Algorithm, dist matrix.Matrix, opts Options) (Result, error) {
	cities, err := CitiesFromMatrix(dist)
	if err != nil {
		return Result{}, err
	}

	return Solve(ctx, algo, cities, opts)
}
