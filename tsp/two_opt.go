// Package tsp - 2-opt local search.
//
// ImproveTwoOpt scans every index pair i<j of an open route and tries the
// candidate obtained by reversing route[i:j]. A candidate is kept only when
// the closed tour gets strictly cheaper, so the sequence of accepted costs
// is strictly decreasing. Full passes repeat until a pass accepts nothing
// (local optimum) or the budget expires.
//
// Costs are re-evaluated over the whole closed tour, which keeps the move
// valid for asymmetric instances where a reversed segment changes the cost
// of every inner edge.
//
// Design:
//   - One working buffer; a rejected reversal is undone in place.
//   - The budget is checked once per outer index i.
//
// Complexity: O(n²) candidates per pass, O(n) per candidate ⇒ O(n³) per pass.
package tsp

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/tourbound/matrix"
)

// TwoOpt seeds a tour with the greedy constructor and refines it with 2-opt.
// Count is the number of accepted reversals; search counters are nil. When
// the greedy seed fails the result has Cost=+Inf and no solution.
func TwoOpt(ctx context.Context, cities []City, opts Options) (Result, error) {
	b := newBudget(ctx, opts.TimeLimit)
	cost, err := BuildCostMatrix(cities)
	if err != nil {
		return Result{}, err
	}

	res := Result{Algorithm: AlgoTwoOpt, Cost: math.Inf(1)}
	seed, _ := greedyTour(cost, deriveRNG(opts.Seed, streamGreedy), b)
	if seed != nil {
		seedCost := RouteCost(cost, seed)
		route, c, accepted := improveTwoOpt(cost, seed, b, nil)
		res.Route = route
		res.Cost = c
		res.Count = accepted
		res.Solution = citiesOf(cities, route)
		opts.logger().Debug("2opt: improved",
			zap.Float64("seed_cost", seedCost),
			zap.Float64("cost", c),
			zap.Int("accepted", accepted),
		)
	}
	res.Time = b.elapsed()
	opts.logger().Debug("2opt: done",
		zap.Int("cities", len(cities)),
		zap.Float64("cost", res.Cost),
		zap.Duration("elapsed", res.Time),
	)

	return res, nil
}

// ImproveTwoOpt refines route on cost and returns the improved route, its
// closed-tour cost and the number of accepted reversals. The input slice is
// not modified. onImprove, when non-nil, is called with the tour cost after
// every accepted reversal.
//
// Errors: ErrNonSquare for a non-square matrix, ErrInvalidRoute when route is
// not a permutation of the matrix indices.
func ImproveTwoOpt(ctx context.Context, cost *matrix.Dense, route []int, opts Options, onImprove func(float64)) ([]int, float64, int, error) {
	if cost == nil || cost.Rows() != cost.Cols() {
		return nil, 0, 0, ErrNonSquare
	}
	if err := ValidateRoute(route, cost.Rows()); err != nil {
		return nil, 0, 0, err
	}
	out, c, accepted := improveTwoOpt(cost, route, newBudget(ctx, opts.TimeLimit), onImprove)

	return out, c, accepted, nil
}

func improveTwoOpt(cost *matrix.Dense, route []int, b budget, onImprove func(float64)) ([]int, float64, int) {
	n := len(route)
	cur := make([]int, n)
	copy(cur, route)
	best := RouteCost(cost, cur)
	accepted := 0

	var (
		i, j     int
		c        float64
		improved bool
	)
	for {
		improved = false
		for i = 0; i < n-1; i++ {
			if b.expired() {
				return cur, best, accepted
			}
			for j = i + 2; j < n; j++ {
				reverseInPlace(cur, i, j)
				c = RouteCost(cost, cur)
				if c < best {
					best = c
					accepted++
					improved = true
					if onImprove != nil {
						onImprove(best)
					}
					continue
				}
				reverseInPlace(cur, i, j) // undo
			}
		}
		if !improved {
			return cur, best, accepted
		}
	}
}
