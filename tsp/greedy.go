// Package tsp - randomized-restart nearest-neighbour constructor.
//
// Each attempt starts from a random city not tried before and always moves
// to the cheapest unvisited city (lowest index on ties). An attempt fails
// when the walk reaches a city with no finite edge to any unvisited city, or
// when the closing edge back to the start is missing; the next attempt then
// uses another start. With n cities there are at most n attempts, so the
// loop terminates even without a deadline.
//
// The budget is checked once per attempt; a single walk is O(n²) and runs
// uninterrupted.
//
// Complexity: O(n³) worst case (n attempts × O(n²) walk), O(n) space.
package tsp

import (
	"context"
	"math"
	"math/rand"

	"github.com/yourbasic/bit"
	"go.uber.org/zap"

	"github.com/katalvlaran/tourbound/matrix"
)

// Greedy builds one feasible tour with the nearest-neighbour rule.
// Count is 1 on success and 0 otherwise; search counters are nil.
func Greedy(ctx context.Context, cities []City, opts Options) (Result, error) {
	b := newBudget(ctx, opts.TimeLimit)
	cost, err := BuildCostMatrix(cities)
	if err != nil {
		return Result{}, err
	}

	route, attempts := greedyTour(cost, deriveRNG(opts.Seed, streamGreedy), b)
	res := Result{Algorithm: AlgoGreedy, Cost: math.Inf(1)}
	if route != nil {
		res.Cost = RouteCost(cost, route)
		res.Count = 1
		res.Route = route
		res.Solution = citiesOf(cities, route)
	}
	res.Time = b.elapsed()
	opts.logger().Debug("greedy: done",
		zap.Int("cities", len(cities)),
		zap.Int("attempts", attempts),
		zap.Float64("cost", res.Cost),
		zap.Duration("elapsed", res.Time),
	)

	return res, nil
}

// greedyTour runs restarts until one walk closes into a tour, every start has
// been tried, or the budget expires. It returns the route (nil on failure)
// and the number of attempts made.
func greedyTour(cost *matrix.Dense, rng *rand.Rand, b budget) ([]int, int) {
	n := cost.Rows()
	tried := new(bit.Set)
	attempts := 0
	for tried.Size() < n {
		if b.expired() {
			break
		}
		start := pickUntried(rng, n, tried)
		if start < 0 {
			break
		}
		tried.Add(start)
		attempts++
		if route := nearestNeighborWalk(cost, start); route != nil {
			return route, attempts
		}
	}

	return nil, attempts
}

// nearestNeighborWalk returns the nearest-neighbour route from start, or nil
// when the walk gets stuck or cannot close.
func nearestNeighborWalk(cost *matrix.Dense, start int) []int {
	n := cost.Rows()
	route := make([]int, 1, n)
	route[0] = start
	visited := bit.New(start)

	var (
		cur, next, j int
		best, w      float64
	)
	cur = start
	for len(route) < n {
		next, best = -1, math.Inf(1)
		for j = 0; j < n; j++ {
			if visited.Contains(j) {
				continue
			}
			if w = cost.Get(cur, j); w < best {
				next, best = j, w
			}
		}
		if next < 0 {
			return nil // no finite edge to any unvisited city
		}
		route = append(route, next)
		visited.Add(next)
		cur = next
	}
	if math.IsInf(closingCost(cost, route), 1) {
		return nil
	}

	return route
}
