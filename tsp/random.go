package tsp

import (
	"context"
	"math"

	"go.uber.org/zap"
)

// maxRandomAttempts bounds RandomTour when no time limit applies.
const maxRandomAttempts = 1 << 20

// RandomTour is the baseline solver: it draws random permutations until one
// has finite cost or the budget expires. Count is the number of permutations
// drawn; search counters are nil.
//
// Instances where a city has no finite outgoing or incoming edge return
// immediately with Cost=+Inf. Without a time limit at most maxRandomAttempts
// permutations are drawn.
func RandomTour(ctx context.Context, cities []City, opts Options) (Result, error) {
	b := newBudget(ctx, opts.TimeLimit)
	cost, err := BuildCostMatrix(cities)
	if err != nil {
		return Result{}, err
	}

	res := Result{Algorithm: AlgoRandom, Cost: math.Inf(1)}
	if !hasDeadEnd(cost) {
		rng := deriveRNG(opts.Seed, streamPerm)
		n := len(cities)
		for !b.expired() && (b.limited || res.Count < maxRandomAttempts) {
			perm := rng.Perm(n)
			res.Count++
			if c := RouteCost(cost, perm); !math.IsInf(c, 1) {
				res.Cost = c
				res.Route = perm
				res.Solution = citiesOf(cities, perm)
				break
			}
		}
	}
	res.Time = b.elapsed()
	opts.logger().Debug("random: done",
		zap.Int("cities", len(cities)),
		zap.Int("permutations", res.Count),
		zap.Float64("cost", res.Cost),
		zap.Duration("elapsed", res.Time),
	)

	return res, nil
}
