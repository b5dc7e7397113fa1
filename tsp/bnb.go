// Package tsp - Branch-and-Bound (best-first search on reduced cost matrices).
//
// BranchAndBound explores partial tours in order of 2·lowerBound/depth,
// expanding each popped state into one child per unvisited city and pruning
// every child whose reduced-matrix lower bound is +Inf or not below the
// best complete tour so far (BSSF).
//
// Phases (one search value per call, no package state):
//
//	INIT       cost matrix, root state, counters (created = 1)
//	SEEDING    greedy nearest-neighbour tour → BSSF (+Inf if none), push root
//	EXPANDING  pop → accept as BSSF candidate, or expand into children
//	TERMINATED frontier empty (optimal) or budget expired (best so far)
//
// The budget is polled once per pop; one expansion (O(n³): n children ×
// O(n²) reduction) always runs to completion. States still queued at
// termination are counted as pruned.
//
// Complexity: worst case exponential; O(n²) memory per queued state.
package tsp

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/tourbound/matrix"
)

type phase int

const (
	phaseInit phase = iota
	phaseSeeding
	phaseExpanding
	phaseTerminated
)

func (p phase) String() string {
	switch p {
	case phaseInit:
		return "init"
	case phaseSeeding:
		return "seeding"
	case phaseExpanding:
		return "expanding"
	case phaseTerminated:
		return "terminated"
	}

	return "unknown"
}

// search owns every mutable piece of one branch-and-bound run.
type search struct {
	n      int
	cost   *matrix.Dense
	budget budget
	log    *zap.Logger
	phase  phase

	front frontier

	bestRoute []int
	bestCost  float64

	created     int
	popped      int
	pruned      int
	solutions   int
	maxFrontier int
	exhausted   bool
}

func (s *search) enter(p phase) {
	s.phase = p
	s.log.Debug("bnb: phase", zap.Stringer("phase", p), zap.Float64("bssf", s.bestCost))
}

// BranchAndBound runs the reduced-cost-matrix best-first search. It never
// returns an error for an infeasible instance or an expired budget: the
// result then carries the best tour found so far (Cost=+Inf, Solution=nil
// when there is none). Result.Optimal is set when the frontier was exhausted.
func BranchAndBound(ctx context.Context, cities []City, opts Options) (Result, error) {
	b := newBudget(ctx, opts.TimeLimit)
	cost, err := BuildCostMatrix(cities)
	if err != nil {
		return Result{}, err
	}
	n := len(cities)
	if opts.StartCity >= n {
		return Result{}, ErrStartOutOfRange
	}

	s := runBranchAndBound(cost, opts, b)

	res := Result{
		Algorithm:       AlgoBranchAndBound,
		Cost:            s.bestCost,
		Count:           s.solutions,
		MaxFrontierSize: intPtr(s.maxFrontier),
		TotalStates:     intPtr(s.created),
		PrunedStates:    intPtr(s.pruned),
		Optimal:         s.exhausted,
	}
	if s.bestRoute != nil {
		res.Route = s.bestRoute
		res.Solution = citiesOf(cities, s.bestRoute)
	}
	res.Time = b.elapsed()
	s.log.Debug("bnb: done",
		zap.Int("cities", n),
		zap.Float64("cost", res.Cost),
		zap.Bool("optimal", res.Optimal),
		zap.Int("solutions", s.solutions),
		zap.Int("max_frontier", s.maxFrontier),
		zap.Int("states_created", s.created),
		zap.Int("states_popped", s.popped),
		zap.Int("states_pruned", s.pruned),
		zap.Duration("elapsed", res.Time),
	)

	return res, nil
}

// runBranchAndBound drives one search through all four phases.
func runBranchAndBound(cost *matrix.Dense, opts Options, b budget) *search {
	n := cost.Rows()
	s := &search{n: n, cost: cost, budget: b, log: opts.logger(), bestCost: math.Inf(1)}

	s.enter(phaseInit)
	start := opts.StartCity
	if start < 0 {
		start = deriveRNG(opts.Seed, streamRoot).Intn(n)
	}
	root := newRootState(cost, start)
	s.created = 1

	s.enter(phaseSeeding)
	if route, _ := greedyTour(cost, deriveRNG(opts.Seed, streamGreedy), b); route != nil {
		s.bestRoute = route
		s.bestCost = RouteCost(cost, route)
	}
	s.front.push(root)

	s.enter(phaseExpanding)
	s.run()

	s.enter(phaseTerminated)
	s.pruned += s.front.len()

	return s
}

// run is the EXPANDING loop.
func (s *search) run() {
	for s.front.len() > 0 {
		if s.budget.expired() {
			return
		}
		if s.front.len() > s.maxFrontier {
			s.maxFrontier = s.front.len()
		}
		st := s.front.pop()
		s.popped++
		if st.complete(s.n) {
			s.consider(st)
			continue
		}
		s.expand(st)
	}
	s.exhausted = true
}

// consider accepts a complete state as the new BSSF when its closed tour is
// feasible and strictly cheaper, then sweeps dominated states.
func (s *search) consider(st *state) {
	if math.IsInf(closingCost(s.cost, st.route), 1) {
		return
	}
	c := RouteCost(s.cost, st.route)
	if c >= s.bestCost {
		return
	}
	s.bestRoute = st.route
	s.bestCost = c
	s.solutions++
	swept := s.front.sweep(s.bestCost)
	s.pruned += swept
	s.log.Debug("bnb: new bssf",
		zap.Float64("cost", c),
		zap.Int("swept", swept),
		zap.Int("frontier", s.front.len()),
	)
}

// expand creates one child per unvisited city and queues the promising ones.
func (s *search) expand(st *state) {
	var (
		to    int
		child *state
	)
	for to = 0; to < s.n; to++ {
		if st.visited.Contains(to) {
			continue
		}
		child = st.child(to)
		s.created++
		if child.lowerBound < math.Inf(1) && child.lowerBound < s.bestCost {
			s.front.push(child)
		} else {
			s.pruned++
		}
	}
	st.release()
}
