package tsp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors. Solvers return them only for malformed input; an
// infeasible instance or an exhausted time budget is reported through
// Result (Cost == +Inf, Solution == nil), never as an error.
var (
	// ErrEmptyInstance is returned when no cities are supplied.
	ErrEmptyInstance = errors.New("tsp: no cities")

	// ErrNilCity is returned when the city list contains a nil entry.
	ErrNilCity = errors.New("tsp: nil city")

	// ErrInvalidCost is returned when CostTo yields NaN or a negative value.
	ErrInvalidCost = errors.New("tsp: cost is NaN or negative")

	// ErrNonSquare is returned when a distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrInvalidRoute is returned when a route is not a permutation of 0..n-1.
	ErrInvalidRoute = errors.New("tsp: route is not a permutation")

	// ErrStartOutOfRange is returned when Options.StartCity is ≥ n.
	ErrStartOutOfRange = errors.New("tsp: start city out of range")

	// ErrUnsupportedAlgorithm is returned by Solve and ParseAlgorithm for unknown algorithms.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")
)

// City is an opaque location supplied by the caller.
// CostTo returns the non-negative cost of travelling to other, or +Inf
// when there is no direct edge.
type City interface {
	CostTo(other City) float64
}

// Algorithm selects a solver variant in Solve.
type Algorithm int

const (
	// AlgoRandom draws random permutations until one is feasible.
	AlgoRandom Algorithm = iota
	// AlgoGreedy is the randomized-restart nearest-neighbour constructor.
	AlgoGreedy
	// AlgoBranchAndBound is the reduced-cost-matrix best-first search.
	AlgoBranchAndBound
	// AlgoTwoOpt is the greedy tour refined by 2-opt local search.
	AlgoTwoOpt
)

var algoNames = [...]string{
	AlgoRandom:         "random",
	AlgoGreedy:         "greedy",
	AlgoBranchAndBound: "bnb",
	AlgoTwoOpt:         "2opt",
}

// String returns the short name used by ParseAlgorithm and the CLI.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algoNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algoNames[a]
}

// ParseAlgorithm maps a short name (case-insensitive) to an Algorithm.
// "branch-and-bound" and "two-opt" are accepted as aliases.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "default":
		return AlgoRandom, nil
	case "greedy", "nn":
		return AlgoGreedy, nil
	case "bnb", "branch-and-bound", "branchandbound":
		return AlgoBranchAndBound, nil
	case "2opt", "two-opt", "twoopt", "fancy":
		return AlgoTwoOpt, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}

// DefaultTimeLimit is the wall-clock budget used by DefaultOptions.
const DefaultTimeLimit = 60 * time.Second

// Options configures a single solve call.
type Options struct {
	// TimeLimit is the wall-clock budget. Zero or negative means unlimited
	// (the context deadline, if any, still applies).
	TimeLimit time.Duration

	// Seed drives every random choice (start cities, permutations).
	// Seed==0 selects a fixed default stream; runs are reproducible per seed.
	Seed int64

	// StartCity fixes the branch-and-bound root city. Negative ⇒ random.
	StartCity int

	// Logger receives Debug-level progress events. nil ⇒ zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns a 60 s budget, default seed, random start and a no-op logger.
func DefaultOptions() Options {
	return Options{
		TimeLimit: DefaultTimeLimit,
		StartCity: -1,
		Logger:    zap.NewNop(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}

// Result is the record returned by every solver.
type Result struct {
	// Algorithm that produced the result.
	Algorithm Algorithm

	// Cost of the closed tour, +Inf if no feasible tour was found.
	Cost float64

	// Time is the wall-clock time spent inside the solver.
	Time time.Duration

	// Count is algorithm dependent: permutations tried (random), 1/0 for
	// success (greedy), improving complete tours found (branch-and-bound),
	// accepted reversals (2-opt).
	Count int

	// Route holds city indices in visit order; the return edge to Route[0] is implicit.
	Route []int

	// Solution holds the cities of Route, or nil when no tour was found.
	Solution []City

	// Search-tree counters; nil for algorithms that do not build a tree.
	MaxFrontierSize *int
	TotalStates     *int
	PrunedStates    *int

	// Optimal is true only when branch-and-bound exhausted its frontier
	// before the budget ran out.
	Optimal bool
}

// Seconds returns Time in seconds.
func (r Result) Seconds() float64 { return r.Time.Seconds() }

// Found reports whether a feasible tour is present.
func (r Result) Found() bool { return r.Solution != nil }

func intPtr(v int) *int { return &v }
