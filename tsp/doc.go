// Package tsp solves the Travelling Salesman Problem inside a wall-clock budget.
//
// Inputs are opaque cities exposing CostTo (+Inf = no edge); every solver
// builds a dense cost matrix once and returns a Result record with the
// cost, elapsed time, an algorithm-dependent count and the tour. Branch and
// bound also reports search-tree counters.
//
// Solvers:
//
//   - BranchAndBound: best-first search over reduced cost matrices.
//     Lower bound of a partial tour = sum of row/column reductions plus the
//     reduced cost of every chosen edge. Frontier key 2·bound/depth favours
//     cheap, deep states. Seeded by Greedy; optimal when the frontier empties
//     before the budget.
//     Complexity: exponential worst case, O(n²) memory per queued state.
//
//   - Greedy: nearest-neighbour walk with randomized restarts, each start
//     tried at most once. Complexity: O(n³) worst case.
//
//   - TwoOpt: greedy seed refined by 2-opt segment reversals until a local
//     optimum. Complexity: O(n³) per pass.
//
//   - RandomTour: random permutations until one is feasible (baseline).
//
// Failure model: malformed input (no cities, NaN or negative costs) returns a
// sentinel error. An infeasible instance or an expired budget is not an
// error: Result.Cost is +Inf (or the best cost so far) and Result.Solution
// is nil when no tour was found.
//
// All solvers are single-threaded and deterministic for a given
// Options.Seed (up to where the deadline cuts the search). Separate calls
// share nothing and may run concurrently.
//
//	cities, _ := tsp.CitiesFromRows(rows)
//	res, _ := tsp.BranchAndBound(ctx, cities, tsp.DefaultOptions())
//	fmt.Println(res.Cost, res.Route, *res.TotalStates)
package tsp
