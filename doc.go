// Package tourbound is a time-budgeted solver kit for the travelling
// salesperson problem over directed cost matrices.
//
// 🚀 What is inside?
//
//	• Branch and bound: reduced-cost-matrix lower bounds, best-first
//	  frontier, greedy seed, proof of optimality when the search finishes
//	• Greedy: nearest-neighbour walk with randomized restarts
//	• 2-opt: local improvement of a greedy seed
//	• Random: random-permutation baseline
//
// ✨ Why tourbound?
//
//   - Every solver honours a wall-clock budget and a context
//   - Failure is data: no tour found ⇒ Cost +Inf, Solution nil
//   - Asymmetric costs and missing edges (+Inf) are first-class
//   - Deterministic for a fixed seed
//
// Layout:
//
//	matrix/         dense float64 matrix with row/column reduction
//	tsp/            the four solvers, Solve dispatcher, route helpers
//	config/         YAML instance + run parameters
//	cmd/tspsolve/   command-line front end
//
// Quick example:
//
//	cities, _ := tsp.CitiesFromRows(rows)
//	res, err := tsp.Solve(ctx, tsp.AlgoBranchAndBound, cities, tsp.DefaultOptions())
//	if err != nil { ... }
//	fmt.Println(res.Cost, res.Route, res.Optimal)
package tourbound
