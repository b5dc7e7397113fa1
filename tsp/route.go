// Package tsp - route utilities shared by all solvers.
//
// A route is an open sequence of distinct city indices; the edge from the
// last city back to route[0] is implicit. A single-city route is a valid
// tour of cost 0.
package tsp

import (
	"math"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/tourbound/matrix"
)

// closingCost is the cost of the implicit return edge of route.
func closingCost(cost *matrix.Dense, route []int) float64 {
	if len(route) <= 1 {
		return 0
	}

	return cost.Get(route[len(route)-1], route[0])
}

// RouteCost returns the cost of the closed tour described by route, or +Inf
// when any edge (including the return edge) is missing or an index is out
// of range.
//
// Complexity: O(n).
func RouteCost(cost *matrix.Dense, route []int) float64 {
	if cost == nil || len(route) == 0 {
		return math.Inf(1)
	}
	n := cost.Rows()
	var (
		total float64
		k     int
	)
	for k = range route {
		if route[k] < 0 || route[k] >= n {
			return math.Inf(1)
		}
	}
	for k = 1; k < len(route); k++ {
		total += cost.Get(route[k-1], route[k])
	}
	total += closingCost(cost, route)

	return total
}

// ValidateRoute checks that route is a permutation of 0..n-1.
//
// Complexity: O(n).
func ValidateRoute(route []int, n int) error {
	if len(route) != n || n == 0 {
		return ErrInvalidRoute
	}
	seen := new(bit.Set)
	var v int
	for _, v = range route {
		if v < 0 || v >= n || seen.Contains(v) {
			return ErrInvalidRoute
		}
		seen.Add(v)
	}

	return nil
}

// reverseInPlace reverses route[i:j].
func reverseInPlace(route []int, i, j int) {
	for j--; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
}

// hasDeadEnd reports whether some city has no finite outgoing or no finite
// incoming edge; such an instance admits no tour when n > 1.
//
// Complexity: O(n²).
func hasDeadEnd(cost *matrix.Dense) bool {
	n := cost.Rows()
	if n <= 1 {
		return false
	}
	var i, j int
	for i = 0; i < n; i++ {
		out, in := false, false
		for j = 0; j < n && !(out && in); j++ {
			if !math.IsInf(cost.Get(i, j), 1) {
				out = true
			}
			if !math.IsInf(cost.Get(j, i), 1) {
				in = true
			}
		}
		if !out || !in {
			return true
		}
	}

	return false
}
