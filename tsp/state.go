// Package tsp - branch-and-bound search states (reduced cost matrix).
//
// A state is one node of the search tree: a partial route starting at the
// root city, the reduced cost matrix that encodes which edges are still
// allowed, and the admissible lower bound on every tour extending the route.
//
// Expanding a state along edge from→to (see child):
//  1. costOfEdge = M[from][to] (already reduced, so it is the extra cost
//     beyond what the bound has paid for).
//  2. Row from := Inf   (from is never departed again).
//  3. Col to   := Inf   (to is never entered again).
//  4. M[to][from] := Inf (no premature return), unless to→from is the
//     closing edge itself (two-city instances).
//  5. Reduce every row/column not yet infinited-out.
//  6. lb(child) = lb(parent) + costOfEdge + reduction.
//
// Every term added in step 6 is non-negative (or +Inf), so bounds never
// decrease from parent to child.
//
// Each state owns its matrix and sets; nothing is shared with the parent.
//
// Complexity: child O(n²) time and space.
package tsp

import (
	"github.com/yourbasic/bit"

	"github.com/katalvlaran/tourbound/matrix"
)

type state struct {
	m          *matrix.Dense
	lowerBound float64
	depth      int   // len(route), ≥ 1
	route      []int // visit order, route[0] is the root city
	visited    *bit.Set
	doneRows   *bit.Set // rows already infinited-out
	doneCols   *bit.Set // columns already infinited-out
}

// newRootState clones cost, reduces all rows then all columns and starts the
// route at start.
func newRootState(cost *matrix.Dense, start int) *state {
	m := cost.CloneDense()
	lb := m.Reduce(nil, nil)

	return &state{
		m:          m,
		lowerBound: lb,
		depth:      1,
		route:      []int{start},
		visited:    bit.New(start),
		doneRows:   new(bit.Set),
		doneCols:   new(bit.Set),
	}
}

// last is the city the route currently ends at.
func (s *state) last() int { return s.route[len(s.route)-1] }

// complete reports whether the route covers all n cities.
func (s *state) complete(n int) bool { return s.depth == n }

// key is the frontier priority: cheap and deep states first.
func (s *state) key() float64 { return 2 * s.lowerBound / float64(s.depth) }

// child builds the state reached by travelling from s.last() to the
// unvisited city to. The parent is not modified.
func (s *state) child(to int) *state {
	from := s.last()
	m := s.m.CloneDense()
	edge := m.Get(from, to)

	m.InfRow(from)
	m.InfCol(to)
	// With two cities the return edge to→from is the closing edge of the tour.
	if !(from == s.route[0] && s.depth+1 == m.Rows()) {
		_ = m.Set(to, from, matrix.Inf)
	}

	rows := new(bit.Set).Set(s.doneRows).Add(from)
	cols := new(bit.Set).Set(s.doneCols).Add(to)
	reduction := m.Reduce(rows.Contains, cols.Contains)

	route := make([]int, len(s.route), len(s.route)+1)
	copy(route, s.route)

	return &state{
		m:          m,
		lowerBound: s.lowerBound + edge + reduction,
		depth:      s.depth + 1,
		route:      append(route, to),
		visited:    new(bit.Set).Set(s.visited).Add(to),
		doneRows:   rows,
		doneCols:   cols,
	}
}

// release drops the matrix once the state has been expanded; the route and
// bound stay readable.
func (s *state) release() { s.m = nil }
