// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbound/matrix"
	"github.com/katalvlaran/tourbound/tsp"
)

const (
	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(7)

	// timeGenerous is a budget no small test instance comes close to.
	timeGenerous = 30 * time.Second
)

var inf = math.Inf(1)

// fourCityRows is the classic 4-city instance; the optimal tour 0→1→3→2→0 costs 80.
func fourCityRows() [][]float64 {
	return [][]float64{
		{inf, 10, 15, 20},
		{10, inf, 35, 25},
		{15, 35, inf, 30},
		{20, 25, 30, inf},
	}
}

// isolatedRows builds an n×n instance where city iso has no finite edge at all.
func isolatedRows(n, iso int) [][]float64 {
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			switch {
			case i == j, i == iso, j == iso:
				rows[i][j] = inf
			default:
				rows[i][j] = float64(1 + (i+j)%5)
			}
		}
	}

	return rows
}

// randomRows builds an asymmetric n×n instance with integer costs in [1,maxW];
// each off-diagonal edge is missing with probability missing.
func randomRows(rng *rand.Rand, n int, maxW int, missing float64) [][]float64 {
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i == j || rng.Float64() < missing {
				rows[i][j] = inf
				continue
			}
			rows[i][j] = float64(1 + rng.Intn(maxW))
		}
	}

	return rows
}

// mustCities wraps rows as cities.
func mustCities(t *testing.T, rows [][]float64) []tsp.City {
	t.Helper()
	cities, err := tsp.CitiesFromRows(rows)
	require.NoError(t, err)

	return cities
}

// mustDense copies rows into a dense matrix.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// testOptions returns deterministic options with a generous budget.
func testOptions() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Seed = seedDet
	opts.TimeLimit = timeGenerous

	return opts
}

// bruteForce returns the optimal closed-tour cost by enumerating every
// permutation that starts at city 0 (n ≤ 9).
func bruteForce(rows [][]float64) float64 {
	n := len(rows)
	if n == 1 {
		return 0
	}
	best := inf
	perm := make([]int, n)
	used := make([]bool, n)
	perm[0], used[0] = 0, true

	var rec func(depth int, acc float64)
	rec = func(depth int, acc float64) {
		if acc >= best {
			return
		}
		if depth == n {
			if c := acc + rows[perm[n-1]][0]; c < best {
				best = c
			}
			return
		}
		var v int
		for v = 1; v < n; v++ {
			if used[v] || math.IsInf(rows[perm[depth-1]][v], 1) {
				continue
			}
			used[v], perm[depth] = true, v
			rec(depth+1, acc+rows[perm[depth-1]][v])
			used[v] = false
		}
	}
	rec(1, 0)

	return best
}

// requireValidTour asserts that res holds a permutation whose closed cost equals res.Cost.
func requireValidTour(t *testing.T, rows [][]float64, res tsp.Result) {
	t.Helper()
	n := len(rows)
	require.NoError(t, tsp.ValidateRoute(res.Route, n))
	require.Len(t, res.Solution, n)
	require.Equal(t, tsp.RouteCost(mustDense(t, rows), res.Route), res.Cost)
	var k int
	for k = range res.Route {
		mc, ok := res.Solution[k].(tsp.MatrixCity)
		require.True(t, ok)
		require.Equal(t, res.Route[k], mc.Index())
	}
}

// canonical rotates route to start at 0 and orients it so route[1] < route[n-1].
func canonical(route []int) []int {
	n := len(route)
	out := make([]int, n)
	var k, at int
	for k = range route {
		if route[k] == 0 {
			at = k
		}
	}
	for k = 0; k < n; k++ {
		out[k] = route[(at+k)%n]
	}
	if n > 2 && out[1] > out[n-1] {
		for k = 1; k < n-k; k++ {
			out[k], out[n-k] = out[n-k], out[k]
		}
	}

	return out
}
