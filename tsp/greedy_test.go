package tsp_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbound/tsp"
)

func TestGreedy_FourCity(t *testing.T) {
	rows := fourCityRows()
	res, err := tsp.Greedy(context.Background(), mustCities(t, rows), testOptions())
	require.NoError(t, err)
	require.Equal(t, tsp.AlgoGreedy, res.Algorithm)
	require.Equal(t, 1, res.Count)
	requireValidTour(t, rows, res)
	require.Contains(t, []float64{80, 95}, res.Cost)

	// Greedy does not build a search tree.
	require.Nil(t, res.MaxFrontierSize)
	require.Nil(t, res.TotalStates)
	require.Nil(t, res.PrunedStates)
	require.False(t, res.Optimal)
}

// TestGreedy_IsolatedCity terminates after trying every start once.
func TestGreedy_IsolatedCity(t *testing.T) {
	opts := testOptions()
	opts.TimeLimit = 0 // unlimited: termination must not rely on the clock
	res, err := tsp.Greedy(context.Background(), mustCities(t, isolatedRows(7, 0)), opts)
	require.NoError(t, err)
	require.Equal(t, inf, res.Cost)
	require.Nil(t, res.Solution)
	require.Equal(t, 0, res.Count)
}

// TestGreedy_RestartsPastDeadEnds: walks from 0 and 1 take the cheap 1→3
// shortcut and get stuck; greedy restarts until a start closes the ring.
func TestGreedy_RestartsPastDeadEnds(t *testing.T) {
	// Ring 0→1→2→3→0 (cost 1 each) plus the trap 1→3 (0.5).
	rows := [][]float64{
		{inf, 1, inf, inf},
		{inf, inf, 1, 0.5},
		{inf, inf, inf, 1},
		{1, inf, inf, inf},
	}
	var seed int64
	for seed = 1; seed <= 8; seed++ {
		opts := testOptions()
		opts.Seed = seed
		res, err := tsp.Greedy(context.Background(), mustCities(t, rows), opts)
		require.NoError(t, err)
		require.Equal(t, 4.0, res.Cost, "seed %d", seed)
		require.Equal(t, []int{0, 1, 2, 3}, canonical(res.Route))
	}
}

func TestGreedy_DeterministicPerSeed(t *testing.T) {
	rows := randomRows(rand.New(rand.NewSource(1)), 12, 50, 0)
	cities := mustCities(t, rows)
	a, err := tsp.Greedy(context.Background(), cities, testOptions())
	require.NoError(t, err)
	b, err := tsp.Greedy(context.Background(), cities, testOptions())
	require.NoError(t, err)
	require.Equal(t, a.Route, b.Route)
	require.Equal(t, a.Cost, b.Cost)
}

func TestGreedy_Errors(t *testing.T) {
	_, err := tsp.Greedy(context.Background(), []tsp.City{}, testOptions())
	require.ErrorIs(t, err, tsp.ErrEmptyInstance)
}
