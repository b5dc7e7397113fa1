// Package tsp - city adapters and cost-matrix construction.
//
// Solvers consume []City and materialize one dense cost matrix per call.
// MatrixCity lets callers that already hold a distance matrix use the
// same entry points without writing their own City type.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tourbound/matrix"
)

// matrixSource is shared by all cities built from one matrix; pointer
// identity tells MatrixCity whether two cities belong together.
type matrixSource struct {
	m matrix.Matrix
}

// MatrixCity is a City backed by row/column idx of a distance matrix.
type MatrixCity struct {
	src *matrixSource
	idx int
}

var _ City = MatrixCity{}

// Index returns the row/column of the city in its source matrix.
func (c MatrixCity) Index() int { return c.idx }

// CostTo reads the matrix entry (c, other). Cities from a different
// matrix, or of another type, are unreachable (+Inf).
func (c MatrixCity) CostTo(other City) float64 {
	o, ok := other.(MatrixCity)
	if !ok || o.src != c.src || c.src == nil {
		return math.Inf(1)
	}
	w, err := c.src.m.At(c.idx, o.idx)
	if err != nil {
		return math.Inf(1)
	}

	return w
}

// CitiesFromMatrix wraps every row of a square matrix as a City.
// The matrix is read lazily, so it must not be mutated while solving.
func CitiesFromMatrix(m matrix.Matrix) ([]City, error) {
	if m == nil || m.Rows() == 0 {
		return nil, ErrEmptyInstance
	}
	if m.Rows() != m.Cols() {
		return nil, ErrNonSquare
	}
	src := &matrixSource{m: m}
	out := make([]City, m.Rows())
	var i int
	for i = range out {
		out[i] = MatrixCity{src: src, idx: i}
	}

	return out, nil
}

// CitiesFromRows copies rows into a dense matrix and wraps it as cities.
func CitiesFromRows(rows [][]float64) ([]City, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInstance
	}
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("tsp: %w", err)
	}

	return CitiesFromMatrix(m)
}

// BuildCostMatrix evaluates CostTo for every ordered pair. The diagonal is
// always +Inf so no city is ever chosen as its own successor.
//
// Errors: ErrEmptyInstance, ErrNilCity, ErrInvalidCost (wrapped with the pair).
// Complexity: O(n²) CostTo calls.
func BuildCostMatrix(cities []City) (*matrix.Dense, error) {
	n := len(cities)
	if n == 0 {
		return nil, ErrEmptyInstance
	}
	var i, j int
	for i = range cities {
		if cities[i] == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilCity, i)
		}
	}
	m, err := matrix.NewSquare(n, matrix.Inf)
	if err != nil {
		return nil, err
	}
	var w float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			w = cities[i].CostTo(cities[j])
			if math.IsNaN(w) || w < 0 {
				return nil, fmt.Errorf("%w: %d→%d = %v", ErrInvalidCost, i, j, w)
			}
			_ = m.Set(i, j, w) // indices are in range by construction
		}
	}

	return m, nil
}

// citiesOf maps a route of indices back to the caller's cities.
func citiesOf(cities []City, route []int) []City {
	if route == nil {
		return nil
	}
	out := make([]City, len(route))
	var k int
	for k = range route {
		out[k] = cities[route[k]]
	}

	return out
}
