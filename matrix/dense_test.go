// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbound/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewSquare(-1, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestSetGet checks that values written via Set are visible through At, Get and Row.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)
	require.Equal(t, 7.5, m.Get(1, 2))

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 7.5}, row)
}

// TestCloneIndependence verifies that mutations to a clone do not affect the original.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewSquare(2, 1)
	require.NoError(t, err)

	c := m.CloneDense()
	require.NoError(t, c.Set(0, 0, 99))
	require.Equal(t, 1.0, m.Get(0, 0))

	var iface matrix.Matrix = m
	cl := iface.Clone()
	require.NoError(t, cl.Set(1, 1, -3))
	require.Equal(t, 1.0, m.Get(1, 1))
}

// TestNewDenseFrom covers the copy constructor and its shape guards.
func TestNewDenseFrom(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.NewDenseFrom(src)
	require.NoError(t, err)
	src[0][0] = 100
	require.Equal(t, 1.0, m.Get(0, 0), "source must be copied")

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestStringOutput checks the debug representation.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, matrix.Inf}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, +Inf]\n", m.String())
}
