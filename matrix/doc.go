// SPDX-License-Identifier: MIT

// Package matrix provides the dense cost matrix used by the tsp solvers.
//
// Dense is a row-major float64 matrix with bounds-checked At/Set, an unchecked
// Get for hot loops, and in-place reduction primitives (ReduceRow, ReduceCol,
// Reduce, InfRow, InfCol) for reduced-cost-matrix branch-and-bound.
//
// Missing edges are encoded as matrix.Inf (+Inf). Reduction never turns an
// Inf entry finite, so infeasibility propagates into lower bounds.
//
//	m, _ := matrix.NewDenseFrom([][]float64{
//		{matrix.Inf, 10, 15},
//		{10, matrix.Inf, 35},
//		{15, 35, matrix.Inf},
//	})
//	lb := m.Reduce(nil, nil) // admissible lower bound on any tour
package matrix
