// SPDX-License-Identifier: MIT

// Package matrix - reduced cost matrix operations.
//
// Row/column reduction is the bounding primitive of the classic
// reduced-matrix TSP branch-and-bound: subtracting the minimum of a row
// (departures from a city) or a column (arrivals at a city) from every entry
// keeps the relative order of all tours while the subtracted amounts sum to
// an admissible lower bound on any tour still allowed by the matrix.
//
// Policy:
//   - Inf entries stay Inf (Inf - m == Inf).
//   - A row/column whose minimum is 0 or Inf is left untouched; the minimum is
//     still returned so callers add 0 or Inf to their bound.
//   - A returned Inf means the row/column has no finite entry left: any
//     state built on this matrix is infeasible.
//
// Complexity: ReduceRow/ReduceCol O(n); Reduce O(n²).
package matrix

// ReduceRow subtracts the minimum of row r from every entry of that row and
// returns the minimum. Out-of-range r returns 0 and leaves m untouched.
func (m *Dense) ReduceRow(r int) float64 {
	if r < 0 || r >= m.r {
		return 0
	}
	row := m.data[r*m.c : (r+1)*m.c]
	lo := Inf
	var j int
	for j = range row {
		if row[j] < lo {
			lo = row[j]
		}
	}
	if lo == 0 || lo == Inf {
		return lo
	}
	for j = range row {
		row[j] -= lo
	}

	return lo
}

// ReduceCol subtracts the minimum of column c from every entry of that column
// and returns the minimum. Out-of-range c returns 0 and leaves m untouched.
func (m *Dense) ReduceCol(c int) float64 {
	if c < 0 || c >= m.c {
		return 0
	}
	lo := Inf
	var i int
	for i = 0; i < m.r; i++ {
		if v := m.data[i*m.c+c]; v < lo {
			lo = v
		}
	}
	if lo == 0 || lo == Inf {
		return lo
	}
	for i = 0; i < m.r; i++ {
		m.data[i*m.c+c] -= lo
	}

	return lo
}

// Reduce reduces every row not skipped by skipRow, then every column not
// skipped by skipCol, and returns the summed reduction cost. nil predicates
// skip nothing. Rows are always reduced before columns.
func (m *Dense) Reduce(skipRow, skipCol func(int) bool) float64 {
	var (
		total float64
		k     int
	)
	for k = 0; k < m.r; k++ {
		if skipRow != nil && skipRow(k) {
			continue
		}
		total += m.ReduceRow(k)
	}
	for k = 0; k < m.c; k++ {
		if skipCol != nil && skipCol(k) {
			continue
		}
		total += m.ReduceCol(k)
	}

	return total
}

// InfRow overwrites row r with Inf.
func (m *Dense) InfRow(r int) {
	if r < 0 || r >= m.r {
		return
	}
	row := m.data[r*m.c : (r+1)*m.c]
	var j int
	for j = range row {
		row[j] = Inf
	}
}

// InfCol overwrites column c with Inf.
func (m *Dense) InfCol(c int) {
	if c < 0 || c >= m.c {
		return
	}
	var i int
	for i = 0; i < m.r; i++ {
		m.data[i*m.c+c] = Inf
	}
}
