// seehuhn.de/go/interpolatable - check whether glyphs interpolate cleanly
// Copyright (C) 2022  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package matching solves the minimum-cost assignment between two equal
// size sets of contour descriptor vectors: which contour of master B
// should play the role of contour i of master A, if any reordering at
// all is required.
//
// No library in this module's dependency graph exposes a weighted
// bipartite assignment solver (lvlath's flow package, the closest
// relative, only computes unweighted maximum flow), so the classical
// O(n^3) Hungarian algorithm with vertex potentials is implemented here
// directly.
package matching

import "math"

// Solve finds a minimum-cost perfect assignment over a square cost
// matrix: assign[i] is the column matched to row i, and total is the sum
// of the matched entries. The matrix must be square; Solve panics
// otherwise, since the checks that call it have already established
// equal contour counts.
func Solve(cost [][]float64) (assign []int, total float64) {
	n := len(cost)
	for _, row := range cost {
		if len(row) != n {
			panic("matching: cost matrix must be square")
		}
	}
	if n == 0 {
		return nil, 0
	}

	const inf = math.MaxFloat64 / 2

	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1) // p[j] = row assigned to column j, 1-based rows; 0 = none
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assign = make([]int, n)
	for j := 1; j <= n; j++ {
		assign[p[j]-1] = j - 1
	}

	total = 0
	for i, j := range assign {
		total += cost[i][j]
	}
	return assign, total
}

// Trace returns the sum of the diagonal of a square matrix: the cost of
// the identity assignment (row i matched to column i).
func Trace(cost [][]float64) float64 {
	var sum float64
	for i := range cost {
		sum += cost[i][i]
	}
	return sum
}
