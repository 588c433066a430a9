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

package interpolatable

import (
	"golang.org/x/exp/slices"

	"seehuhn.de/go/interpolatable/geom"
	"seehuhn.de/go/interpolatable/matching"
)

// contourOrder decides whether glyph b's contours need reassigning to
// line up with glyph a's before the per-contour checks run.
//
// It tries four Hungarian solves: the control-polygon descriptors, the
// Green's-theorem descriptors, and both of those again with b's
// signed-size term negated (to catch a reversed winding masquerading as
// a reordering). If any of the four matches its own identity cost, the
// current order is accepted as-is. Otherwise the worse of the two
// non-negated solves (by cost-over-identity ratio) is returned.
func contourOrder(a, b *Glyph) (tolerance float64, m matching.Matching, ok bool) {
	n := len(a.ControlVectors)
	if n <= 1 {
		return 1.0, nil, false
	}

	matchControl, costControl, idControl := solveFor(a.ControlVectors, b.ControlVectors)
	if costControl == idControl {
		return 1.0, nil, false
	}

	matchGreen, costGreen, idGreen := solveFor(a.GreenVectors, b.GreenVectors)
	if costGreen == idGreen {
		return 1.0, nil, false
	}

	_, costControlRev, idControlRev := solveFor(a.ControlVectors, negateFirst(b.ControlVectors))
	if costControlRev == idControlRev {
		return 1.0, nil, false
	}

	_, costGreenRev, idGreenRev := solveFor(a.GreenVectors, negateFirst(b.GreenVectors))
	if costGreenRev == idGreenRev {
		return 1.0, nil, false
	}

	chosen, cost, id := matchControl, costControl, idControl
	if costControl/idControl >= costGreen/idGreen {
		chosen, cost, id = matchGreen, costGreen, idGreen
	}

	tolerance = 1.0
	if id != 0 {
		tolerance = cost / id
	}
	return tolerance, chosen, true
}

// solveFor builds the n x n squared-distance cost matrix between two
// equal-length sets of contour descriptor vectors and solves the minimum
// cost assignment, also returning the cost of leaving the order alone
// (the matrix trace).
func solveFor(v0, v1 [][]float64) (m matching.Matching, cost, identity float64) {
	n := len(v0)
	costMatrix := make([][]float64, n)
	for i := range costMatrix {
		row := make([]float64, n)
		for j := range row {
			row[j] = geom.VdiffHypot2(v0[i], v1[j])
		}
		costMatrix[i] = row
	}
	assign, total := matching.Solve(costMatrix)
	return matching.FromAssignment(assign), total, matching.Trace(costMatrix)
}

// negateFirst returns a copy of vectors with the sign of each vector's
// first (signed-size) element flipped, simulating a reversed winding.
func negateFirst(vectors [][]float64) [][]float64 {
	out := make([][]float64, len(vectors))
	for i, v := range vectors {
		cp := slices.Clone(v)
		if len(cp) > 0 {
			cp[0] = -cp[0]
		}
		out[i] = cp
	}
	return out
}

// identitySlice returns [0, 1, ..., n-1].
func identitySlice(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
