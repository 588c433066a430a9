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

import "seehuhn.de/go/interpolatable/problem"

// basicCompatibility is the first test run by [RunTests]: it checks only
// contour and node counts and on/off-curve agreement, never geometry. A
// non-empty result here means the two glyphs are not structurally
// comparable, and the remaining tests (which assume equal contour and
// node counts) are skipped entirely.
func basicCompatibility(a, b *Glyph, masters problem.Masters) []problem.Problem {
	var problems []problem.Problem

	if len(a.Curves) != len(b.Curves) {
		problems = append(problems, problem.PathCount(masters, len(a.Curves), len(b.Curves)))
	}

	n := min(len(a.Points), len(b.Points))
	for pathIndex := 0; pathIndex < n; pathIndex++ {
		p1, p2 := a.Points[pathIndex], b.Points[pathIndex]
		if len(p1) != len(p2) {
			problems = append(problems, problem.NodeCount(masters, pathIndex, len(p1), len(p2)))
		}

		m := min(len(p1), len(p2))
		for nodeIndex := 0; nodeIndex < m; nodeIndex++ {
			if p1[nodeIndex].IsControl != p2[nodeIndex].IsControl {
				problems = append(problems, problem.NodeIncompatibility(
					masters, pathIndex, nodeIndex, p1[nodeIndex].IsControl, p2[nodeIndex].IsControl))
			}
		}
	}

	return problems
}
