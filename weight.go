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
	"math"

	"seehuhn.de/go/interpolatable/curvestats"
	"seehuhn.de/go/interpolatable/geom"
	"seehuhn.de/go/interpolatable/problem"
)

// weightSlack absorbs floating-point noise around the over/underweight
// thresholds below, the same way the reference checker's 1e-5 does.
const weightSlack = 1e-5

// overUnderweight compares the midpoint interpolation of one contour
// against its two masters' sizes (the squared signed-size term of the
// Green descriptor, a scale-only proxy for area). A midpoint noticeably
// larger than both masters is reported as overweight; noticeably smaller
// than their geometric mean is reported as underweight.
//
// The check only applies when both masters wind the contour the same
// way: a sign mismatch means the contour has already reversed between
// masters, which the starting-point check reports through its reverse
// flag.
func overUnderweight(masters problem.Masters, contour int, m0Vector, m1Vector []float64, mid geom.Path, tolerance float64) []problem.Problem {
	if (m0Vector[0] < 0) != (m1Vector[0] < 0) {
		return nil
	}

	midVector := curvestats.Descriptor(curvestats.Green(mid))
	size0 := m0Vector[0] * m0Vector[0]
	size1 := m1Vector[0] * m1Vector[0]
	midSize := midVector[0] * midVector[0]

	var problems []problem.Problem

	expectedMax := math.Max(size0, size1)
	if weightSlack+expectedMax/tolerance < midSize {
		thisTolerance := 0.0
		if midSize != 0 {
			thisTolerance = expectedMax / midSize
		}
		problems = append(problems, problem.Overweight(masters, contour, thisTolerance, size0, size1))
	}

	expectedGeoMean := math.Sqrt(size0 * size1)
	if expectedGeoMean*tolerance > midSize+weightSlack {
		thisTolerance := 0.0
		if expectedGeoMean != 0 {
			thisTolerance = midSize / expectedGeoMean
		}
		problems = append(problems, problem.Underweight(masters, contour, thisTolerance, size0, size1))
	}

	return problems
}
