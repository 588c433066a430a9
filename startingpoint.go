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

	"golang.org/x/exp/slices"

	"seehuhn.de/go/interpolatable/geom"
	"seehuhn.de/go/interpolatable/isomorph"
)

// startingPointLeeway is how close a proposed rotation must be to either
// end of the contour for the near-circular rescue below to kick in.
const startingPointLeeway = 3

// startingPoint looks for a contour whose first point does not line up
// with the corresponding contour of the other master: it compares master
// a's un-rotated characteristic against every admissible rotation of
// master b's, and proposes the cheapest match.
//
// numPoints is the point count of b's contour at this index, used only
// to decide whether the proposed rotation is near either end of the
// contour (and so plausibly "the same start point, nearly-circular
// shape, slightly rotated" rather than a genuinely different one).
func startingPoint(
	numPoints int,
	m0, m1 isomorph.Isomorphisms,
	m0Vector, m1Vector []float64,
	tolerance float64,
) (thisTolerance float64, proposedRotation int, reverse bool, ok bool) {
	if len(m0) == 0 || len(m1) == 0 {
		return 0, 0, false, false
	}
	c0 := m0[0]

	costs := make([]float64, len(m1))
	for i, c1 := range m1 {
		costs[i] = isomorph.VdiffHypot2(c0.RotatedList, c1.RotatedList)
	}
	minIndex, minCost := argmin(costs)
	firstCost := costs[0]
	reverse = m1[minIndex].Reverse

	if minCost < firstCost*tolerance && !reverse {
		proposed := m1[minIndex].Rotation
		if proposed <= startingPointLeeway || proposed >= numPoints-startingPointLeeway {
			newC0, newM1 := rescueRotate(c0, m1, m0Vector, m1Vector)
			costs = make([]float64, len(newM1))
			for i, c1 := range newM1 {
				costs[i] = isomorph.VdiffHypot2(newC0, c1.RotatedList)
			}
			minIndex, minCost = argmin(costs)
			firstCost = costs[0]
		}
	}

	thisTolerance = 1.0
	if firstCost != 0 {
		thisTolerance = minCost / firstCost
	}
	return thisTolerance, m1[minIndex].Rotation, reverse, true
}

// rescueRotate recovers each contour's covariance ellipse from its
// Green descriptor and rotates/scales by it, in an attempt to align two
// near-circular, slightly-rotated contours before concluding their start
// points genuinely differ.
func rescueRotate(
	c0 isomorph.Characteristic,
	m1 isomorph.Isomorphisms,
	m0Vector, m1Vector []float64,
) ([]geom.Vec2, isomorph.Isomorphisms) {
	transform := func(vector []float64) geom.Matrix {
		stdX := vector[3] * 0.5
		stdY := vector[4] * 0.5
		correlation := vector[5]
		if correlation != 0 {
			correlation /= math.Abs(vector[0])
		}
		a := stdX * stdX
		c := stdY * stdY
		b := correlation * stdX * stdY
		delta := math.Sqrt(math.Pow((a-c)*0.5, 2) + b*b)
		lambda1 := (a+c)*0.5 + delta
		lambda2 := (a+c)*0.5 - delta
		var theta float64
		switch {
		case b != 0:
			theta = math.Atan2(lambda1-a, b)
		case a < c:
			theta = math.Pi * 0.5
		default:
			theta = 0
		}
		return geom.Rotate(theta).ThenScaleNonUniform(math.Sqrt(lambda1), math.Sqrt(lambda2))
	}

	t0 := transform(m0Vector)
	t1 := transform(m1Vector)

	newC0 := slices.Clone(c0.RotatedList)
	if len(newC0) > 0 {
		newC0[0] = t0.Apply(newC0[0].ToPoint()).ToVec2()
	}

	newM1 := make(isomorph.Isomorphisms, len(m1))
	for i, c1 := range m1 {
		newList := make([]geom.Vec2, len(c1.RotatedList))
		for j, p := range c1.RotatedList {
			newList[j] = t1.Apply(p.ToPoint()).ToVec2()
		}
		newM1[i] = isomorph.Characteristic{RotatedList: newList, Rotation: c1.Rotation, Reverse: c1.Reverse}
	}
	return newC0, newM1
}

func argmin(xs []float64) (index int, value float64) {
	value = xs[0]
	for i, x := range xs[1:] {
		if x < value {
			value = x
			index = i + 1
		}
	}
	return index, value
}
