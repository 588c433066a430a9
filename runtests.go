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
	"seehuhn.de/go/interpolatable/geom"
	"seehuhn.de/go/interpolatable/matching"
	"seehuhn.de/go/interpolatable/problem"
)

// Options controls the tolerances used by [RunTests]. The zero Options is
// not usable directly; call [DefaultOptions] for the defaults the checker
// uses when a caller has no opinion of its own.
type Options struct {
	// Tolerance is the threshold on each test's goodness score (lower
	// is worse): a test reports a problem when its score falls below
	// Tolerance, so larger is stricter. The reference checker defaults
	// this to 0.95.
	Tolerance float64

	// Kinkiness scales the kink detector's deviation threshold, which is
	// inversely proportional to it; larger reports more kinks. Defaults
	// to 0.5.
	Kinkiness float64

	// Upem is the units-per-em the kink detector's absolute deviation
	// threshold is expressed against. Defaults to 1000.
	Upem uint16
}

// DefaultOptions returns the reference checker's default tolerances.
func DefaultOptions() *Options {
	return &Options{
		Tolerance: 0.95,
		Kinkiness: 0.5,
		Upem:      1000,
	}
}

// RunTests checks whether a and b, two renderings of the same glyph at
// different masters, can be linearly interpolated into a smooth,
// well-formed intermediate shape. It returns every problem found; an
// empty result means the two glyphs are compatible within opts'
// tolerances.
//
// Both Glyph values are read-only: RunTests never mutates a or b, and
// allocates its own reordered copies of b's per-contour data when the
// contour-order check calls for a reordering.
func RunTests(a, b *Glyph, opts *Options) []problem.Problem {
	if opts == nil {
		opts = DefaultOptions()
	}
	masters := problem.Masters{
		Name1: a.MasterName, Index1: a.MasterIndex,
		Name2: b.MasterName, Index2: b.MasterIndex,
	}

	problems := basicCompatibility(a, b, masters)
	if len(problems) > 0 {
		return problems
	}

	tolerance, order, hasOrder := contourOrder(a, b)

	bIsomorphisms := b.Isomorphisms
	bGreenVectors := b.GreenVectors
	bCurves := b.Curves
	bPoints := b.Points

	if hasOrder {
		if tolerance < opts.Tolerance {
			problems = append(problems, problem.ContourOrder(
				masters, tolerance, identitySlice(order.Len()), order.Columns()))
		}
		bIsomorphisms = matching.Reorder(order, bIsomorphisms)
		bGreenVectors = matching.Reorder(order, bGreenVectors)
		bCurves = matching.Reorder(order, bCurves)
		bPoints = matching.Reorder(order, bPoints)
	}

	mids := make([]geom.Path, len(a.Curves))
	midOK := make([]bool, len(a.Curves))
	for i := range a.Curves {
		if i >= len(bCurves) {
			break
		}
		mids[i], midOK[i] = geom.Lerp(a.Curves[i], bCurves[i])
	}

	n := min(len(a.Isomorphisms), len(bIsomorphisms))
	for ix := 0; ix < n; ix++ {
		contour0 := a.Isomorphisms[ix]
		contour1 := bIsomorphisms[ix]
		if len(contour0) == 0 || len(contour1) == 0 {
			continue
		}

		thisTolerance, proposedPoint, reverse, ok := startingPoint(
			len(bPoints[ix]), contour0, contour1, a.GreenVectors[ix], bGreenVectors[ix], opts.Tolerance)
		if ok && thisTolerance < opts.Tolerance {
			problems = append(problems, problem.WrongStartPoint(
				masters, ix, thisTolerance, proposedPoint, reverse))
		}

		if midOK[ix] {
			problems = append(problems, overUnderweight(
				masters, ix, a.GreenVectors[ix], bGreenVectors[ix], mids[ix], opts.Tolerance)...)
		}

		problems = append(problems, kink(
			masters, ix, a.Points[ix], bPoints[ix], opts.Tolerance, opts.Kinkiness, opts.Upem)...)
	}

	return problems
}
