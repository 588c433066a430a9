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

	"seehuhn.de/go/interpolatable/glyf"
	"seehuhn.de/go/interpolatable/problem"
)

// kinkSmoothness bounds how close to colinear a junction's tangents must
// be (via the sine of the angle between them) for it to be considered a
// smooth point at all, and how far a candidate kink's deviation ratio may
// grow before it is judged a structural discontinuity rather than a
// visible-but-bounded kink.
const kinkSmoothness = 0.1

// DefaultKinkinessLength and DefaultKinkiness feed the deviation
// threshold below; DefaultUpem is the units-per-em a caller's tolerance
// and kinkiness are assumed to be expressed against when no font-specific
// value is available.
const (
	DefaultKinkinessLength = 0.002
	DefaultKinkiness       = 0.5
	DefaultUpem            = 1000
)

// kink looks for visible angles that appear, at smooth on-curve
// junctions, only in the midpoint interpolation of a contour and not in
// either master on its own: a sign that the two masters' handles rotate
// through the junction in incompatible ways.
func kink(masters problem.Masters, contour int, a, b glyf.Contour, tolerance, kinkiness float64, upem uint16) []problem.Problem {
	deviationThreshold := float64(upem) * DefaultKinkinessLength * DefaultKinkiness / kinkiness

	n := min(len(a), len(b))
	var problems []problem.Problem

	for i := 0; i < n; i++ {
		pt0, pt1 := a.At(i), b.At(i)
		if !pt0.IsControl || !pt1.IsControl {
			continue
		}
		pt0Prev, pt1Prev := a.At(i-1), b.At(i-1)
		pt0Next, pt1Next := a.At(i+1), b.At(i+1)
		if pt0Prev.IsControl && pt1Prev.IsControl {
			continue
		}

		d0Prev := pt0.Sub(pt0Prev.Point)
		d0Next := pt0Next.Sub(pt0.Point)
		d1Prev := pt1.Sub(pt1Prev.Point)
		d1Next := pt1Next.Sub(pt1.Point)

		sin0 := d0Prev.Cross(d0Next) / (d0Prev.Length() * d0Next.Length())
		sin1 := d1Prev.Cross(d1Next) / (d1Prev.Length() * d1Next.Length())
		if math.IsNaN(sin0) || math.IsNaN(sin1) || math.Abs(sin0) > kinkSmoothness || math.Abs(sin1) > kinkSmoothness {
			continue
		}

		if d0Prev.Dot(d0Next) < 0 || d1Prev.Dot(d1Next) < 0 {
			continue
		}

		ratio0 := d0Prev.Length() / (d0Prev.Length() + d0Next.Length())
		ratio1 := d1Prev.Length() / (d1Prev.Length() + d1Next.Length())
		if math.Abs(ratio0-ratio1) < kinkSmoothness {
			continue
		}

		midpoint := pt0.Point.Lerp(pt1.Point, 0.5)
		midPrev := pt0Prev.Point.Lerp(pt1Prev.Point, 0.5)
		midNext := pt0Next.Point.Lerp(pt1Next.Point, 0.5)
		midD0 := midpoint.Sub(midPrev)
		midD1 := midNext.Sub(midpoint)
		sinMid := midD0.Cross(midD1) / (midD0.Length() * midD1.Length())
		if math.IsNaN(sinMid) || math.Abs(sinMid)*(tolerance*kinkiness) <= kinkSmoothness {
			continue
		}

		cross := sinMid * midD0.Length() * midD1.Length()
		arcLen := midD0.Length() + midD1.Length()
		deviation := math.Abs(cross / arcLen)
		if deviation < deviationThreshold {
			continue
		}
		deviationRatio := deviation / arcLen
		if deviationRatio > kinkSmoothness {
			continue
		}

		thisTolerance := kinkSmoothness / (math.Abs(sinMid) * kinkiness)
		problems = append(problems, problem.Kink(masters, contour, i, thisTolerance))
	}

	return problems
}
