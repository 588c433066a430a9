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
	"testing"

	"seehuhn.de/go/interpolatable/geom"
)

// staircase is an asymmetric 10-point polygon: no rotation of it coincides
// with itself, so the starting-point cost landscape has a single minimum.
var staircasePoints = []geom.Point{
	{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2},
	{X: 3, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 4}, {X: 0, Y: 4},
}

func staircase(points []geom.Point) geom.Path {
	var b geom.Builder
	b.MoveTo(points[0])
	for _, p := range points[1:] {
		b.LineTo(p)
	}
	b.ClosePath()
	return b.Path()
}

func rotatePoints(points []geom.Point, k int) []geom.Point {
	n := len(points)
	out := make([]geom.Point, n)
	for i := range out {
		out[i] = points[(i+k)%n]
	}
	return out
}

func TestStartingPointIdenticalContoursReportNoShift(t *testing.T) {
	a := FromPaths([]geom.Path{staircase(staircasePoints)})
	b := FromPaths([]geom.Path{staircase(staircasePoints)})

	thisTolerance, proposedRotation, reverse, ok := startingPoint(
		len(b.Points[0]), a.Isomorphisms[0], b.Isomorphisms[0],
		a.GreenVectors[0], b.GreenVectors[0], 0.95)
	if !ok {
		t.Fatal("expected ok")
	}
	if reverse {
		t.Error("identical contours should not propose a reversed traversal")
	}
	if proposedRotation != 0 {
		t.Errorf("proposedRotation = %d, want 0", proposedRotation)
	}
	if thisTolerance != 1.0 {
		t.Errorf("thisTolerance = %v, want 1.0 for a contour that already lines up", thisTolerance)
	}
}

func TestStartingPointDetectsRotatedStart(t *testing.T) {
	shifted := rotatePoints(staircasePoints, 5)

	a := FromPaths([]geom.Path{staircase(staircasePoints)})
	b := FromPaths([]geom.Path{staircase(shifted)})

	thisTolerance, proposedRotation, reverse, ok := startingPoint(
		len(b.Points[0]), a.Isomorphisms[0], b.Isomorphisms[0],
		a.GreenVectors[0], b.GreenVectors[0], 0.95)
	if !ok {
		t.Fatal("expected ok")
	}
	if reverse {
		t.Error("expected a forward (non-reversed) match")
	}
	if proposedRotation != 5 {
		t.Errorf("proposedRotation = %d, want 5", proposedRotation)
	}
	if thisTolerance > 1e-9 {
		t.Errorf("thisTolerance = %v, want ~0 for an exact rotational match", thisTolerance)
	}
}
