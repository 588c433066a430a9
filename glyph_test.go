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

func square(x0, y0, side float64) geom.Path {
	var b geom.Builder
	b.MoveTo(geom.Point{X: x0, Y: y0})
	b.LineTo(geom.Point{X: x0 + side, Y: y0})
	b.LineTo(geom.Point{X: x0 + side, Y: y0 + side})
	b.LineTo(geom.Point{X: x0, Y: y0 + side})
	b.ClosePath()
	return b.Path()
}

func triangle() geom.Path {
	var b geom.Builder
	b.MoveTo(geom.Point{X: 0, Y: 0})
	b.LineTo(geom.Point{X: 1, Y: 0})
	b.LineTo(geom.Point{X: 0, Y: 1})
	b.ClosePath()
	return b.Path()
}

func TestFromPathsPopulatesParallelSlices(t *testing.T) {
	g := FromPaths([]geom.Path{square(0, 0, 1), triangle()})

	if len(g.Curves) != 2 || len(g.Points) != 2 || len(g.GreenStats) != 2 ||
		len(g.ControlStats) != 2 || len(g.GreenVectors) != 2 || len(g.ControlVectors) != 2 ||
		len(g.Isomorphisms) != 2 {
		t.Fatalf("expected every field to have length 2, got %+v", g)
	}

	if len(g.Points[0]) != 4 {
		t.Errorf("square contour has %d points, want 4", len(g.Points[0]))
	}
	if len(g.Points[1]) != 3 {
		t.Errorf("triangle contour has %d points, want 3", len(g.Points[1]))
	}
}

func TestFromPathsEmpty(t *testing.T) {
	g := FromPaths(nil)
	if len(g.Curves) != 0 {
		t.Errorf("expected no contours, got %d", len(g.Curves))
	}
}
