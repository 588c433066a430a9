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
	"seehuhn.de/go/interpolatable/problem"
)

var masters = problem.Masters{Name1: "Light", Name2: "Bold"}

func TestBasicCompatibilityIdenticalSquaresIsEmpty(t *testing.T) {
	a := FromPaths([]geom.Path{square(0, 0, 1)})
	b := FromPaths([]geom.Path{square(0, 0, 1)})

	got := basicCompatibility(a, b, masters)
	if len(got) != 0 {
		t.Fatalf("expected no problems, got %+v", got)
	}
}

func TestBasicCompatibilityPathCountMismatch(t *testing.T) {
	a := FromPaths([]geom.Path{square(0, 0, 1)})
	b := FromPaths([]geom.Path{square(0, 0, 1), triangle()})

	got := basicCompatibility(a, b, masters)
	if len(got) != 1 || got[0].Type != problem.TypePathCount {
		t.Fatalf("got %+v, want a single PathCount problem", got)
	}
}

func TestBasicCompatibilitySquareVsTriangleIsNodeCount(t *testing.T) {
	a := FromPaths([]geom.Path{square(0, 0, 1)})
	b := FromPaths([]geom.Path{triangle()})

	got := basicCompatibility(a, b, masters)
	if len(got) != 1 || got[0].Type != problem.TypeNodeCount {
		t.Fatalf("got %+v, want a single NodeCount problem", got)
	}
	if *got[0].Count1 != 4 || *got[0].Count2 != 3 {
		t.Errorf("counts = %d, %d, want 4, 3", *got[0].Count1, *got[0].Count2)
	}
}

func TestBasicCompatibilityNodeIncompatibility(t *testing.T) {
	var ba geom.Builder
	ba.MoveTo(geom.Point{X: 0, Y: 0})
	ba.LineTo(geom.Point{X: 1, Y: 0})
	ba.LineTo(geom.Point{X: 1, Y: 1})
	ba.ClosePath()

	var bb geom.Builder
	bb.MoveTo(geom.Point{X: 0, Y: 0})
	bb.QuadTo(geom.Point{X: 1, Y: 0}, geom.Point{X: 1, Y: 1})
	bb.ClosePath()

	a := FromPaths([]geom.Path{ba.Path()})
	b := FromPaths([]geom.Path{bb.Path()})

	got := basicCompatibility(a, b, masters)
	if len(got) != 1 || got[0].Type != problem.TypeNodeIncompatibility {
		t.Fatalf("got %+v, want a single NodeIncompatibility problem", got)
	}
}
