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

package curvestats

import (
	"math"
	"testing"

	"seehuhn.de/go/interpolatable/geom"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func unitSquare() geom.Path {
	var b geom.Builder
	b.MoveTo(geom.Point{X: 0, Y: 0})
	b.LineTo(geom.Point{X: 1, Y: 0})
	b.LineTo(geom.Point{X: 1, Y: 1})
	b.LineTo(geom.Point{X: 0, Y: 1})
	b.ClosePath()
	return b.Path()
}

func TestGreenUnitSquare(t *testing.T) {
	s := Green(unitSquare())
	if !almostEqual(s.Area, 1, 1e-9) {
		t.Errorf("Area = %v, want 1", s.Area)
	}
	if !almostEqual(s.CenterOfMass.X, 0.5, 1e-9) || !almostEqual(s.CenterOfMass.Y, 0.5, 1e-9) {
		t.Errorf("CenterOfMass = %v, want (0.5, 0.5)", s.CenterOfMass)
	}
	wantStd := math.Sqrt(1.0 / 12.0)
	if !almostEqual(s.StdDevX, wantStd, 1e-9) || !almostEqual(s.StdDevY, wantStd, 1e-9) {
		t.Errorf("StdDev = (%v, %v), want %v", s.StdDevX, s.StdDevY, wantStd)
	}
}

func TestGreenReversedSignFlips(t *testing.T) {
	var b geom.Builder
	b.MoveTo(geom.Point{X: 0, Y: 0})
	b.LineTo(geom.Point{X: 0, Y: 1})
	b.LineTo(geom.Point{X: 1, Y: 1})
	b.LineTo(geom.Point{X: 1, Y: 0})
	b.ClosePath()

	s := Green(b.Path())
	if s.Area >= 0 {
		t.Errorf("Area = %v, want negative for a clockwise contour", s.Area)
	}
}

func TestControlMatchesGreenForPolygon(t *testing.T) {
	green := Green(unitSquare())
	control := Control(unitSquare())
	if !almostEqual(green.Area, control.Area, 1e-9) {
		t.Errorf("Green area %v != Control area %v for a pure polygon", green.Area, control.Area)
	}
}

func TestDescriptorSignAndScale(t *testing.T) {
	d := Descriptor(Green(unitSquare()))
	if len(d) != 6 {
		t.Fatalf("got %d elements, want 6", len(d))
	}
	if d[0] <= 0 {
		t.Errorf("descriptor[0] = %v, want positive for a CCW contour", d[0])
	}
	if !almostEqual(d[0], 1, 1e-9) {
		t.Errorf("descriptor[0] = %v, want 1 (sqrt of unit area)", d[0])
	}
}

func TestDegenerateContourIsZeroValue(t *testing.T) {
	var b geom.Builder
	b.MoveTo(geom.Point{X: 0, Y: 0})
	b.LineTo(geom.Point{X: 1, Y: 0})
	b.ClosePath()

	s := Green(b.Path())
	if s != (Statistics{}) {
		t.Errorf("degenerate contour should yield the zero value, got %+v", s)
	}
}
