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

package geom

import "testing"

func TestVec2Cross(t *testing.T) {
	v := Vec2{1, 0}
	w := Vec2{0, 1}
	if got := v.Cross(w); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
	if got := w.Cross(v); got != -1 {
		t.Errorf("Cross (reversed) = %v, want -1", got)
	}
}

func TestVec2Hypot2(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Hypot2(); got != 25 {
		t.Errorf("Hypot2 = %v, want 25", got)
	}
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
}

func TestPointLerp(t *testing.T) {
	p := Point{0, 0}
	q := Point{10, 20}
	got := p.Lerp(q, 0.25)
	want := Point{2.5, 5}
	if got != want {
		t.Errorf("Lerp = %v, want %v", got, want)
	}
}

func TestVdiffHypot2(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 3}
	if got := VdiffHypot2(a, b); got != 0 {
		t.Errorf("VdiffHypot2 of equal vectors = %v, want 0", got)
	}
	b = []float64{4, 6, 3}
	if got := VdiffHypot2(a, b); got != 25 {
		t.Errorf("VdiffHypot2 = %v, want 25", got)
	}
}
