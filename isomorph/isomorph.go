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

// Package isomorph builds the rotational-alignment descriptors used to
// locate a contour's true starting point against another master: every
// rotation (and the reversed traversal) of a contour's "characteristic"
// vector that keeps on-curve nodes aligned with on-curve nodes.
package isomorph

import (
	"math"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/interpolatable/geom"
	"seehuhn.de/go/interpolatable/glyf"
)

// Characteristic is one admissible rotation of a contour's characteristic
// vector.
type Characteristic struct {
	RotatedList []geom.Vec2
	Rotation    int
	Reverse     bool
}

// Isomorphisms is the set of admissible rotations (forward and reversed)
// for one contour.
type Isomorphisms []Characteristic

// New builds the isomorphism set for a contour's point list. Rotations
// are derived from an already-built characteristic vector, never by
// recomputing per-point statistics at each offset.
func New(points glyf.Contour) Isomorphisms {
	var result Isomorphisms
	result = append(result, variants(points, false)...)
	result = append(result, variants(points, true)...)
	return result
}

// variants returns the admissible rotations of points traversed forward
// (reverse=false) or in reverse order (reverse=true). A rotation is
// admissible only when rotating the on-curve/off-curve flag pattern by
// the same offset reproduces the flag pattern of the original (untouched)
// point list: this is what stops a rotation from aligning an off-curve
// handle with an on-curve node.
func variants(points glyf.Contour, reverse bool) Isomorphisms {
	n := len(points)
	if n == 0 {
		return nil
	}

	reference := reversedFlags(points)

	traversal := points
	if reverse {
		traversal = reverseContour(points)
	}

	var bits []bool
	if reverse {
		bits = reversedFlags(traversal)
	} else {
		bits = slices.Clone(reference)
	}

	vector := characteristicVector(traversal)
	mult := len(vector) / n

	var out Isomorphisms
	for i := 0; i < n; i++ {
		if equalBits(bits, reference) {
			rotation := i
			if reverse {
				rotation = n - 1 - i
			}
			out = append(out, Characteristic{
				RotatedList: rotateLeft(vector, i*mult),
				Rotation:    rotation,
				Reverse:     reverse,
			})
		}
		bits = rotateRightBool(bits, 1)
	}
	return out
}

// characteristicVector builds the length-4n characteristic vector: per
// point, the point itself, 3x the vector to the next
// point, the turn vector, and a packed signed-square-root of the turn's
// cross product.
func characteristicVector(points glyf.Contour) []geom.Vec2 {
	n := len(points)
	vector := make([]geom.Vec2, 0, n*4)
	at := func(i int) geom.Point { return points[((i%n)+n)%n].Point }
	for i := 0; i < n; i++ {
		p0, p1, p2 := at(i), at(i+1), at(i+2)

		vector = append(vector, p0.ToVec2())

		d0 := p1.Sub(p0)
		vector = append(vector, d0.Mul(3))

		d1 := p2.Sub(p1)
		vector = append(vector, d1.Sub(d0))

		cross := d0.Cross(d1)
		packed := math.Copysign(math.Sqrt(math.Abs(cross)), cross) * 4
		vector = append(vector, geom.Vec2{X: packed, Y: 0})
	}
	return vector
}

func reversedFlags(points glyf.Contour) []bool {
	n := len(points)
	out := make([]bool, n)
	for k := 0; k < n; k++ {
		out[k] = points[n-1-k].IsControl
	}
	return out
}

func reverseContour(points glyf.Contour) glyf.Contour {
	out := slices.Clone(points)
	slices.Reverse(out)
	return out
}

func equalBits(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func rotateLeft(v []geom.Vec2, k int) []geom.Vec2 {
	n := len(v)
	if n == 0 {
		return nil
	}
	k = ((k % n) + n) % n
	out := make([]geom.Vec2, n)
	copy(out, v[k:])
	copy(out[n-k:], v[:k])
	return out
}

func rotateRightBool(v []bool, k int) []bool {
	n := len(v)
	if n == 0 {
		return nil
	}
	k = ((k % n) + n) % n
	out := make([]bool, n)
	copy(out, v[n-k:])
	copy(out[k:], v[:n-k])
	return out
}

// VdiffHypot2 is the squared Euclidean distance between two
// characteristic (or descriptor) vectors, used throughout as the
// contour-similarity cost metric.
func VdiffHypot2(a, b []geom.Vec2) float64 {
	var sum float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		sum += a[i].Sub(b[i]).Hypot2()
	}
	return sum
}
