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

import "math"

// Matrix is a 2x3 affine transform, {a, b, c, d, e, f}, mapping
// (x, y) to (a*x + c*y + e, b*x + d*y + f).
type Matrix [6]float64

// Identity is the identity transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Rotate returns a transform that rotates by theta radians about the origin.
func Rotate(theta float64) Matrix {
	sin, cos := math.Sincos(theta)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// ScaleNonUniform returns a transform that scales the x and y axes
// independently.
func ScaleNonUniform(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Mul returns the transform that applies m first and then n.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[1]*n[2],
		m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2],
		m[2]*n[1] + m[3]*n[3],
		m[4]*n[0] + m[5]*n[2] + n[4],
		m[4]*n[1] + m[5]*n[3] + n[5],
	}
}

// ThenScaleNonUniform returns the transform that applies m and then scales
// the result by (sx, sy).
func (m Matrix) ThenScaleNonUniform(sx, sy float64) Matrix {
	return m.Mul(ScaleNonUniform(sx, sy))
}

// Apply maps p through the transform.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// ApplyVec2 maps the free vector v through the linear part of the
// transform, ignoring translation.
func (m Matrix) ApplyVec2(v Vec2) Vec2 {
	return Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}
