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

// Package geom provides the 2-D point, vector and affine transform
// primitives shared by the interpolatable packages.  Coordinates are
// plain float64, since glyph outlines here come from already-denormalized
// variable font locations rather than from raw font unit grids.
package geom

import "math"

// Point is a location in glyph outline space.
type Point struct {
	X, Y float64
}

// Vec2 is a displacement between two [Point]s, or more generally any
// 2-D vector quantity (a tangent, a moment, a packed scalar pair).
type Vec2 struct {
	X, Y float64
}

// ToVec2 treats p as a vector from the origin.
func (p Point) ToVec2() Vec2 { return Vec2{p.X, p.Y} }

// ToPoint treats v as a location relative to the origin.
func (v Vec2) ToPoint() Point { return Point{v.X, v.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Vec2 { return Vec2{p.X - q.X, p.Y - q.Y} }

// Lerp returns the point that is t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Add returns v+w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v-w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Mul returns v scaled by c.
func (v Vec2) Mul(c float64) Vec2 { return Vec2{v.X * c, v.Y * c} }

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the z-component of the 3-D cross product of v and w.
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Hypot2 returns the squared Euclidean length of v, avoiding the
// square root that [Vec2.Length] pays for.
func (v Vec2) Hypot2() float64 { return v.X*v.X + v.Y*v.Y }

// Lerp returns the vector that is t of the way from v to w.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// VdiffHypot2 returns the squared Euclidean distance between two
// descriptor vectors, the cost metric used throughout the matching and
// starting-point checks.
func VdiffHypot2(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
