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

// Package glyf turns Bézier paths into the flattened point lists that the
// rest of the interpolatable checks operate on: a cyclic sequence of
// on-curve nodes and off-curve handles, one per contour.
//
// This mirrors the role of the "glyf" table in a TrueType font, but runs
// in the opposite direction: a real glyf table stores quadratic on/off
// curve points and a rasterizer expands them into a path, whereas here
// the caller already supplies full Bézier paths (as denormalized at some
// variable-font location) and this package flattens them down to points.
package glyf

import "seehuhn.de/go/interpolatable/geom"

// Point is one node of a contour: a location plus whether it lies on the
// outline (an anchor the curve passes through) or is an off-curve Bézier
// handle.
type Point struct {
	geom.Point
	// IsControl is true for an on-curve node, false for an off-curve
	// handle. (The name follows the TrueType "control point" = on-curve
	// usage, not the Bézier-handle sense of "control point".)
	IsControl bool
}

func onCurve(p geom.Point) Point  { return Point{Point: p, IsControl: true} }
func offCurve(p geom.Point) Point { return Point{Point: p, IsControl: false} }

// Contour is an ordered, cyclic sequence of points making up one closed
// sub-path of a glyph. Closure is implicit: the last point connects back
// to the first.
type Contour []Point

// At returns the i-th point, cyclically.
func (c Contour) At(i int) Point {
	n := len(c)
	return c[((i%n)+n)%n]
}

// FromPath flattens a Bézier path into its cyclic point sequence,
// recording each node's on/off-curve status. If the accumulated sequence
// starts and ends on the same on-curve point, the duplicate trailing
// point is dropped; all contour indices used elsewhere refer to this
// trimmed sequence.
func FromPath(path geom.Path) Contour {
	var points Contour
	path(func(cmd geom.Command, pts []geom.Point) bool {
		switch cmd {
		case geom.CmdMoveTo:
			points = append(points, onCurve(pts[0]))
		case geom.CmdLineTo:
			points = append(points, onCurve(pts[0]))
		case geom.CmdQuadTo:
			points = append(points, offCurve(pts[0]))
			points = append(points, onCurve(pts[1]))
		case geom.CmdCubeTo:
			points = append(points, offCurve(pts[0]))
			points = append(points, offCurve(pts[1]))
			points = append(points, onCurve(pts[2]))
		case geom.CmdClose:
			// no point of its own; closure is implicit
		}
		return true
	})
	if n := len(points); n > 1 {
		first, last := points[0], points[n-1]
		if first.IsControl && last.IsControl && first.Point == last.Point {
			points = points[:n-1]
		}
	}
	return points
}
