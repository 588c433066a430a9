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

// Package curvestats computes Green's-theorem area, centre of mass and
// second-moment statistics for a closed contour, and the length-6
// descriptor vector that the matching and starting-point checks compare
// contours by.
package curvestats

import (
	"math"

	"seehuhn.de/go/interpolatable/geom"
)

// Statistics is the Green's-theorem summary of one closed contour: its
// signed area, centre of mass, and the standard deviation / correlation
// of the (area-weighted) point distribution.
type Statistics struct {
	Area         float64
	CenterOfMass geom.Point
	StdDevX      float64
	StdDevY      float64
	Correlation  float64
}

// flattenSteps is how many straight sub-segments approximate one
// quadratic or cubic Bézier segment when integrating the true curve, as
// opposed to its control polygon. Green's-theorem integrals have a
// closed form for polynomial segments, but subdividing into this many
// flat segments and applying the exact polygon formulas below converges
// to the same integral without re-deriving it by hand for cubics.
const flattenSteps = 24

// Green computes statistics for the true curve traced by path: quadratic
// and cubic segments are subdivided before the polygon moment formulas
// are applied.
func Green(path geom.Path) Statistics {
	return fromVertices(flatten(path))
}

// Control computes statistics for path's control polygon: the polyline
// joining every point named by a path step (on-curve and off-curve
// alike), in order, without subdividing curves.
func Control(path geom.Path) Statistics {
	var verts []geom.Point
	path(func(cmd geom.Command, pts []geom.Point) bool {
		verts = append(verts, pts...)
		return true
	})
	return fromVertices(verts)
}

// flatten expands every curved segment of path into flattenSteps straight
// sub-segments, returning the vertex sequence of the resulting polygon.
func flatten(path geom.Path) []geom.Point {
	var verts []geom.Point
	var cur geom.Point
	path(func(cmd geom.Command, pts []geom.Point) bool {
		switch cmd {
		case geom.CmdMoveTo:
			cur = pts[0]
			verts = append(verts, cur)
		case geom.CmdLineTo:
			cur = pts[0]
			verts = append(verts, cur)
		case geom.CmdQuadTo:
			p0, p1, p2 := cur, pts[0], pts[1]
			for i := 1; i <= flattenSteps; i++ {
				t := float64(i) / float64(flattenSteps)
				verts = append(verts, evalQuad(p0, p1, p2, t))
			}
			cur = p2
		case geom.CmdCubeTo:
			p0, p1, p2, p3 := cur, pts[0], pts[1], pts[2]
			for i := 1; i <= flattenSteps; i++ {
				t := float64(i) / float64(flattenSteps)
				verts = append(verts, evalCube(p0, p1, p2, p3, t))
			}
			cur = p3
		case geom.CmdClose:
			// implicit; the moment formulas already close the polygon
		}
		return true
	})
	return verts
}

func evalQuad(p0, p1, p2 geom.Point, t float64) geom.Point {
	u := 1 - t
	return geom.Point{
		X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

func evalCube(p0, p1, p2, p3 geom.Point, t float64) geom.Point {
	u := 1 - t
	uu, tt := u*u, t*t
	uuu, ttt := uu*u, tt*t
	return geom.Point{
		X: uuu*p0.X + 3*uu*t*p1.X + 3*u*tt*p2.X + ttt*p3.X,
		Y: uuu*p0.Y + 3*uu*t*p1.Y + 3*u*tt*p2.Y + ttt*p3.Y,
	}
}

// fromVertices applies the standard Green's-theorem polygon moment
// formulas to a (possibly curve-flattened) closed vertex sequence.
func fromVertices(v []geom.Point) Statistics {
	n := len(v)
	if n < 3 {
		return Statistics{}
	}

	var area, mx, my, ixx, iyy, ixy float64
	for i := 0; i < n; i++ {
		x0, y0 := v[i].X, v[i].Y
		x1, y1 := v[(i+1)%n].X, v[(i+1)%n].Y
		cross := x0*y1 - x1*y0

		area += cross
		mx += (x0 + x1) * cross
		my += (y0 + y1) * cross
		ixx += (y0*y0 + y0*y1 + y1*y1) * cross
		iyy += (x0*x0 + x0*x1 + x1*x1) * cross
		ixy += (x0*y1 + 2*x0*y0 + 2*x1*y1 + x1*y0) * cross
	}
	area *= 0.5
	if area == 0 {
		return Statistics{}
	}
	mx /= 6
	my /= 6
	ixx /= 12
	iyy /= 12
	ixy /= 24

	comX := mx / area
	comY := my / area
	varX := iyy/area - comX*comX
	varY := ixx/area - comY*comY
	covXY := ixy/area - comX*comY

	stdX := math.Sqrt(math.Max(varX, 0))
	stdY := math.Sqrt(math.Max(varY, 0))
	var corr float64
	if stdX > 0 && stdY > 0 {
		corr = covXY / (stdX * stdY)
	}

	return Statistics{
		Area:         area,
		CenterOfMass: geom.Point{X: comX, Y: comY},
		StdDevX:      stdX,
		StdDevY:      stdY,
		Correlation:  corr,
	}
}

// Descriptor packs a Statistics value into the length-6 vector compared
// by [seehuhn.de/go/interpolatable/matching] and the starting-point
// check: a signed-size term, the centre of mass, twice each standard
// deviation, and the correlation pre-scaled by the unsigned size
// sqrt(|area|) so that
// Euclidean distance between descriptors weighs it comparably to the
// spatial moments.
func Descriptor(s Statistics) []float64 {
	size := math.Sqrt(math.Abs(s.Area))
	signedSize := math.Copysign(size, s.Area)
	return []float64{
		signedSize,
		s.CenterOfMass.X,
		s.CenterOfMass.Y,
		2 * s.StdDevX,
		2 * s.StdDevY,
		s.Correlation * size,
	}
}
