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

// Package interpolatable checks whether two renderings of the same glyph,
// sampled at two different design-space locations, can be linearly
// interpolated into a smooth, valid intermediate shape.
//
// Everything here is pure and single-threaded: given two immutable
// [Glyph] values, [RunTests] computes and returns a problem list with no
// shared mutable state, no I/O and no suspension. Callers that check many
// glyph pairs may run RunTests concurrently across pairs without any
// synchronization of their own; each call owns its intermediate buffers
// (reordered vectors, cost matrices, midpoint paths) and there is no
// cancellation surface to thread through a pure computation like this
// one.
package interpolatable

import (
	"seehuhn.de/go/interpolatable/curvestats"
	"seehuhn.de/go/interpolatable/geom"
	"seehuhn.de/go/interpolatable/glyf"
	"seehuhn.de/go/interpolatable/isomorph"
)

// Glyph is the per-contour summary of a glyph at one master location:
// its raw Bézier paths, their flattened point lists, the Green's-theorem
// statistics (of the curve and of its control polygon) and the rotational
// isomorphisms used to align contours against another master.
//
// All of the slice fields have equal length; index i of any of them
// refers to the same contour.
type Glyph struct {
	MasterName  string
	MasterIndex int

	Curves []geom.Path
	Points []glyf.Contour

	GreenStats   []curvestats.Statistics
	ControlStats []curvestats.Statistics

	GreenVectors   [][]float64
	ControlVectors [][]float64

	Isomorphisms []isomorph.Isomorphisms
}

// FromPaths builds a Glyph from an ordered sequence of Bézier paths, one
// per contour, precomputing every per-contour structure the checks in
// this module need. MasterName defaults to the empty string and
// MasterIndex to 0; both may be set by the caller afterwards.
func FromPaths(paths []geom.Path) *Glyph {
	g := &Glyph{
		Curves:         make([]geom.Path, len(paths)),
		Points:         make([]glyf.Contour, len(paths)),
		GreenStats:     make([]curvestats.Statistics, len(paths)),
		ControlStats:   make([]curvestats.Statistics, len(paths)),
		GreenVectors:   make([][]float64, len(paths)),
		ControlVectors: make([][]float64, len(paths)),
		Isomorphisms:   make([]isomorph.Isomorphisms, len(paths)),
	}
	for i, path := range paths {
		greenStats := curvestats.Green(path)
		controlStats := curvestats.Control(path)

		g.Curves[i] = path
		g.GreenStats[i] = greenStats
		g.ControlStats[i] = controlStats
		g.GreenVectors[i] = curvestats.Descriptor(greenStats)
		g.ControlVectors[i] = curvestats.Descriptor(controlStats)

		points := glyf.FromPath(path)
		g.Points[i] = points
		g.Isomorphisms[i] = isomorph.New(points)
	}
	return g
}
