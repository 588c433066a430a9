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

// Command identifies the kind of one step of a [Path].
type Command uint8

const (
	CmdMoveTo Command = iota
	CmdLineTo
	CmdQuadTo
	CmdCubeTo
	CmdClose
)

// numPoints returns how many points cmd carries.
func (cmd Command) numPoints() int {
	switch cmd {
	case CmdMoveTo, CmdLineTo:
		return 1
	case CmdQuadTo:
		return 2
	case CmdCubeTo:
		return 3
	default: // CmdClose
		return 0
	}
}

// Path is an iterator over the steps of one contour: a move, a line, a
// quadratic or cubic Bézier curve, or a close-path marker, each paired
// with its points (one per on/off-curve coordinate the step carries).
// Closure back to the first point is implicit; a Path does not repeat it.
//
// Range over a Path directly (`for cmd, pts := range p`) rather than
// indexing it: the points slice passed to yield is only valid for the
// duration of that call, and callers that need to keep a point must copy
// it out.
type Path func(yield func(Command, []Point) bool)

// step is the internal, materialized form of one Path element; building
// a Path from a sequence of steps and consuming a Path back into one are
// both plain range loops.
type step struct {
	cmd Command
	pts [3]Point
}

func fromSteps(steps []step) Path {
	return func(yield func(Command, []Point) bool) {
		var buf [3]Point
		for _, s := range steps {
			n := s.cmd.numPoints()
			copy(buf[:n], s.pts[:n])
			if !yield(s.cmd, buf[:n]) {
				return
			}
		}
	}
}

func collect(p Path) []step {
	if p == nil {
		return nil
	}
	var out []step
	p(func(cmd Command, pts []Point) bool {
		var s step
		s.cmd = cmd
		copy(s.pts[:], pts)
		out = append(out, s)
		return true
	})
	return out
}

// Builder accumulates the steps of a contour and exposes the result as a
// [Path]. Its methods mirror the verbs of an outline pen, the shape a
// font rasterizer or variable-font denormalizer would drive to hand a
// contour to this package.
type Builder struct {
	steps []step
}

// MoveTo starts a new subpath at p.
func (b *Builder) MoveTo(p Point) { b.steps = append(b.steps, step{cmd: CmdMoveTo, pts: [3]Point{p}}) }

// LineTo draws a straight line to p.
func (b *Builder) LineTo(p Point) { b.steps = append(b.steps, step{cmd: CmdLineTo, pts: [3]Point{p}}) }

// QuadTo draws a quadratic Bézier curve through off-curve control point
// p0 to on-curve endpoint p1.
func (b *Builder) QuadTo(p0, p1 Point) {
	b.steps = append(b.steps, step{cmd: CmdQuadTo, pts: [3]Point{p0, p1}})
}

// CurveTo draws a cubic Bézier curve through off-curve control points p0,
// p1 to on-curve endpoint p2.
func (b *Builder) CurveTo(p0, p1, p2 Point) {
	b.steps = append(b.steps, step{cmd: CmdCubeTo, pts: [3]Point{p0, p1, p2}})
}

// ClosePath closes the current subpath.
func (b *Builder) ClosePath() { b.steps = append(b.steps, step{cmd: CmdClose}) }

// Path returns the accumulated steps as a [Path]. The Builder remains
// usable afterwards; further calls append to the same contour.
func (b *Builder) Path() Path {
	steps := append([]step(nil), b.steps...)
	return fromSteps(steps)
}

// Lerp computes the elementwise midpoint of a and b, the representative
// "midway" shape used by the weight and kink checks. It reports ok=false
// if the two paths differ in length or in the command at any position,
// in which case no midpoint is geometrically meaningful.
func Lerp(a, b Path) (mid Path, ok bool) {
	sa, sb := collect(a), collect(b)
	if len(sa) != len(sb) {
		return nil, false
	}
	out := make([]step, len(sa))
	for i, ea := range sa {
		eb := sb[i]
		if ea.cmd != eb.cmd {
			return nil, false
		}
		n := ea.cmd.numPoints()
		var pts [3]Point
		for j := 0; j < n; j++ {
			pts[j] = ea.pts[j].Lerp(eb.pts[j], 0.5)
		}
		out[i] = step{cmd: ea.cmd, pts: pts}
	}
	return fromSteps(out), true
}
