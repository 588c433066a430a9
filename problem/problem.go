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

// Package problem defines the tagged-variant report the checks in this
// module emit. A Problem is created once, by a single check, and never
// mutated afterwards; it owns its master names and indices by value so
// that a returned problem list can outlive the glyphs it was derived
// from.
//
// Nothing here reads or writes files: serialization is plain
// encoding/json, matching the rest of this module's no-I/O, no-state
// posture. No library in the retrieval pack offers a richer structured
// variant type for Go, and encoding/json's struct-tag model is the
// idiomatic way to express serde's tagged-enum flattening in Go.
package problem

import "fmt"

// Type identifies which check reported a Problem.
type Type string

const (
	TypePathCount           Type = "PathCount"
	TypeNodeCount           Type = "NodeCount"
	TypeNodeIncompatibility Type = "NodeIncompatibility"
	TypeContourOrder        Type = "ContourOrder"
	TypeWrongStartPoint     Type = "WrongStartPoint"
	TypeOverweight          Type = "Overweight"
	TypeUnderweight         Type = "Underweight"
	TypeKink                Type = "Kink"
)

// Problem is one interpolation-compatibility defect found between two
// masters. Only the fields relevant to Type are populated; the rest are
// left at their zero value and omitted from JSON.
type Problem struct {
	Type Type `json:"type"`

	Master1Name  string `json:"master_1_name"`
	Master2Name  string `json:"master_2_name"`
	Master1Index int    `json:"master_1_index"`
	Master2Index int    `json:"master_2_index"`

	Contour *int     `json:"contour,omitempty"`
	Node    *int     `json:"node,omitempty"`
	Tolerance *float64 `json:"tolerance,omitempty"`

	Count1 *int `json:"count_1,omitempty"`
	Count2 *int `json:"count_2,omitempty"`

	PathIndex *int `json:"path_index,omitempty"`

	IsControl1 *bool `json:"is_control_1,omitempty"`
	IsControl2 *bool `json:"is_control_2,omitempty"`

	Order1 []int `json:"order_1,omitempty"`
	Order2 []int `json:"order_2,omitempty"`

	ProposedPoint *int  `json:"proposed_point,omitempty"`
	Reverse       *bool `json:"reverse,omitempty"`

	Value1 *float64 `json:"value_1,omitempty"`
	Value2 *float64 `json:"value_2,omitempty"`
}

// Masters identifies the pair of masters a Problem was computed from.
type Masters struct {
	Name1, Name2   string
	Index1, Index2 int
}

func base(m Masters, t Type) Problem {
	return Problem{
		Type:         t,
		Master1Name:  m.Name1,
		Master2Name:  m.Name2,
		Master1Index: m.Index1,
		Master2Index: m.Index2,
	}
}

// PathCount reports that the two glyphs have a different number of
// contours.
func PathCount(m Masters, count1, count2 int) Problem {
	p := base(m, TypePathCount)
	p.Count1, p.Count2 = &count1, &count2
	return p
}

// NodeCount reports that contour pathIndex has a different number of
// points in each master.
func NodeCount(m Masters, pathIndex, count1, count2 int) Problem {
	p := base(m, TypeNodeCount)
	p.PathIndex = &pathIndex
	p.Count1, p.Count2 = &count1, &count2
	return p
}

// NodeIncompatibility reports that a point's on/off-curve status differs
// between masters.
func NodeIncompatibility(m Masters, contour, node int, isControl1, isControl2 bool) Problem {
	p := base(m, TypeNodeIncompatibility)
	p.Contour, p.Node = &contour, &node
	p.IsControl1, p.IsControl2 = &isControl1, &isControl2
	return p
}

// ContourOrder reports that the contours need reordering (and/or
// reversing) to match up for interpolation.
func ContourOrder(m Masters, tolerance float64, order1, order2 []int) Problem {
	p := base(m, TypeContourOrder)
	p.Tolerance = &tolerance
	p.Order1, p.Order2 = order1, order2
	return p
}

// WrongStartPoint reports that a contour's first point does not line up
// with the other master's contour.
func WrongStartPoint(m Masters, contour int, tolerance float64, proposedPoint int, reverse bool) Problem {
	p := base(m, TypeWrongStartPoint)
	p.Contour = &contour
	p.Tolerance = &tolerance
	p.ProposedPoint = &proposedPoint
	p.Reverse = &reverse
	return p
}

// Overweight reports that a contour's midpoint interpolation is larger
// than either master.
func Overweight(m Masters, contour int, tolerance, value1, value2 float64) Problem {
	p := base(m, TypeOverweight)
	p.Contour = &contour
	p.Tolerance = &tolerance
	p.Value1, p.Value2 = &value1, &value2
	return p
}

// Underweight reports that a contour's midpoint interpolation is smaller
// than either master.
func Underweight(m Masters, contour int, tolerance, value1, value2 float64) Problem {
	p := base(m, TypeUnderweight)
	p.Contour = &contour
	p.Tolerance = &tolerance
	p.Value1, p.Value2 = &value1, &value2
	return p
}

// Kink reports a visible angle appearing in the midway interpolation at
// a smooth Bézier junction.
func Kink(m Masters, contour, node int, tolerance float64) Problem {
	p := base(m, TypeKink)
	p.Contour, p.Node = &contour, &node
	p.Tolerance = &tolerance
	return p
}

// String renders a one-line human-readable summary of p, naming the
// masters involved and the location the check flagged.
func (p Problem) String() string {
	where := ""
	if p.Contour != nil {
		where = fmt.Sprintf(" contour %d", *p.Contour)
	}
	if p.Node != nil {
		where += fmt.Sprintf(" node %d", *p.Node)
	}
	if p.PathIndex != nil {
		where = fmt.Sprintf(" path %d", *p.PathIndex)
	}
	return fmt.Sprintf("%s: %q vs %q%s", p.Type, p.Master1Name, p.Master2Name, where)
}
