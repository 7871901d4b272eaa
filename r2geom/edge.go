// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2geom

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Edge is an undirected pair of points. Begin and End keep the direction the
// edge was built with, but equality ignores it.
type Edge struct {
	Begin, End r2.Point
}

// Equal reports whether e and o join the same two points in either direction.
func (e Edge) Equal(o Edge) bool {
	return (Near(e.Begin, o.Begin) && Near(e.End, o.End)) ||
		(Near(e.Begin, o.End) && Near(e.End, o.Begin))
}

// Contains reports whether p is one of the edge endpoints.
func (e Edge) Contains(p r2.Point) bool {
	return Near(e.Begin, p) || Near(e.End, p)
}

func (e Edge) Reversed() Edge {
	return Edge{e.End, e.Begin}
}

func (e Edge) Length() float64 {
	return e.End.Sub(e.Begin).Norm()
}

// Median returns the midpoint of the edge.
func (e Edge) Median() r2.Point {
	return e.Begin.Add(e.End).Mul(0.5)
}

// Direction returns the unit vector from Begin to End.
func (e Edge) Direction() r2.Point {
	return e.End.Sub(e.Begin).Normalize()
}

// LeftMediatrix is the unit direction of the perpendicular bisector pointing
// to the left of Begin->End.
func (e Edge) LeftMediatrix() r2.Point {
	return e.Direction().Ortho()
}

// RightMediatrix is the unit direction of the perpendicular bisector pointing
// to the right of Begin->End. For a CCW triangle this points outwards.
func (e Edge) RightMediatrix() r2.Point {
	return e.Direction().Ortho().Mul(-1)
}

// Shortened pulls both endpoints towards each other by d.
func (e Edge) Shortened(d float64) Edge {
	if 2*d >= e.Length() {
		m := e.Median()
		return Edge{m, m}
	}
	dir := e.Direction()
	return Edge{e.Begin.Add(dir.Mul(d)), e.End.Sub(dir.Mul(d))}
}

// Offset returns the parallel edge moved d to the left.
func (e Edge) Offset(d float64) Edge {
	off := e.LeftMediatrix().Mul(d)
	return Edge{e.Begin.Add(off), e.End.Add(off)}
}

func (e Edge) String() string {
	return fmt.Sprintf("[%v -> %v]", e.Begin, e.End)
}
