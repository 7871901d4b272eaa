// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"github.com/2dChan/r2voronoi/r2geom"
	"github.com/golang/geo/r2"
)

// halfPlaneCell computes the cell of site i directly, by cutting the box with
// the bisector of every other distinct site. It serves sites the
// triangulation has no triangle for: fewer than three sites or collinear ones.
func (d *Diagram) halfPlaneCell(i int) Polygon {
	corners := d.opts.Bounds.Corners()
	cell := corners[:]
	s := d.Sites[i]
	for _, j := range d.distinct {
		o := d.Sites[j]
		if j == i || r2geom.Near(s, o) {
			continue
		}
		mid := s.Add(o).Mul(0.5)
		cell = clipToHalfPlane(cell, mid, mid.Add(o.Sub(s).Ortho()))
		if len(cell) == 0 {
			break
		}
	}

	cell = r2geom.Dedupe(cell)
	if len(cell) < 2 {
		return Polygon{}
	}
	if len(cell) > 2 {
		r2geom.SortCCW(cell, r2geom.Centroid(cell...))
	}
	return NewPolygon(cell)
}

// clipToHalfPlane clips a convex polygon to the closed left side of the
// directed line from a to b.
func clipToHalfPlane(poly []r2.Point, a, b r2.Point) []r2.Point {
	n := len(poly)
	if n == 0 {
		return nil
	}
	inside := func(p r2.Point) bool {
		return r2geom.Orientation(a, b, p) != r2geom.Right
	}

	out := make([]r2.Point, 0, n+1)
	for k, curr := range poly {
		next := poly[(k+1)%n]
		currIn, nextIn := inside(curr), inside(next)
		switch {
		case currIn && nextIn:
			out = append(out, next)
		case currIn && !nextIn:
			if x, ok := r2geom.LineLine(curr, next, a, b); ok {
				out = append(out, x)
			}
		case !currIn && nextIn:
			if x, ok := r2geom.LineLine(curr, next, a, b); ok {
				out = append(out, x)
			}
			out = append(out, next)
		}
	}
	return out
}
