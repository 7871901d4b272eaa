// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"math"
	"slices"

	"github.com/2dChan/r2voronoi/r2geom"
	"github.com/golang/geo/r2"
)

// Polygon is a convex cell boundary in CCW order without a closing duplicate
// vertex. The zero value is the empty polygon.
type Polygon struct {
	Vertices []r2.Point

	centroid r2.Point
}

// NewPolygon returns the polygon with the given CCW vertices.
func NewPolygon(vertices []r2.Point) Polygon {
	p := Polygon{Vertices: vertices}
	if len(vertices) > 0 {
		p.centroid = r2geom.Centroid(vertices...)
	}
	return p
}

func (p Polygon) Len() int {
	return len(p.Vertices)
}

func (p Polygon) IsEmpty() bool {
	return len(p.Vertices) == 0
}

// Centroid returns the mean of the vertices.
func (p Polygon) Centroid() r2.Point {
	return p.centroid
}

// Area returns the enclosed area; positive for CCW polygons.
func (p Polygon) Area() float64 {
	n := len(p.Vertices)
	var sum float64
	for i, a := range p.Vertices {
		sum += a.Cross(p.Vertices[(i+1)%n])
	}
	return sum / 2
}

// AreaCentroid returns the center of mass of the enclosed region, or the
// vertex centroid for degenerate polygons.
func (p Polygon) AreaCentroid() r2.Point {
	area := p.Area()
	if math.Abs(area) < r2geom.Eps {
		return p.centroid
	}
	n := len(p.Vertices)
	var c r2.Point
	for i, a := range p.Vertices {
		b := p.Vertices[(i+1)%n]
		c = c.Add(a.Add(b).Mul(a.Cross(b)))
	}
	return c.Mul(1 / (6 * area))
}

// Contains reports whether q lies inside or on the boundary of p.
func (p Polygon) Contains(q r2.Point) bool {
	return r2geom.PolygonContains(p.Vertices, q)
}

// IsConvex reports whether every turn of the boundary is a left turn or
// straight.
func (p Polygon) IsConvex() bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	for i := range n {
		a, b, c := p.Vertices[i], p.Vertices[(i+1)%n], p.Vertices[(i+2)%n]
		if r2geom.Orientation(a, b, c) == r2geom.Right {
			return false
		}
	}
	return true
}

// Edges returns the boundary edges in CCW order.
func (p Polygon) Edges() []r2geom.Edge {
	n := len(p.Vertices)
	if n < 2 {
		return nil
	}
	edges := make([]r2geom.Edge, n)
	for i, a := range p.Vertices {
		edges[i] = r2geom.Edge{Begin: a, End: p.Vertices[(i+1)%n]}
	}
	return edges
}

// Clone returns a deep copy of p.
func (p Polygon) Clone() Polygon {
	return Polygon{Vertices: slices.Clone(p.Vertices), centroid: p.centroid}
}
