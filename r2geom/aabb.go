// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2geom

import (
	"math"
	"slices"

	"github.com/golang/geo/r2"
)

// BoxSide is a bitmask of the sides of an AABB a point lies on.
type BoxSide uint8

const (
	SideBottom BoxSide = 1 << iota
	SideRight
	SideTop
	SideLeft
)

// sides lists the box sides in CCW order; side i runs from corner i to corner i+1.
var sides = [4]BoxSide{SideBottom, SideRight, SideTop, SideLeft}

// AABB is an axis-aligned bounding box used both as the Delaunay bounding
// region and as the Voronoi clipping domain.
type AABB struct {
	r2.Rect
}

// NewAABB returns the box spanned by min and max, in any order.
func NewAABB(min, max r2.Point) AABB {
	return AABB{r2.RectFromPoints(min, max)}
}

// UnitSquare returns the [0,1]×[0,1] box.
func UnitSquare() AABB {
	return NewAABB(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1})
}

func (b AABB) Min() r2.Point    { return b.Lo() }
func (b AABB) Max() r2.Point    { return b.Hi() }
func (b AABB) Width() float64   { return b.X.Length() }
func (b AABB) Height() float64  { return b.Y.Length() }
func (b AABB) Area() float64    { return b.Width() * b.Height() }
func (b AABB) Center() r2.Point { return b.Rect.Center() }

// Corners returns the four corners in CCW order starting at Min.
func (b AABB) Corners() [4]r2.Point {
	return b.Vertices()
}

// Expanded grows the box by margin on every side.
func (b AABB) Expanded(margin float64) AABB {
	return AABB{b.ExpandedByMargin(margin)}
}

// Contains is an inclusive containment test with Eps slack.
func (b AABB) Contains(p r2.Point) bool {
	return b.ExpandedByMargin(Eps).ContainsPoint(p)
}

// StrictlyContains reports whether p lies inside the box and off its border.
func (b AABB) StrictlyContains(p r2.Point) bool {
	return b.ExpandedByMargin(-Eps).InteriorContainsPoint(p)
}

// Side returns the sides of the box p lies on; zero for points off the border.
func (b AABB) Side(p r2.Point) BoxSide {
	if !b.Contains(p) {
		return 0
	}
	var s BoxSide
	lo, hi := b.Lo(), b.Hi()
	if math.Abs(p.Y-lo.Y) < Eps {
		s |= SideBottom
	}
	if math.Abs(p.X-hi.X) < Eps {
		s |= SideRight
	}
	if math.Abs(p.Y-hi.Y) < Eps {
		s |= SideTop
	}
	if math.Abs(p.X-lo.X) < Eps {
		s |= SideLeft
	}
	return s
}

// IsCorner reports whether p coincides with one of the corners.
func (b AABB) IsCorner(p r2.Point) bool {
	s := b.Side(p)
	return s != 0 && s&(s-1) != 0
}

// CornersBetween walks the border CCW from side "from" and returns the corners
// passed before reaching side "to". Both arguments must be single sides.
func (b AABB) CornersBetween(from, to BoxSide) []r2.Point {
	i := slices.Index(sides[:], from)
	j := slices.Index(sides[:], to)
	if i < 0 || j < 0 || i == j {
		return nil
	}
	corners := b.Corners()
	var out []r2.Point
	for k := i; k != j; k = (k + 1) % 4 {
		out = append(out, corners[(k+1)%4])
	}
	return out
}

func (b AABB) segments() [4]Edge {
	c := b.Corners()
	return [4]Edge{{c[0], c[1]}, {c[1], c[2]}, {c[2], c[3]}, {c[3], c[0]}}
}

func (b AABB) collect(from r2.Point, hit func(s Edge) (r2.Point, bool)) []r2.Point {
	var pts []r2.Point
	for _, s := range b.segments() {
		if p, ok := hit(s); ok {
			pts = append(pts, p)
		}
	}
	pts = Dedupe(pts)
	slices.SortFunc(pts, func(p, q r2.Point) int {
		dp, dq := p.Sub(from).Norm(), q.Sub(from).Norm()
		switch {
		case dp < dq:
			return -1
		case dp > dq:
			return 1
		}
		return 0
	})
	return pts
}

// IntersectionsSegment returns the points where [a, b] crosses the border,
// nearest to a first.
func (b AABB) IntersectionsSegment(p1, p2 r2.Point) []r2.Point {
	return b.collect(p1, func(s Edge) (r2.Point, bool) {
		return SegmentSegment(p1, p2, s.Begin, s.End)
	})
}

// IntersectionsRay returns the points where the ray origin + t*dir crosses the
// border, nearest to origin first.
func (b AABB) IntersectionsRay(origin, dir r2.Point) []r2.Point {
	return b.collect(origin, func(s Edge) (r2.Point, bool) {
		return RaySegment(origin, dir, s.Begin, s.End)
	})
}

// IntersectionsLine returns the points where the line through p1 and p2
// crosses the border, nearest to p1 first.
func (b AABB) IntersectionsLine(p1, p2 r2.Point) []r2.Point {
	return b.collect(p1, func(s Edge) (r2.Point, bool) {
		return LineSegment(p1, p2, s.Begin, s.End)
	})
}

// CropPolygon clips a convex CCW polygon to the box. The result is CCW
// around its centroid and may be empty.
func (b AABB) CropPolygon(poly []r2.Point) []r2.Point {
	var out []r2.Point
	for _, c := range b.Corners() {
		if PolygonContains(poly, c) {
			out = append(out, c)
		}
	}
	n := len(poly)
	for i, p := range poly {
		if b.Contains(p) {
			out = append(out, b.ClampPoint(p))
		}
		if n > 1 {
			out = append(out, b.IntersectionsSegment(p, poly[(i+1)%n])...)
		}
	}
	out = Dedupe(out)
	if len(out) > 2 {
		SortCCW(out, Centroid(out...))
	}
	return out
}
