// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2geom provides the planar predicates, edges and the axis-aligned
// clipping box shared by the Delaunay and Voronoi engines.
package r2geom

import (
	"math"
	"slices"

	"github.com/golang/geo/r2"
)

// Eps absorbs floating-point noise in the distance and orientation
// comparisons made by this module.
const Eps = 1e-8

// Side is the result of an orientation test.
type Side int

const (
	Collinear Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Collinear"
}

// SignedArea returns the signed area of triangle (a, b, c), positive when CCW.
func SignedArea(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a)) / 2
}

// Orientation reports on which side of the directed line a->b the point p lies.
func Orientation(a, b, p r2.Point) Side {
	d := b.Sub(a).Cross(p.Sub(a))
	switch {
	case d > Eps:
		return Left
	case d < -Eps:
		return Right
	}
	return Collinear
}

// Circumcenter returns the center of the circle through a, b and c.
// The second result is false when the points are collinear.
func Circumcenter(a, b, c r2.Point) (r2.Point, bool) {
	ab := Edge{a, b}
	bc := Edge{b, c}
	m1, m2 := ab.Median(), bc.Median()
	return LineLine(m1, m1.Add(ab.LeftMediatrix()), m2, m2.Add(bc.LeftMediatrix()))
}

// CircumcenterOrCentroid is Circumcenter with the centroid substituted for
// degenerate triangles.
func CircumcenterOrCentroid(a, b, c r2.Point) r2.Point {
	if cc, ok := Circumcenter(a, b, c); ok {
		return cc
	}
	return Centroid(a, b, c)
}

// inCircleTolerance scales the error bound of the in-circle determinant.
const inCircleTolerance = 1e-12

// RelativeOrientation is Orientation with the tolerance scaled by the lengths
// of a->b and a->p, so it classifies the angle at a regardless of the size of
// the triangle.
func RelativeOrientation(a, b, p r2.Point) Side {
	u, v := b.Sub(a), p.Sub(a)
	d := u.Cross(v)
	tol := Eps * u.Norm() * v.Norm()
	switch {
	case d > tol:
		return Left
	case d < -tol:
		return Right
	}
	return Collinear
}

// InCircumcircle reports whether p lies strictly inside the circle through
// a, b and c, in either orientation. Points within rounding noise of the
// circle are outside. Collinear triples have no circle and contain nothing.
func InCircumcircle(p, a, b, c r2.Point) bool {
	orient := b.Sub(a).Cross(c.Sub(a))
	if orient == 0 {
		return false
	}
	ad, bd, cd := a.Sub(p), b.Sub(p), c.Sub(p)
	alift, blift, clift := ad.Dot(ad), bd.Dot(bd), cd.Dot(cd)
	det := alift*bd.Cross(cd) + blift*cd.Cross(ad) + clift*ad.Cross(bd)
	bound := alift*(math.Abs(bd.X*cd.Y)+math.Abs(bd.Y*cd.X)) +
		blift*(math.Abs(cd.X*ad.Y)+math.Abs(cd.Y*ad.X)) +
		clift*(math.Abs(ad.X*bd.Y)+math.Abs(ad.Y*bd.X))
	if orient < 0 {
		det = -det
	}
	return det > inCircleTolerance*bound
}

// Centroid returns the mean of the given points.
func Centroid(points ...r2.Point) r2.Point {
	if len(points) == 0 {
		return r2.Point{}
	}
	var c r2.Point
	for _, p := range points {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(points)))
}

// Near reports whether a and b are within Eps of each other.
func Near(a, b r2.Point) bool {
	return a.Sub(b).Norm() < Eps
}

// PolarAngle returns the angle of p around center in [0, 2π).
func PolarAngle(p, center r2.Point) float64 {
	d := p.Sub(center)
	a := math.Atan2(d.Y, d.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// SortCCW sorts points in place by polar angle around center.
func SortCCW(points []r2.Point, center r2.Point) {
	slices.SortStableFunc(points, func(p, q r2.Point) int {
		ap, aq := PolarAngle(p, center), PolarAngle(q, center)
		switch {
		case ap < aq:
			return -1
		case ap > aq:
			return 1
		}
		// Equal angles: nearer point first.
		dp, dq := p.Sub(center).Norm(), q.Sub(center).Norm()
		switch {
		case dp < dq:
			return -1
		case dp > dq:
			return 1
		}
		return 0
	})
}

// Dedupe returns points with every point within Eps of an earlier one removed.
func Dedupe(points []r2.Point) []r2.Point {
	out := make([]r2.Point, 0, len(points))
	for _, p := range points {
		if !slices.ContainsFunc(out, func(q r2.Point) bool { return Near(p, q) }) {
			out = append(out, p)
		}
	}
	return out
}

// PolygonContains reports whether p lies inside or on the boundary of the
// convex CCW polygon poly.
func PolygonContains(poly []r2.Point, p r2.Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	for i := range n {
		if Orientation(poly[i], poly[(i+1)%n], p) == Right {
			return false
		}
	}
	return true
}
