// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2geom

import "github.com/golang/geo/r2"

// params solves p1 + t*r = q1 + u*s, where r = p2-p1 and s = q2-q1.
// ok is false for parallel or collinear input.
func params(p1, r, q1, s r2.Point) (t, u float64, ok bool) {
	denom := r.Cross(s)
	if denom > -Eps && denom < Eps {
		return 0, 0, false
	}
	qp := q1.Sub(p1)
	return qp.Cross(s) / denom, qp.Cross(r) / denom, true
}

func inUnit(t float64) bool {
	return t >= -Eps && t <= 1+Eps
}

// LineLine intersects the infinite lines through (a1, a2) and (b1, b2).
func LineLine(a1, a2, b1, b2 r2.Point) (r2.Point, bool) {
	r := a2.Sub(a1)
	t, _, ok := params(a1, r, b1, b2.Sub(b1))
	if !ok {
		return r2.Point{}, false
	}
	return a1.Add(r.Mul(t)), true
}

// LineSegment intersects the line through (a1, a2) with the segment [b1, b2].
func LineSegment(a1, a2, b1, b2 r2.Point) (r2.Point, bool) {
	r := a2.Sub(a1)
	t, u, ok := params(a1, r, b1, b2.Sub(b1))
	if !ok || !inUnit(u) {
		return r2.Point{}, false
	}
	return a1.Add(r.Mul(t)), true
}

// SegmentSegment intersects the segments [a1, a2] and [b1, b2].
func SegmentSegment(a1, a2, b1, b2 r2.Point) (r2.Point, bool) {
	r := a2.Sub(a1)
	t, u, ok := params(a1, r, b1, b2.Sub(b1))
	if !ok || !inUnit(t) || !inUnit(u) {
		return r2.Point{}, false
	}
	return a1.Add(r.Mul(t)), true
}

// RayLine intersects the ray origin + t*dir, t >= 0, with the line through (b1, b2).
func RayLine(origin, dir, b1, b2 r2.Point) (r2.Point, bool) {
	t, _, ok := params(origin, dir, b1, b2.Sub(b1))
	if !ok || t < -Eps {
		return r2.Point{}, false
	}
	return origin.Add(dir.Mul(t)), true
}

// RaySegment intersects the ray origin + t*dir, t >= 0, with the segment [b1, b2].
func RaySegment(origin, dir, b1, b2 r2.Point) (r2.Point, bool) {
	t, u, ok := params(origin, dir, b1, b2.Sub(b1))
	if !ok || t < -Eps || !inUnit(u) {
		return r2.Point{}, false
	}
	return origin.Add(dir.Mul(t)), true
}
