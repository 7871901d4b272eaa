// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"slices"

	"github.com/2dChan/r2voronoi/internal/invariant"
	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/2dChan/r2voronoi/r2geom"
	"github.com/golang/geo/r2"
)

// farFactor scales the distance of the anchor points closing the cells of
// hull seeds, relative to the extent of the cell and the clipping box.
const farFactor = 10

// buildCell computes the clipped polygon of site i.
func (d *Diagram) buildCell(i int) Polygon {
	v := d.vertexOf[i]
	if first := d.firstSite[v]; first != i {
		return d.Polygons[first].Clone()
	}
	fan := d.dt.IncidentTriangles(v)
	if len(fan) == 0 {
		return d.halfPlaneCell(i)
	}

	// Circumcenters of the fan are the cell vertices, already CCW around v.
	raw := make([]r2.Point, len(fan))
	for k, id := range fan {
		raw[k] = d.dt.Circumcenter(id)
	}

	edges := d.dt.BorderEdges(v)
	border := len(edges) > 0
	switch {
	case !border:
		r2geom.SortCCW(raw, r2geom.Centroid(raw...))
	case len(edges) != 2:
		invariant.Fatalf("seed %d: found %d border edges, want 2", i, len(edges))
	default:
		raw = d.closeBorderCell(i, raw, edges[0], edges[1])
	}

	pts := r2geom.Dedupe(d.opts.Bounds.CropPolygon(raw))
	if len(pts) < 2 {
		return Polygon{}
	}
	if border {
		pts = d.repairCorners(i, pts)
	}
	if len(pts) > 2 {
		r2geom.SortCCW(pts, r2geom.Centroid(pts...))
	}
	return NewPolygon(pts)
}

// closeBorderCell turns the open chain of circumcenters of a hull seed into a
// convex polygon: it follows the outward ray of the incoming hull edge, passes
// far anchors around the seed and returns along the ray of the outgoing edge.
func (d *Diagram) closeBorderCell(i int, chain []r2.Point, in, out r2delaunay.BorderEdge) []r2.Point {
	s := d.Sites[i]
	if !r2geom.Near(in.Edge.End, s) || !r2geom.Near(out.Edge.Begin, s) {
		invariant.Fatalf("seed %d: border edges %v and %v do not meet at the seed", i, in.Edge, out.Edge)
	}

	dirIn, dirOut := in.Edge.RightMediatrix(), out.Edge.RightMediatrix()
	cIn, cOut := d.dt.Circumcenter(in.Triangle), d.dt.Circumcenter(out.Triangle)

	reach := 0.0
	for _, c := range d.opts.Bounds.Corners() {
		reach = max(reach, c.Sub(s).Norm())
	}
	for _, c := range chain {
		reach = max(reach, c.Sub(s).Norm())
	}
	far := farFactor * (reach + 1)

	poly := slices.Clone(chain)
	poly = append(poly, d.opts.Bounds.IntersectionsRay(cIn, dirIn)...)
	poly = append(poly,
		cIn.Add(dirIn.Mul(far)),
		s.Add(bisector(dirIn, dirOut).Mul(far)),
		cOut.Add(dirOut.Mul(far)),
	)
	hits := d.opts.Bounds.IntersectionsRay(cOut, dirOut)
	slices.Reverse(hits)
	return append(poly, hits...)
}

// bisector returns the unit vector halfway along the short turn between the
// outward normals of two consecutive hull edges. The hull is convex, so the
// turn never exceeds a half circle; a half turn rotates from CCW.
func bisector(from, to r2.Point) r2.Point {
	sum := from.Add(to)
	if sum.Norm() < r2geom.Eps {
		return from.Ortho()
	}
	return sum.Normalize()
}

// repairCorners inserts the box corners skipped by an edge running between
// two different sides of the box, for the corners site i is nearest to, and
// then drops vertices made redundant.
func (d *Diagram) repairCorners(i int, pts []r2.Point) []r2.Point {
	box := d.opts.Bounds
	n := len(pts)
	out := make([]r2.Point, 0, n+4)
	for k, p := range pts {
		out = append(out, p)
		q := pts[(k+1)%n]
		sp, sq := box.Side(p), box.Side(q)
		if sp == 0 || sq == 0 || sp == sq || box.IsCorner(p) || box.IsCorner(q) {
			continue
		}
		for _, c := range box.CornersBetween(sp, sq) {
			present := slices.ContainsFunc(pts, func(x r2.Point) bool { return r2geom.Near(x, c) })
			if !present && d.ownsCorner(i, c) {
				out = append(out, c)
			}
		}
	}
	return dropCollinear(out)
}

// ownsCorner reports whether no other site is strictly closer to c than site i.
func (d *Diagram) ownsCorner(i int, c r2.Point) bool {
	dist := d.Sites[i].Sub(c).Norm()
	for _, j := range d.distinct {
		if d.Sites[j].Sub(c).Norm() < dist-r2geom.Eps {
			return false
		}
	}
	return true
}

func dropCollinear(pts []r2.Point) []r2.Point {
	for changed := true; changed && len(pts) > 3; {
		changed = false
		n := len(pts)
		for k := range n {
			a, b, c := pts[(k+n-1)%n], pts[k], pts[(k+1)%n]
			if r2geom.Orientation(a, b, c) == r2geom.Collinear {
				pts = slices.Delete(pts, k, k+1)
				changed = true
				break
			}
		}
	}
	return pts
}
