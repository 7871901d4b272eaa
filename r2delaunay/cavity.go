// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"slices"

	"github.com/2dChan/r2voronoi/internal/invariant"
	"github.com/2dChan/r2voronoi/r2geom"
	"github.com/golang/geo/r2"
)

// holeEdge is a cavity boundary edge together with the live triangle just
// outside it.
type holeEdge struct {
	begin, end int
	outside    TriangleID
}

func (dt *Triangulation) insertVertex(v int) {
	p := dt.Point(v)

	start := dt.locate(p)
	if start == NoTriangle {
		invariant.Fatalf("vertex %d at %v is not covered by any triangle", v, p)
	}
	bad := dt.badTriangles(start, p)
	hole := dt.holeBoundary(bad)
	if lost, ok := dt.swallowed(bad, hole); ok {
		invariant.Fatalf("vertex %d at %v: cavity would drop vertex %d", v, p, lost)
	}
	if dt.opts.Observer != nil {
		edges := make([]r2geom.Edge, len(hole))
		for i, h := range hole {
			edges[i] = r2geom.Edge{Begin: dt.Point(h.begin), End: dt.Point(h.end)}
		}
		dt.opts.Observer.CavityFound(p, edges)
	}

	added := make([]TriangleID, len(hole))
	byBegin := make(map[int]TriangleID, len(hole))
	for i, h := range hole {
		id := dt.newTriangle(h.begin, h.end, v)
		added[i] = id
		byBegin[h.begin] = id
	}
	for i, h := range hole {
		dt.link(added[i], 0, h.outside)
	}
	slices.SortFunc(added, func(a, b TriangleID) int {
		pa := r2geom.PolarAngle(dt.Point(dt.tris[a].Vertices[0]), p)
		pb := r2geom.PolarAngle(dt.Point(dt.tris[b].Vertices[0]), p)
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		}
		return 0
	})
	// Edge 1 of a fan triangle (end->p) is shared with the triangle starting
	// at end, which is the next one CCW around p.
	for _, id := range added {
		end := dt.tris[id].Vertices[1]
		next, ok := byBegin[end]
		if !ok {
			invariant.Fatalf("vertex %d: cavity boundary is open at vertex %d", v, end)
		}
		dt.link(id, 1, next)
	}

	ids := make([]TriangleID, 0, len(bad))
	for id := range bad {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	dt.notifyRemoved(ids)
	for _, id := range ids {
		dt.kill(id)
	}
	dt.notifyAdded(added)

	if dt.opts.InsertLegalization {
		dt.legalize(added...)
	}
}

// locate returns a live triangle containing p, scanning linearly. Exact signs
// are tried first; the Eps-tolerant test only catches points that rounding
// leaves outside every triangle.
func (dt *Triangulation) locate(p r2.Point) TriangleID {
	if id := dt.scan(func(a, b r2.Point) bool {
		return r2geom.SignedArea(a, b, p) >= 0
	}); id != NoTriangle {
		return id
	}
	return dt.scan(func(a, b r2.Point) bool {
		return r2geom.Orientation(a, b, p) != r2geom.Right
	})
}

func (dt *Triangulation) scan(inside func(a, b r2.Point) bool) TriangleID {
	for id, t := range dt.tris {
		if !t.live {
			continue
		}
		a, b, c := dt.Point(t.Vertices[0]), dt.Point(t.Vertices[1]), dt.Point(t.Vertices[2])
		if inside(a, b) && inside(b, c) && inside(c, a) {
			return TriangleID(id)
		}
	}
	return NoTriangle
}

// badTriangles collects the triangles whose circumcircle contains p and that
// are connected to start, the triangle containing p. The cavity is grown until
// p sees every boundary edge from its left, so the fan built on it never
// folds over.
func (dt *Triangulation) badTriangles(start TriangleID, p r2.Point) map[TriangleID]bool {
	bad := map[TriangleID]bool{start: true}
	queue := []TriangleID{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, n := range dt.tris[id].Neighbors {
			if n == NoTriangle || bad[n] || !dt.inCircumcircle(n, p) {
				continue
			}
			bad[n] = true
			queue = append(queue, n)
		}
	}

	// An edge whose outside triangle would drop a vertex or pinch the boundary
	// stays in the cavity boundary and yields a flat fan triangle.
	for grown := true; grown; {
		grown = false
		for _, h := range dt.holeBoundary(bad) {
			if r2geom.SignedArea(dt.Point(h.begin), dt.Point(h.end), p) > 0 || bad[h.outside] {
				continue
			}
			if h.outside == NoTriangle {
				invariant.Fatalf("point %v lies on the border of the bounding region", p)
			}
			bad[h.outside] = true
			if _, lost := dt.swallowed(bad, dt.holeBoundary(bad)); lost {
				delete(bad, h.outside)
				continue
			}
			grown = true
		}
	}
	return bad
}

// swallowed returns a vertex of the cavity that the fan around the new point
// would not reach: one left inside the cavity or met twice along its
// boundary. ok is false when every vertex appears once on the boundary.
func (dt *Triangulation) swallowed(bad map[TriangleID]bool, hole []holeEdge) (v int, ok bool) {
	onBoundary := make(map[int]int, len(hole))
	for _, h := range hole {
		onBoundary[h.begin]++
		if onBoundary[h.begin] > 1 {
			return h.begin, true
		}
	}
	ids := make([]TriangleID, 0, len(bad))
	for id := range bad {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		for _, x := range dt.tris[id].Vertices {
			if onBoundary[x] == 0 {
				return x, true
			}
		}
	}
	return 0, false
}

func (dt *Triangulation) holeBoundary(bad map[TriangleID]bool) []holeEdge {
	ids := make([]TriangleID, 0, len(bad))
	for id := range bad {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var hole []holeEdge
	for _, id := range ids {
		t := dt.tris[id]
		for i, n := range t.Neighbors {
			if n != NoTriangle && bad[n] {
				continue
			}
			u, w := t.Edge(i)
			hole = append(hole, holeEdge{begin: u, end: w, outside: n})
		}
	}
	return hole
}
