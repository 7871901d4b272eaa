// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"github.com/2dChan/r2voronoi/internal/invariant"
	"github.com/2dChan/r2voronoi/internal/logging"
	"github.com/2dChan/r2voronoi/r2geom"
)

// legalize flips illegal edges starting from ids until every examined
// triangle is locally Delaunay or the budget runs out.
func (dt *Triangulation) legalize(ids ...TriangleID) {
	work := append([]TriangleID(nil), ids...)
	budget := dt.opts.LegalizeBudget
	for len(work) > 0 {
		if budget == 0 {
			logging.Logger().Debug("r2delaunay: legalization budget exhausted",
				"budget", dt.opts.LegalizeBudget, "remaining", len(work))
			return
		}
		budget--

		id := work[len(work)-1]
		work = work[:len(work)-1]
		if !dt.tris[id].live {
			continue
		}
		for i := range 3 {
			if !dt.illegal(id, i) {
				continue
			}
			t1, t2, ok := dt.flip(id, i)
			if !ok {
				continue
			}
			// Slots 0 and 1 of the new pair face the old surroundings.
			for _, nt := range [2]TriangleID{t1, t2} {
				for k := range 2 {
					if n := dt.tris[nt].Neighbors[k]; n != NoTriangle {
						work = append(work, n)
					}
				}
			}
			break
		}
	}
}

// illegal reports whether the apex of the neighbor across edge i lies
// inside the circumcircle of id.
func (dt *Triangulation) illegal(id TriangleID, i int) bool {
	n := dt.tris[id].Neighbors[i]
	if n == NoTriangle {
		return false
	}
	return dt.inCircumcircle(id, dt.Point(dt.apex(id, i)))
}

// apex returns the vertex of the neighbor across edge i that is not on it.
func (dt *Triangulation) apex(id TriangleID, i int) int {
	n := dt.tris[id].Neighbors[i]
	u, w := dt.tris[id].Edge(i)
	j := dt.tris[n].slotOf(w, u)
	if j < 0 {
		invariant.Fatalf("triangle %d: neighbor %d does not share edge %d", id, n, i)
	}
	return dt.tris[n].Vertices[(j+2)%3]
}

// flip replaces triangle id and its neighbor across edge i by the two
// triangles on the other diagonal of their quadrilateral. ok is false when
// the quadrilateral is not strictly convex.
func (dt *Triangulation) flip(id TriangleID, i int) (TriangleID, TriangleID, bool) {
	t := dt.tris[id]
	n := t.Neighbors[i]
	nt := dt.tris[n]

	a, b, c := t.Vertices[i], t.Vertices[(i+1)%3], t.Vertices[(i+2)%3]
	j := nt.slotOf(b, a)
	d := nt.Vertices[(j+2)%3]
	if r2geom.SignedArea(dt.Point(c), dt.Point(a), dt.Point(d)) <= 0 ||
		r2geom.SignedArea(dt.Point(d), dt.Point(b), dt.Point(c)) <= 0 {
		return NoTriangle, NoTriangle, false
	}

	ca, bc := t.Neighbors[(i+2)%3], t.Neighbors[(i+1)%3]
	ad, db := nt.Neighbors[(j+1)%3], nt.Neighbors[(j+2)%3]

	dt.notifyRemoved([]TriangleID{id, n})
	dt.kill(id)
	dt.kill(n)

	t1 := dt.newTriangle(c, a, d)
	t2 := dt.newTriangle(d, b, c)
	dt.link(t1, 0, ca)
	dt.link(t1, 1, ad)
	dt.link(t2, 0, db)
	dt.link(t2, 1, bc)
	dt.link(t1, 2, t2)
	dt.notifyAdded([]TriangleID{t1, t2})
	return t1, t2, true
}
