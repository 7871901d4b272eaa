// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"slices"

	"github.com/2dChan/r2voronoi/internal/invariant"
	"github.com/2dChan/r2voronoi/internal/logging"
	"github.com/2dChan/r2voronoi/r2geom"
	"github.com/pkg/errors"
)

// maxRebuilds bounds how many times Finalize retries with a larger bounding
// region when the repaired border is not the convex hull.
const maxRebuilds = 4

// borderEdge is a directed hull edge; the triangulation lies on its left.
type borderEdge struct {
	begin, end int
}

// Finalize removes the bounding region, repairs the border into the convex
// hull of the inserted points and builds the vertex-to-triangle index. It is a
// no-op on a finalized triangulation.
func (dt *Triangulation) Finalize() (err error) {
	if dt.finalized {
		return nil
	}
	defer func() {
		if rerr := invariant.Recover(recover()); rerr != nil {
			err = rerr
		}
	}()

	for attempt := 0; ; attempt++ {
		dt.removeBoundingRegion()
		dt.repairBorder()
		verr := dt.validate()
		if verr == nil {
			break
		}
		if attempt == maxRebuilds {
			invariant.Fatalf("finalize: %v after %d rebuilds", verr, attempt)
		}
		logging.Logger().Warn("r2delaunay: hull repair failed, rebuilding with a larger bounding region",
			"reason", verr, "margin", dt.opts.Margin*10)
		dt.rebuild(dt.opts.Margin * 10)
	}

	dt.compact()
	dt.buildIncidentIndex()
	dt.pending = nil
	dt.finalized = true
	logging.Logger().Debug("r2delaunay: finalized",
		"vertices", len(dt.vertices), "triangles", dt.live)
	return nil
}

// removeBoundingRegion deletes every triangle incident to a bounding-region
// corner and clears the references to them.
func (dt *Triangulation) removeBoundingRegion() {
	var removed []TriangleID
	for id, t := range dt.tris {
		if t.live && t.touchesBoundingRegion() {
			removed = append(removed, TriangleID(id))
		}
	}
	for _, id := range removed {
		for _, n := range dt.tris[id].Neighbors {
			if n == NoTriangle || !dt.tris[n].live {
				continue
			}
			if k := dt.tris[n].slotTo(id); k >= 0 {
				dt.tris[n].Neighbors[k] = NoTriangle
			}
		}
	}
	dt.notifyRemoved(removed)
	for _, id := range removed {
		dt.kill(id)
	}
}

// borderLoop returns the border edges chained into one closed CCW loop.
// ok is false when the border is empty, pinched or split into several loops.
func (dt *Triangulation) borderLoop() ([]borderEdge, bool) {
	byBegin := make(map[int]borderEdge)
	first := borderEdge{-1, -1}
	for _, t := range dt.tris {
		if !t.live {
			continue
		}
		for i, n := range t.Neighbors {
			if n != NoTriangle {
				continue
			}
			u, w := t.Edge(i)
			if _, dup := byBegin[u]; dup {
				return nil, false
			}
			byBegin[u] = borderEdge{u, w}
			if first.begin < 0 {
				first = byBegin[u]
			}
		}
	}
	if len(byBegin) == 0 {
		return nil, false
	}

	loop := make([]borderEdge, 0, len(byBegin))
	for e := first; ; {
		loop = append(loop, e)
		next, ok := byBegin[e.end]
		if !ok {
			return nil, false
		}
		if next == first {
			break
		}
		if len(loop) > len(byBegin) {
			return nil, false
		}
		e = next
	}
	return loop, len(loop) == len(byBegin)
}

// owner returns the live triangle having u->w as a border edge.
func (dt *Triangulation) owner(u, w int) (TriangleID, int) {
	for id, t := range dt.tris {
		if !t.live {
			continue
		}
		if i := t.slotOf(u, w); i >= 0 && t.Neighbors[i] == NoTriangle {
			return TriangleID(id), i
		}
	}
	invariant.Fatalf("no triangle owns border edge (%d, %d)", u, w)
	return NoTriangle, -1
}

// repairBorder fills the concave pockets left along the border with new
// triangles until the border turns left (or goes straight) at every vertex.
func (dt *Triangulation) repairBorder() {
	loop, ok := dt.borderLoop()
	if !ok {
		return
	}
	for changed := true; changed; {
		changed = false
		for k := 0; k < len(loop) && len(loop) > 3; {
			next := (k + 1) % len(loop)
			a, m, b := loop[k].begin, loop[k].end, loop[next].end
			if r2geom.RelativeOrientation(dt.Point(a), dt.Point(m), dt.Point(b)) != r2geom.Right ||
				!dt.pocketEmpty(a, b, m) {
				k++
				continue
			}

			dt.patch(a, b, m)
			loop[k] = borderEdge{a, b}
			loop = slices.Delete(loop, next, next+1)
			if next < k {
				k--
			}
			// The previous pair now ends with the new edge.
			if k > 0 {
				k--
			}
			changed = true
		}
	}
}

// pocketEmpty reports whether no vertex lies strictly inside triangle (a, b, m).
func (dt *Triangulation) pocketEmpty(a, b, m int) bool {
	pa, pb, pm := dt.Point(a), dt.Point(b), dt.Point(m)
	for v, p := range dt.vertices {
		if v == a || v == b || v == m {
			continue
		}
		if r2geom.SignedArea(pa, pb, p) > 0 &&
			r2geom.SignedArea(pb, pm, p) > 0 &&
			r2geom.SignedArea(pm, pa, p) > 0 {
			return false
		}
	}
	return true
}

// patch closes the reflex turn a->m->b with triangle (a, b, m) and legalizes it.
// Its edge a->b becomes a border edge; flips may hand it to another triangle,
// so owners are always looked up again through owner.
func (dt *Triangulation) patch(a, b, m int) {
	first, _ := dt.owner(a, m)
	second, _ := dt.owner(m, b)
	id := dt.newTriangle(a, b, m)
	dt.link(id, 1, second)
	dt.link(id, 2, first)
	dt.notifyAdded([]TriangleID{id})
	dt.legalize(id)
}

// validate checks that the triangulation covers every vertex and that its
// border is a single convex loop satisfying Euler's formula.
func (dt *Triangulation) validate() error {
	n := len(dt.vertices)
	if dt.collinear() {
		if dt.live != 0 {
			return errors.Errorf("degenerate input left %d triangles", dt.live)
		}
		return nil
	}

	covered := make([]bool, n)
	for _, t := range dt.tris {
		if !t.live {
			continue
		}
		for _, v := range t.Vertices {
			if v >= 0 {
				covered[v] = true
			}
		}
	}
	if i := slices.Index(covered, false); i >= 0 {
		return errors.Errorf("vertex %d is not part of any triangle", i)
	}

	loop, ok := dt.borderLoop()
	if !ok {
		return errors.New("border is not a single closed loop")
	}
	for k, e := range loop {
		b := loop[(k+1)%len(loop)].end
		if r2geom.RelativeOrientation(dt.Point(e.begin), dt.Point(e.end), dt.Point(b)) == r2geom.Right {
			return errors.Errorf("border is concave at vertex %d", e.end)
		}
	}
	if want := 2*n - len(loop) - 2; dt.live != want {
		return errors.Errorf("found %d triangles, want %d", dt.live, want)
	}
	return nil
}

// collinear reports whether no three vertices span a triangle.
func (dt *Triangulation) collinear() bool {
	if len(dt.vertices) < 3 {
		return true
	}
	a, b := dt.vertices[0], dt.vertices[1]
	for _, p := range dt.vertices[2:] {
		if p.Sub(a).Norm() > b.Sub(a).Norm() {
			b = p
		}
	}
	for _, c := range dt.vertices[1:] {
		if r2geom.RelativeOrientation(a, b, c) != r2geom.Collinear {
			return false
		}
	}
	return true
}

// rebuild starts over with a larger bounding region, keeping vertex indices.
func (dt *Triangulation) rebuild(margin float64) {
	vertices := dt.vertices
	dt.notifyRemoved(dt.Triangles())
	dt.opts.Margin = margin
	dt.vertices = nil
	dt.tris = nil
	dt.live = 0
	dt.seedBoundingRegion()
	for _, p := range vertices {
		dt.vertices = append(dt.vertices, p)
		dt.insertVertex(len(dt.vertices) - 1)
	}
}

// compact drops dead triangles so that live ones are numbered 0..n-1.
func (dt *Triangulation) compact() {
	remap := make([]TriangleID, len(dt.tris))
	next := TriangleID(0)
	for id, t := range dt.tris {
		remap[id] = NoTriangle
		if t.live {
			remap[id] = next
			next++
		}
	}
	tris := make([]Triangle, 0, next)
	for id, t := range dt.tris {
		if !t.live {
			continue
		}
		for i, n := range t.Neighbors {
			if n == NoTriangle {
				continue
			}
			if remap[n] == NoTriangle {
				invariant.Fatalf("triangle %d references dead neighbor %d", id, n)
			}
			t.Neighbors[i] = remap[n]
		}
		tris = append(tris, t)
	}
	dt.tris = tris
}
