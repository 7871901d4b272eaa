// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"github.com/2dChan/r2voronoi/r2geom"
	"github.com/golang/geo/r2"
)

// Observer receives the transient state of every construction step, for
// animation and debugging. Triangles are passed by their corner points
// because removed triangles no longer exist in the arena.
type Observer interface {
	// CavityFound reports the boundary of the cavity opened by inserting p.
	CavityFound(p r2.Point, boundary []r2geom.Edge)
	TrianglesRemoved(tris [][3]r2.Point)
	TrianglesAdded(tris [][3]r2.Point)
}

// Recorder is an Observer accumulating events until Reset.
type Recorder struct {
	Point            r2.Point
	HolePolygonEdges []r2geom.Edge
	RemovedTriangles [][3]r2.Point
	AddedTriangles   [][3]r2.Point
}

func (r *Recorder) CavityFound(p r2.Point, boundary []r2geom.Edge) {
	r.Point = p
	r.HolePolygonEdges = append(r.HolePolygonEdges, boundary...)
}

func (r *Recorder) TrianglesRemoved(tris [][3]r2.Point) {
	r.RemovedTriangles = append(r.RemovedTriangles, tris...)
}

func (r *Recorder) TrianglesAdded(tris [][3]r2.Point) {
	r.AddedTriangles = append(r.AddedTriangles, tris...)
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	*r = Recorder{}
}

func (dt *Triangulation) corners(ids []TriangleID) [][3]r2.Point {
	out := make([][3]r2.Point, len(ids))
	for i, id := range ids {
		a, b, c := dt.TriangleVertices(id)
		out[i] = [3]r2.Point{a, b, c}
	}
	return out
}

func (dt *Triangulation) notifyRemoved(ids []TriangleID) {
	if dt.opts.Observer != nil && len(ids) > 0 {
		dt.opts.Observer.TrianglesRemoved(dt.corners(ids))
	}
}

func (dt *Triangulation) notifyAdded(ids []TriangleID) {
	if dt.opts.Observer != nil && len(ids) > 0 {
		dt.opts.Observer.TrianglesAdded(dt.corners(ids))
	}
}
