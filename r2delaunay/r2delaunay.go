// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2delaunay implements incremental Bowyer-Watson Delaunay
// triangulation of points in the unit square.
package r2delaunay

import (
	"github.com/2dChan/r2voronoi/internal/invariant"
	"github.com/2dChan/r2voronoi/internal/logging"
	"github.com/2dChan/r2voronoi/r2geom"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Triangulation is a Delaunay triangulation under construction or finalized.
// It is not safe for concurrent use.
type Triangulation struct {
	opts TriangulationOptions

	vertices []r2.Point
	// Corners of the bounding square, addressed by vertex indices -1..-4.
	bounds [4]r2.Point
	tris   []Triangle
	live   int

	pending    []r2.Point
	iterations int
	finalized  bool

	// Built by Finalize. NOTE: Sorted CCW per vertex.
	incidentIndices []TriangleID
	incidentOffsets []int
}

// New returns an empty triangulation for progressive construction.
func New(setters ...TriangulationOption) (*Triangulation, error) {
	opts := defaultOptions()
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	return &Triangulation{opts: opts}, nil
}

// NewTriangulation inserts every vertex and finalizes the result.
// Points closer than r2geom.Eps to an earlier one are skipped.
func NewTriangulation(vertices []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	dt, err := New(setters...)
	if err != nil {
		return nil, err
	}
	for i, p := range vertices {
		if _, err := dt.Insert(p); err != nil {
			return nil, errors.Wrapf(err, "r2delaunay: vertex %d", i)
		}
	}
	if err := dt.Finalize(); err != nil {
		return nil, err
	}
	return dt, nil
}

// BoundingRegion returns the square every inserted point must lie in.
func (dt *Triangulation) BoundingRegion() r2geom.AABB {
	return r2geom.UnitSquare().Expanded(dt.opts.Margin)
}

// Insert adds p and returns its vertex index. A point within r2geom.Eps of
// an inserted vertex is ignored and the index of that vertex is returned.
func (dt *Triangulation) Insert(p r2.Point) (idx int, err error) {
	if dt.finalized {
		return -1, ErrFinalized
	}
	if v := dt.nearVertex(p); v >= 0 {
		return v, nil
	}
	if !dt.BoundingRegion().StrictlyContains(p) {
		return -1, errors.Wrapf(ErrOutOfBounds, "insert %v", p)
	}
	v := len(dt.vertices)
	defer func() {
		if rerr := invariant.Recover(recover()); rerr != nil {
			dt.vertices = dt.vertices[:v]
			idx, err = -1, rerr
		}
	}()

	if len(dt.tris) == 0 {
		dt.seedBoundingRegion()
	}
	dt.vertices = append(dt.vertices, p)
	dt.insertVertex(v)
	return v, nil
}

// Enqueue schedules points for progressive insertion by Step.
func (dt *Triangulation) Enqueue(points ...r2.Point) {
	dt.pending = append(dt.pending, points...)
}

// Step inserts the next queued point. Once the queue is empty the following
// call finalizes the triangulation.
func (dt *Triangulation) Step() error {
	if dt.finalized {
		return ErrFinalized
	}
	dt.iterations++
	if len(dt.pending) == 0 {
		return dt.Finalize()
	}
	p := dt.pending[0]
	dt.pending = dt.pending[1:]
	_, err := dt.Insert(p)
	return err
}

// Ended reports whether the triangulation has been finalized.
func (dt *Triangulation) Ended() bool {
	return dt.finalized
}

// Iterations returns the number of Step calls made so far.
func (dt *Triangulation) Iterations() int {
	return dt.iterations
}

// NumPending returns the number of queued points.
func (dt *Triangulation) NumPending() int {
	return len(dt.pending)
}

// Vertices returns the inserted vertices in insertion order.
func (dt *Triangulation) Vertices() []r2.Point {
	return dt.vertices
}

// Point returns the position of vertex v, including bounding-region corners.
func (dt *Triangulation) Point(v int) r2.Point {
	if v < 0 {
		return dt.bounds[-v-1]
	}
	return dt.vertices[v]
}

// NumTriangles returns the number of live triangles.
func (dt *Triangulation) NumTriangles() int {
	return dt.live
}

// Triangles returns the handles of the live triangles. After Finalize they
// are exactly 0..NumTriangles()-1.
func (dt *Triangulation) Triangles() []TriangleID {
	ids := make([]TriangleID, 0, dt.live)
	for id, t := range dt.tris {
		if t.live {
			ids = append(ids, TriangleID(id))
		}
	}
	return ids
}

// Triangle returns a copy of triangle id.
func (dt *Triangulation) Triangle(id TriangleID) Triangle {
	if id < 0 || int(id) >= len(dt.tris) {
		panic("Triangle: id out of range")
	}
	return dt.tris[id]
}

// IsLive reports whether id refers to a triangle of the current triangulation.
func (dt *Triangulation) IsLive(id TriangleID) bool {
	return id >= 0 && int(id) < len(dt.tris) && dt.tris[id].live
}

// TriangleVertices returns the corners of triangle id in CCW order.
func (dt *Triangulation) TriangleVertices(id TriangleID) (r2.Point, r2.Point, r2.Point) {
	t := dt.Triangle(id)
	return dt.Point(t.Vertices[0]), dt.Point(t.Vertices[1]), dt.Point(t.Vertices[2])
}

// Edge returns edge i of triangle id as points.
func (dt *Triangulation) Edge(id TriangleID, i int) r2geom.Edge {
	u, w := dt.Triangle(id).Edge(i)
	return r2geom.Edge{Begin: dt.Point(u), End: dt.Point(w)}
}

// Circumcenter returns the circumcenter of triangle id, or its centroid
// when the triangle is degenerate.
func (dt *Triangulation) Circumcenter(id TriangleID) r2.Point {
	a, b, c := dt.TriangleVertices(id)
	return r2geom.CircumcenterOrCentroid(a, b, c)
}

func (dt *Triangulation) inCircumcircle(id TriangleID, p r2.Point) bool {
	a, b, c := dt.TriangleVertices(id)
	return r2geom.InCircumcircle(p, a, b, c)
}

func (dt *Triangulation) nearVertex(p r2.Point) int {
	for i, q := range dt.vertices {
		if r2geom.Near(p, q) {
			return i
		}
	}
	return -1
}

func (dt *Triangulation) newTriangle(a, b, c int) TriangleID {
	dt.tris = append(dt.tris, Triangle{
		Vertices:  [3]int{a, b, c},
		Neighbors: [3]TriangleID{NoTriangle, NoTriangle, NoTriangle},
		live:      true,
	})
	dt.live++
	return TriangleID(len(dt.tris) - 1)
}

func (dt *Triangulation) kill(id TriangleID) {
	if dt.tris[id].live {
		dt.tris[id].live = false
		dt.live--
	}
}

// link makes b the neighbor of a across slot i and a the neighbor of b
// across the same edge.
func (dt *Triangulation) link(a TriangleID, i int, b TriangleID) {
	dt.tris[a].Neighbors[i] = b
	if b == NoTriangle {
		return
	}
	u, w := dt.tris[a].Edge(i)
	j := dt.tris[b].slotOf(w, u)
	if j < 0 {
		invariant.Fatalf("triangles %d and %d do not share edge (%d, %d)", a, b, u, w)
	}
	dt.tris[b].Neighbors[j] = a
}

func (dt *Triangulation) seedBoundingRegion() {
	dt.bounds = dt.BoundingRegion().Corners()
	lower := dt.newTriangle(-1, -2, -3)
	upper := dt.newTriangle(-1, -3, -4)
	dt.link(lower, 2, upper)
	logging.Logger().Debug("r2delaunay: seeded bounding region", "margin", dt.opts.Margin)
	dt.notifyAdded([]TriangleID{lower, upper})
}
