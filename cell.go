// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Cell represents a Voronoi cell. It is a view structure for accessing a cell in a Diagram.
// The cell's index corresponds to the index of its site in the Diagram's Sites.
type Cell struct {
	idx int
	d   *Diagram
}

// SiteIndex returns the index of the site in the Diagram's Sites.
func (c Cell) SiteIndex() int {
	return c.idx
}

// Site returns the site point of the cell.
func (c Cell) Site() r2.Point {
	return c.d.Sites[c.idx]
}

// Polygon returns the clipped cell boundary, or the empty polygon if the
// cell has not been built yet.
func (c Cell) Polygon() Polygon {
	if c.idx >= len(c.d.Polygons) {
		return Polygon{}
	}
	return c.d.Polygons[c.idx]
}

// NumVertices returns the number of vertices of the cell polygon.
func (c Cell) NumVertices() int {
	return c.Polygon().Len()
}

// Vertex returns the vertex at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Vertex(i int) (r2.Point, error) {
	vertices := c.Polygon().Vertices
	if i < 0 || i >= len(vertices) {
		return r2.Point{}, errors.Errorf("Vertex: index %d out of range [0 %d)", i, len(vertices))
	}
	return vertices[i], nil
}

// NeighborIndices returns the sites sharing a Delaunay edge with this one,
// sorted in counter-clockwise order around it. Duplicate sites report the
// neighbors of the site they coincide with.
func (c Cell) NeighborIndices() []int {
	d := c.d
	v := d.vertexOf[c.idx]
	fan := d.dt.IncidentTriangles(v)
	if len(fan) == 0 {
		return nil
	}

	neighbors := make([]int, 0, len(fan)+1)
	for _, id := range fan {
		neighbors = append(neighbors, d.firstSite[r2delaunay.NextVertex(d.dt.Triangle(id), v)])
	}
	last := d.dt.Triangle(fan[len(fan)-1])
	if prev := r2delaunay.PrevVertex(last, v); prev != r2delaunay.NextVertex(d.dt.Triangle(fan[0]), v) {
		neighbors = append(neighbors, d.firstSite[prev])
	}
	return neighbors
}

// NumNeighbors returns the number of neighboring cells.
func (c Cell) NumNeighbors() int {
	return len(c.NeighborIndices())
}

// Neighbor returns the neighboring cell at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Neighbor(i int) (Cell, error) {
	neighbors := c.NeighborIndices()
	if i < 0 || i >= len(neighbors) {
		return Cell{}, errors.Errorf("Neighbor: index %d out of range [0 %d)", i, len(neighbors))
	}
	return c.d.Cell(neighbors[i])
}
