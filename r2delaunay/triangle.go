// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

// TriangleID is a handle into the triangle arena of a Triangulation.
type TriangleID int

// NoTriangle marks a border edge: there is no triangle across it.
const NoTriangle TriangleID = -1

// Triangle stores three vertex indices in CCW order and the handles of the
// triangles across each edge. Edge i runs from Vertices[i] to
// Vertices[(i+1)%3] and Neighbors[i] is the triangle sharing it.
//
// Negative vertex indices refer to the corners of the bounding region and
// only occur before Finalize.
type Triangle struct {
	Vertices  [3]int
	Neighbors [3]TriangleID

	live bool
}

// Edge returns the vertex indices of edge i.
func (t Triangle) Edge(i int) (int, int) {
	return t.Vertices[i], t.Vertices[(i+1)%3]
}

// IsBorder reports whether any edge has no neighbor.
func (t Triangle) IsBorder() bool {
	for _, n := range t.Neighbors {
		if n == NoTriangle {
			return true
		}
	}
	return false
}

// Has reports whether v is a vertex of t.
func (t Triangle) Has(v int) bool {
	return t.indexOf(v) >= 0
}

func (t Triangle) indexOf(v int) int {
	for i, u := range t.Vertices {
		if u == v {
			return i
		}
	}
	return -1
}

// slotOf returns the slot of the directed edge u->w, or -1.
func (t Triangle) slotOf(u, w int) int {
	for i := range 3 {
		if t.Vertices[i] == u && t.Vertices[(i+1)%3] == w {
			return i
		}
	}
	return -1
}

// slotTo returns the slot whose neighbor is id, or -1.
func (t Triangle) slotTo(id TriangleID) int {
	for i, n := range t.Neighbors {
		if n == id {
			return i
		}
	}
	return -1
}

func (t Triangle) touchesBoundingRegion() bool {
	for _, v := range t.Vertices {
		if v < 0 {
			return true
		}
	}
	return false
}

// PrevVertex returns the vertex preceding vIdx in the CCW order of t.
func PrevVertex(t Triangle, vIdx int) int {
	switch vIdx {
	case t.Vertices[0]:
		return t.Vertices[2]
	case t.Vertices[1]:
		return t.Vertices[0]
	case t.Vertices[2]:
		return t.Vertices[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

// NextVertex returns the vertex following vIdx in the CCW order of t.
func NextVertex(t Triangle, vIdx int) int {
	switch vIdx {
	case t.Vertices[0]:
		return t.Vertices[1]
	case t.Vertices[1]:
		return t.Vertices[2]
	case t.Vertices[2]:
		return t.Vertices[0]
	}
	panic("NextVertex: vIdx not in triangle")
}
