// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import "github.com/2dChan/r2voronoi/r2geom"

// BorderEdge is a border edge of the triangulation together with the
// triangle owning it.
type BorderEdge struct {
	Triangle TriangleID
	Slot     int
	Edge     r2geom.Edge
}

// IncidentTriangles returns the triangles around vertex vIdx sorted CCW. For
// vertices on the hull the first triangle follows the outgoing border edge.
// Only available after Finalize.
func (dt *Triangulation) IncidentTriangles(vIdx int) []TriangleID {
	if vIdx < 0 || vIdx+1 >= len(dt.incidentOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := dt.incidentOffsets[vIdx]
	end := dt.incidentOffsets[vIdx+1]
	return dt.incidentIndices[start:end]
}

// FindTrianglesAroundVertex returns the live triangles incident to vIdx in
// CCW order. Before Finalize it scans every triangle.
func (dt *Triangulation) FindTrianglesAroundVertex(vIdx int) []TriangleID {
	if dt.finalized {
		return dt.IncidentTriangles(vIdx)
	}
	var fan []TriangleID
	for id, t := range dt.tris {
		if t.live && t.Has(vIdx) {
			fan = append(fan, TriangleID(id))
		}
	}
	sortIncidentTrianglesCCW(vIdx, fan, dt.tris)
	return fan
}

// IsBorderVertex reports whether vIdx lies on a border edge.
func (dt *Triangulation) IsBorderVertex(vIdx int) bool {
	return len(dt.BorderEdges(vIdx)) > 0
}

// BorderEdges returns the border edges ending or starting at vIdx, incoming
// edge first.
func (dt *Triangulation) BorderEdges(vIdx int) []BorderEdge {
	var in, out []BorderEdge
	for _, id := range dt.FindTrianglesAroundVertex(vIdx) {
		t := dt.tris[id]
		for i, n := range t.Neighbors {
			if n != NoTriangle {
				continue
			}
			u, w := t.Edge(i)
			e := BorderEdge{Triangle: id, Slot: i, Edge: dt.Edge(id, i)}
			switch vIdx {
			case w:
				in = append(in, e)
			case u:
				out = append(out, e)
			}
		}
	}
	return append(in, out...)
}

func (dt *Triangulation) buildIncidentIndex() {
	numVertices := len(dt.vertices)
	dt.incidentOffsets = make([]int, numVertices+1)
	for _, t := range dt.tris {
		for _, v := range t.Vertices {
			dt.incidentOffsets[v+1]++
		}
	}
	for i := range numVertices {
		dt.incidentOffsets[i+1] += dt.incidentOffsets[i]
	}

	dt.incidentIndices = make([]TriangleID, dt.incidentOffsets[numVertices])
	nxt := make([]int, numVertices)
	copy(nxt, dt.incidentOffsets[:numVertices])
	for id, t := range dt.tris {
		for _, v := range t.Vertices {
			dt.incidentIndices[nxt[v]] = TriangleID(id)
			nxt[v]++
		}
	}

	for v := range numVertices {
		sortIncidentTrianglesCCW(v, dt.IncidentTriangles(v), dt.tris)
	}
}

// sortIncidentTrianglesCCW orders the triangles around vIdx so that each one
// shares its CCW edge at vIdx with the next. Border vertices start from the
// triangle without a clockwise neighbor.
func sortIncidentTrianglesCCW(vIdx int, incident []TriangleID, tris []Triangle) {
	n := len(incident)
	if n == 0 {
		return
	}
	for i, id := range incident {
		t := tris[id]
		if t.Neighbors[t.indexOf(vIdx)] == NoTriangle {
			incident[0], incident[i] = incident[i], incident[0]
			break
		}
	}
	for i := 1; i < n; i++ {
		prv := PrevVertex(tris[incident[i-1]], vIdx)
		for j := i; j < n; j++ {
			if NextVertex(tris[incident[j]], vIdx) == prv {
				incident[i], incident[j] = incident[j], incident[i]
				break
			}
		}
	}
}
