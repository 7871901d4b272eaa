// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTriangulation_IncidentTriangles(t *testing.T) {
	assertPanic := func(dt *Triangulation, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("dt.IncidentTriangles(%d) did not panic, want panic", in)
			}
		}()
		dt.IncidentTriangles(in)
	}

	dt := &Triangulation{
		incidentIndices: []TriangleID{0, 1, 1, 1, 2},
		incidentOffsets: []int{0, 2, 3, 5},
	}

	tests := []struct {
		name string
		in   int
		want []TriangleID
	}{
		{"index 0", 0, []TriangleID{0, 1}},
		{"index 1", 1, []TriangleID{1}},
		{"index 2", 2, []TriangleID{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dt.IncidentTriangles(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("dt.IncidentTriangles(%d) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}

	assertPanic(dt, -1)
	assertPanic(dt, len(dt.incidentOffsets)-1)
}

func TestNewTriangulation_VerifyIncidentTrianglesSorted(t *testing.T) {
	dt := mustNewTriangulation(t, 100)

	total := 0
	for vIdx := range len(dt.Vertices()) {
		incidentTris := dt.IncidentTriangles(vIdx)
		total += len(incidentTris)
		for i := 1; i < len(incidentTris); i++ {
			pt := dt.Triangle(incidentTris[i-1])
			ct := dt.Triangle(incidentTris[i])
			if PrevVertex(pt, vIdx) != NextVertex(ct, vIdx) {
				t.Errorf("dt.IncidentTriangles(%d) triangles %d and %d are not CCW neighbors", vIdx, i-1, i)
			}
		}
	}
	if want := 3 * dt.NumTriangles(); total != want {
		t.Errorf("incident triangle count = %d, want %d", total, want)
	}
}

func TestTriangulation_FindTrianglesAroundVertex(t *testing.T) {
	points := mustNewTriangulation(t, 40).Vertices()
	dt, err := New()
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
	for _, p := range points {
		if _, err := dt.Insert(p); err != nil {
			t.Fatalf("dt.Insert(%v) error = %v, want nil", p, err)
		}
	}

	// Before Finalize every real vertex is interior to the bounding region.
	for v := range points {
		fan := dt.FindTrianglesAroundVertex(v)
		if len(fan) < 3 {
			t.Errorf("dt.FindTrianglesAroundVertex(%d) = %v, want at least 3 triangles", v, fan)
		}
		first, last := dt.Triangle(fan[0]), dt.Triangle(fan[len(fan)-1])
		if PrevVertex(last, v) != NextVertex(first, v) {
			t.Errorf("dt.FindTrianglesAroundVertex(%d) fan is not closed", v)
		}
	}

	if err := dt.Finalize(); err != nil {
		t.Fatalf("dt.Finalize() error = %v, want nil", err)
	}
	for v := range points {
		if diff := cmp.Diff(dt.IncidentTriangles(v), dt.FindTrianglesAroundVertex(v)); diff != "" {
			t.Errorf("dt.FindTrianglesAroundVertex(%d) mismatch (-want +got):\n%s", v, diff)
		}
	}
}

func TestTriangulation_BorderEdges(t *testing.T) {
	dt := mustNewTriangulation(t, 60)

	loop, ok := dt.borderLoop()
	if !ok {
		t.Fatalf("dt.borderLoop() ok = false, want true")
	}
	onBorder := make(map[int]bool)
	for _, e := range loop {
		onBorder[e.begin] = true
	}
	for v := range dt.Vertices() {
		edges := dt.BorderEdges(v)
		if !onBorder[v] {
			if len(edges) != 0 {
				t.Errorf("dt.BorderEdges(%d) = %v, want none", v, edges)
			}
			continue
		}
		if len(edges) != 2 {
			t.Fatalf("len(dt.BorderEdges(%d)) = %d, want 2", v, len(edges))
		}
		if p := dt.Point(v); edges[0].Edge.End != p || edges[1].Edge.Begin != p {
			t.Errorf("dt.BorderEdges(%d) = %v, want incoming then outgoing", v, edges)
		}
		for _, e := range edges {
			if n := dt.Triangle(e.Triangle).Neighbors[e.Slot]; n != NoTriangle {
				t.Errorf("dt.BorderEdges(%d) slot %d has neighbor %d, want none", v, e.Slot, n)
			}
		}
		first := dt.Triangle(dt.IncidentTriangles(v)[0])
		if first.Neighbors[first.indexOf(v)] != NoTriangle {
			t.Errorf("dt.IncidentTriangles(%d) does not start at the outgoing border edge", v)
		}
	}
}

func TestSortIncidentTrianglesCCW(t *testing.T) {
	tris3 := []Triangle{
		{Vertices: [3]int{0, 1, 2}, Neighbors: [3]TriangleID{2, NoTriangle, 1}},
		{Vertices: [3]int{0, 2, 3}, Neighbors: [3]TriangleID{0, NoTriangle, 2}},
		{Vertices: [3]int{0, 3, 1}, Neighbors: [3]TriangleID{1, NoTriangle, 0}},
	}
	expected3 := []TriangleID{0, 1, 2}
	incident3 := []TriangleID{0, 2, 1}
	sortIncidentTrianglesCCW(0, incident3, tris3)
	if !cyclicEqual(incident3, expected3) {
		t.Errorf("sortIncidentTrianglesCCW(...) incident3 = %v, want %v", incident3, expected3)
	}

	// A fan open between vertices 1 and 4 must start at the triangle
	// holding the outgoing border edge 0->1.
	tris4 := []Triangle{
		{Vertices: [3]int{0, 1, 2}, Neighbors: [3]TriangleID{NoTriangle, NoTriangle, 1}},
		{Vertices: [3]int{0, 2, 3}, Neighbors: [3]TriangleID{0, NoTriangle, 2}},
		{Vertices: [3]int{0, 3, 4}, Neighbors: [3]TriangleID{1, NoTriangle, NoTriangle}},
	}
	expected4 := []TriangleID{0, 1, 2}
	incident4 := []TriangleID{2, 0, 1}
	sortIncidentTrianglesCCW(0, incident4, tris4)
	if diff := cmp.Diff(expected4, incident4); diff != "" {
		t.Errorf("sortIncidentTrianglesCCW(...) incident4 mismatch (-want +got):\n%s", diff)
	}
}
