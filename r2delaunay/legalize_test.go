// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

// mustNewQuad returns a triangulation of the quadrilateral a, b, c, d split
// along a-b into (a, b, c) and (b, a, d).
func mustNewQuad(t *testing.T, a, b, c, d r2.Point) *Triangulation {
	t.Helper()
	dt, err := New()
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
	dt.vertices = []r2.Point{a, b, c, d}
	upper := dt.newTriangle(0, 1, 2)
	lower := dt.newTriangle(1, 0, 3)
	dt.link(upper, 0, lower)
	return dt
}

func TestTriangulation_Legalize(t *testing.T) {
	tests := []struct {
		name string
		d    r2.Point
		want [][3]int
	}{
		{
			"illegal edge is flipped",
			r2.Point{X: 0.5, Y: -0.1},
			[][3]int{{3, 1, 2}, {2, 0, 3}},
		},
		{
			"legal edge is kept",
			r2.Point{X: 0.5, Y: -3},
			[][3]int{{0, 1, 2}, {1, 0, 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt := mustNewQuad(t, r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 0.5, Y: 0.1}, tt.d)
			dt.legalize(dt.Triangles()...)

			var got [][3]int
			for _, id := range dt.Triangles() {
				got = append(got, dt.Triangle(id).Vertices)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("dt.legalize(...) triangles mismatch (-want +got):\n%s", diff)
			}
			if dt.NumTriangles() != 2 {
				t.Errorf("dt.NumTriangles() = %d, want 2", dt.NumTriangles())
			}
		})
	}
}

func TestTriangulation_Flip_Links(t *testing.T) {
	dt := mustNewQuad(t,
		r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 0.5, Y: 0.1}, r2.Point{X: 0.5, Y: -0.1})
	t1, t2, ok := dt.flip(0, 0)
	if !ok {
		t.Fatalf("dt.flip(0, 0) ok = false, want true")
	}
	if dt.IsLive(0) || dt.IsLive(1) {
		t.Errorf("flipped triangles are still live")
	}
	if got := dt.Triangle(t1).Neighbors; got != [3]TriangleID{NoTriangle, NoTriangle, t2} {
		t.Errorf("dt.Triangle(%d).Neighbors = %v, want [-1 -1 %d]", t1, got, t2)
	}
	if got := dt.Triangle(t2).Neighbors; got != [3]TriangleID{NoTriangle, NoTriangle, t1} {
		t.Errorf("dt.Triangle(%d).Neighbors = %v, want [-1 -1 %d]", t2, got, t1)
	}
}
