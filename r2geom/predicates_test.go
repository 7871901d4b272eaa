// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2geom

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmp.Options{cmpopts.EquateApprox(0, 1e-9), cmpopts.EquateEmpty()}

func pt(x, y float64) r2.Point {
	return r2.Point{X: x, Y: y}
}

func TestOrientation(t *testing.T) {
	a, b := pt(0, 0), pt(1, 0)
	tests := []struct {
		name string
		p    r2.Point
		want Side
	}{
		{"left", pt(0.5, 1), Left},
		{"right", pt(0.5, -1), Right},
		{"collinear beyond", pt(2, 0), Collinear},
		{"collinear within eps", pt(0.5, 1e-10), Collinear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Orientation(a, b, tt.p); got != tt.want {
				t.Errorf("Orientation(%v, %v, %v) = %v, want %v", a, b, tt.p, got, tt.want)
			}
		})
	}
}

func TestRelativeOrientation(t *testing.T) {
	tests := []struct {
		name    string
		a, b, p r2.Point
		want    Side
	}{
		{"left", pt(0, 0), pt(1, 0), pt(0.5, 1), Left},
		{"right", pt(0, 0), pt(1, 0), pt(0.5, -1), Right},
		{"nearly straight", pt(0.1, 0.1), pt(0.5, 0.1+1e-10), pt(0.9, 0.1), Collinear},
		{"small left", pt(0.5, 0.5), pt(0.50005, 0.5), pt(0.5, 0.50005), Left},
		{"small right", pt(0.5, 0.5), pt(0.50005, 0.5), pt(0.5, 0.49995), Right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeOrientation(tt.a, tt.b, tt.p); got != tt.want {
				t.Errorf("RelativeOrientation(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.p, got, tt.want)
			}
		})
	}

	if got := Orientation(pt(0.5, 0.5), pt(0.50005, 0.5), pt(0.5, 0.50005)); got != Collinear {
		t.Errorf("Orientation(small left) = %v, want %v", got, Collinear)
	}
}

func TestSignedArea(t *testing.T) {
	a, b, c := pt(0, 0), pt(1, 0), pt(0, 1)
	if got := SignedArea(a, b, c); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("SignedArea(CCW) = %v, want 0.5", got)
	}
	if got := SignedArea(a, c, b); math.Abs(got+0.5) > 1e-12 {
		t.Errorf("SignedArea(CW) = %v, want -0.5", got)
	}
}

func TestCircumcenter(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c r2.Point
		want    r2.Point
		wantOk  bool
	}{
		{"right triangle", pt(0, 0), pt(2, 0), pt(0, 2), pt(1, 1), true},
		{"equilateral-ish", pt(0, 0), pt(1, 0), pt(0.5, 1), pt(0.5, 0.375), true},
		{"collinear", pt(0.1, 0.5), pt(0.5, 0.5), pt(0.9, 0.5), r2.Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Circumcenter(tt.a, tt.b, tt.c)
			if ok != tt.wantOk {
				t.Fatalf("Circumcenter(...) ok = %v, want %v", ok, tt.wantOk)
			}
			if diff := cmp.Diff(tt.want, got, approx); ok && diff != "" {
				t.Errorf("Circumcenter(...) mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCircumcenterOrCentroid(t *testing.T) {
	got := CircumcenterOrCentroid(pt(0.1, 0.5), pt(0.5, 0.5), pt(0.9, 0.5))
	if diff := cmp.Diff(pt(0.5, 0.5), got, approx); diff != "" {
		t.Errorf("CircumcenterOrCentroid(collinear) mismatch (-want +got):\n%s", diff)
	}
}

func TestInCircumcircle(t *testing.T) {
	a, b, c := pt(0, 0), pt(1, 0), pt(0, 1)
	tests := []struct {
		name string
		p    r2.Point
		want bool
	}{
		{"center", pt(0.5, 0.5), true},
		{"on circle", pt(1, 1), false},
		{"vertex", pt(0, 0), false},
		{"outside", pt(2, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InCircumcircle(tt.p, a, b, c); got != tt.want {
				t.Errorf("InCircumcircle(%v, ...) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	if InCircumcircle(pt(0.5, 0.5), pt(0.1, 0.5), pt(0.5, 0.5), pt(0.9, 0.5)) {
		t.Errorf("InCircumcircle(collinear triple) = true, want false")
	}
	if !InCircumcircle(pt(0.5, 0.5), a, c, b) {
		t.Errorf("InCircumcircle(center, clockwise) = false, want true")
	}
}

func TestInCircumcircle_Thin(t *testing.T) {
	// Doubled area 2e-9, below Eps; the circle has radius about 0.0625.
	a, b, c := pt(0.5, 0.5), pt(0.501, 0.5), pt(0.5005, 0.500002)
	if !InCircumcircle(pt(0.5005, 0.49), a, b, c) {
		t.Errorf("InCircumcircle(below chord) = false, want true")
	}
	if InCircumcircle(pt(0.5005, 0.6), a, b, c) {
		t.Errorf("InCircumcircle(above arc) = true, want false")
	}
}

func TestSortCCW(t *testing.T) {
	points := []r2.Point{pt(0, -1), pt(-1, 0), pt(1, 0), pt(0, 1)}
	SortCCW(points, pt(0, 0))
	want := []r2.Point{pt(1, 0), pt(0, 1), pt(-1, 0), pt(0, -1)}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Errorf("SortCCW(...) mismatch (-want +got):\n%s", diff)
	}
}

func TestDedupe(t *testing.T) {
	got := Dedupe([]r2.Point{pt(0, 0), pt(1e-10, 0), pt(1, 1), pt(1, 1)})
	want := []r2.Point{pt(0, 0), pt(1, 1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Dedupe(...) mismatch (-want +got):\n%s", diff)
	}
}

func TestPolygonContains(t *testing.T) {
	square := []r2.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}
	tests := []struct {
		name string
		p    r2.Point
		want bool
	}{
		{"inside", pt(0.5, 0.5), true},
		{"on edge", pt(0, 0.5), true},
		{"corner", pt(1, 1), true},
		{"outside", pt(1.5, 0.5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PolygonContains(square, tt.p); got != tt.want {
				t.Errorf("PolygonContains(square, %v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
	if PolygonContains(square[:2], pt(0.5, 0)) {
		t.Errorf("PolygonContains(segment, ...) = true, want false")
	}
}

// Helpers

func polygonArea(poly []r2.Point) float64 {
	var a float64
	for i := range poly {
		a += poly[i].Cross(poly[(i+1)%len(poly)])
	}
	return a / 2
}
