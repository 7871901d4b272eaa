// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestGenerateRandomPoints_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := GenerateRandomPoints(tt.cnt, tt.seed)
			if len(points) != tt.cnt {
				t.Errorf("GenerateRandomPoints(%v, %v) len = %v, want %v", tt.cnt, tt.seed,
					len(points), tt.cnt)
			}
		})
	}
}

func TestGenerateRandomPoints_InUnitSquare(t *testing.T) {
	const (
		cnt  = 100
		seed = 0
	)
	points := GenerateRandomPoints(cnt, seed)
	for i, p := range points {
		if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
			t.Errorf("GenerateRandomPoints(%v, %v)[%d] = %v, want inside [0,1)²", cnt, seed, i, p)
		}
	}
}

func TestGenerateRandomPoints_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	a := GenerateRandomPoints(cnt, seed)
	b := GenerateRandomPoints(cnt, seed)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("GenerateRandomPoints(%v, %v) mismatch (-want +got):\n%v", cnt, seed, diff)
	}
}

func TestGenerateJitteredGrid(t *testing.T) {
	const side = 5
	points := GenerateJitteredGrid(side, 0.9, 7)
	if len(points) != side*side {
		t.Fatalf("len(GenerateJitteredGrid(%d, ...)) = %d, want %d", side, len(points), side*side)
	}
	for i, p := range points {
		col, row := i/side, i%side
		cell := r2.RectFromPoints(
			r2.Point{X: float64(col) / side, Y: float64(row) / side},
			r2.Point{X: float64(col+1) / side, Y: float64(row+1) / side},
		)
		if !cell.ContainsPoint(p) {
			t.Errorf("GenerateJitteredGrid(...)[%d] = %v, want inside %v", i, p, cell)
		}
	}
}

func TestGenerateCluster(t *testing.T) {
	const (
		cnt   = 30
		width = 0.01
	)
	center := r2.Point{X: 0.3, Y: 0.7}
	points := GenerateCluster(cnt, center, width, 1)
	if len(points) != cnt {
		t.Fatalf("len(GenerateCluster(%d, ...)) = %d, want %d", cnt, len(points), cnt)
	}
	box := r2.RectFromCenterSize(center, r2.Point{X: width, Y: width})
	for i, p := range points {
		if !box.ContainsPoint(p) {
			t.Errorf("GenerateCluster(...)[%d] = %v, want inside %v", i, p, box)
		}
	}
}

func TestGenerateLattice(t *testing.T) {
	got := GenerateLattice(3)
	want := []r2.Point{
		{X: 0, Y: 0}, {X: 0, Y: 0.5}, {X: 0, Y: 1},
		{X: 0.5, Y: 0}, {X: 0.5, Y: 0.5}, {X: 0.5, Y: 1},
		{X: 1, Y: 0}, {X: 1, Y: 0.5}, {X: 1, Y: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GenerateLattice(3) mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []r2.Point
		want []r2.Point
	}{
		{"empty", nil, []r2.Point{}},
		{"single", []r2.Point{{X: 5, Y: 5}}, []r2.Point{{X: 0.5, Y: 0.5}}},
		{
			"wide",
			[]r2.Point{{X: 10, Y: 10}, {X: 30, Y: 10}, {X: 20, Y: 15}},
			[]r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 0.25}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("Normalize(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}
