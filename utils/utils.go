// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating and preparing seed
// points for triangulations and Voronoi diagrams in the unit square.
package utils

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates uniformly distributed points in [0,1)×[0,1).
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make([]r2.Point, cnt)

	for i := range cnt {
		sites[i] = r2.Point{X: random.Float64(), Y: random.Float64()}
	}

	return sites
}

// GenerateJitteredGrid places one point in each cell of a side×side grid,
// displaced from the cell center by up to jitter times the cell size.
func GenerateJitteredGrid(side int, jitter float64, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make([]r2.Point, 0, side*side)
	cell := 1 / float64(side)

	for i := range side {
		for j := range side {
			dx := (random.Float64()*2 - 1) * jitter * cell / 2
			dy := (random.Float64()*2 - 1) * jitter * cell / 2
			sites = append(sites, r2.Point{
				X: (float64(i)+0.5)*cell + dx,
				Y: (float64(j)+0.5)*cell + dy,
			})
		}
	}

	return sites
}

// GenerateCluster generates cnt random points in the square of the given
// width centered at center.
func GenerateCluster(cnt int, center r2.Point, width float64, seed int64) []r2.Point {
	sites := GenerateRandomPoints(cnt, seed)
	for i, p := range sites {
		sites[i] = center.Add(p.Sub(r2.Point{X: 0.5, Y: 0.5}).Mul(width))
	}
	return sites
}

// GenerateLattice returns the side×side lattice spanning the unit square,
// border included, in column-major order. side must be at least 2.
func GenerateLattice(side int) []r2.Point {
	sites := make([]r2.Point, 0, side*side)
	step := 1 / float64(side-1)
	for i := range side {
		for j := range side {
			sites = append(sites, r2.Point{X: float64(i) * step, Y: float64(j) * step})
		}
	}
	return sites
}

// Normalize maps points into the unit square, preserving the aspect ratio.
// A single point or coincident points map to the center.
func Normalize(points []r2.Point) []r2.Point {
	out := make([]r2.Point, len(points))
	if len(points) == 0 {
		return out
	}

	bounds := r2.RectFromPoints(points...)
	size := bounds.Size()
	scale := max(size.X, size.Y)
	for i, p := range points {
		if scale == 0 {
			out[i] = r2.Point{X: 0.5, Y: 0.5}
			continue
		}
		out[i] = p.Sub(bounds.Lo()).Mul(1 / scale)
	}

	return out
}
