// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"cmp"
	"slices"

	"github.com/2dChan/r2voronoi/internal/logging"
	"github.com/2dChan/r2voronoi/r2geom"
	"github.com/golang/geo/r2"
)

// Simplify merges polygon vertices closer than radius, across all polygons,
// into the centroid of their cluster. Merging is transitive: clusters whose
// centroids come closer than radius merge again. A non-positive radius means
// DefaultMergeRadius. Simplify is idempotent.
func (d *Diagram) Simplify(radius float64) {
	if radius <= 0 {
		radius = DefaultMergeRadius
	}

	var points []r2.Point
	index := make(map[r2.Point]int)
	for _, poly := range d.Polygons {
		for _, p := range poly.Vertices {
			if _, ok := index[p]; !ok {
				index[p] = len(points)
				points = append(points, p)
			}
		}
	}

	target := clusterPoints(points, radius)
	merged := 0
	for i, poly := range d.Polygons {
		if poly.IsEmpty() {
			continue
		}
		vertices := make([]r2.Point, 0, poly.Len())
		for _, p := range poly.Vertices {
			q := target[index[p]]
			if q != p {
				merged++
			}
			if !slices.Contains(vertices, q) {
				vertices = append(vertices, q)
			}
		}
		if len(vertices) < 2 {
			d.Polygons[i] = Polygon{}
			continue
		}
		d.Polygons[i] = NewPolygon(vertices)
	}
	logging.Logger().Debug("r2voronoi: simplified", "radius", radius, "moved", merged)
}

// clusterPoints returns, for every point, the centroid of the cluster it
// belongs to once no two cluster centroids are closer than radius.
func clusterPoints(points []r2.Point, radius float64) []r2.Point {
	parent := make([]int, len(points))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	centroids := slices.Clone(points)
	for {
		// Sweep the cluster representatives along X.
		var roots []int
		for i := range points {
			if find(i) == i {
				roots = append(roots, i)
			}
		}
		slices.SortFunc(roots, func(a, b int) int {
			return cmp.Compare(centroids[a].X, centroids[b].X)
		})

		unions := 0
		for k, a := range roots {
			for _, b := range roots[k+1:] {
				if centroids[b].X-centroids[a].X >= radius {
					break
				}
				if centroids[a].Sub(centroids[b]).Norm() >= radius {
					continue
				}
				if ra, rb := find(a), find(b); ra != rb {
					parent[rb] = ra
					unions++
				}
			}
		}
		if unions == 0 {
			break
		}

		members := make(map[int][]r2.Point)
		for i, p := range points {
			r := find(i)
			members[r] = append(members[r], p)
		}
		for r, ps := range members {
			centroids[r] = r2geom.Centroid(ps...)
		}
	}

	out := make([]r2.Point, len(points))
	for i := range points {
		out[i] = centroids[find(i)]
	}
	return out
}
