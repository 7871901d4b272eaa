// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/2dChan/r2voronoi/r2geom"
	"github.com/pkg/errors"
)

// DefaultMergeRadius is the collision radius used by Simplify when merging
// nearby polygon vertices.
const DefaultMergeRadius = 0.01

type DiagramOptions struct {
	// Bounds is the clipping domain of every cell.
	Bounds r2geom.AABB
	// MergeRadius enables Simplify once every cell is built; zero disables it.
	MergeRadius float64

	TriangulationOptions []r2delaunay.TriangulationOption
}

func defaultOptions() DiagramOptions {
	return DiagramOptions{Bounds: r2geom.UnitSquare()}
}

type DiagramOption func(*DiagramOptions) error

// WithBounds sets the box every cell is clipped to.
func WithBounds(bounds r2geom.AABB) DiagramOption {
	return func(o *DiagramOptions) error {
		if bounds.IsEmpty() || bounds.Width() < r2geom.Eps || bounds.Height() < r2geom.Eps {
			return errors.Errorf("WithBounds: bounds must have a positive area, got %v", bounds.Rect)
		}
		o.Bounds = bounds
		return nil
	}
}

// WithMergeRadius runs Simplify with radius once every cell is built. Zero
// disables it.
func WithMergeRadius(radius float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if radius < 0 {
			return errors.Errorf("WithMergeRadius: radius must not be negative, got %v", radius)
		}
		o.MergeRadius = radius
		return nil
	}
}

// WithTriangulationOptions forwards opts to the underlying triangulation.
func WithTriangulationOptions(opts ...r2delaunay.TriangulationOption) DiagramOption {
	return func(o *DiagramOptions) error {
		o.TriangulationOptions = append(o.TriangulationOptions, opts...)
		return nil
	}
}
