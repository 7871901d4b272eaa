// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import "github.com/pkg/errors"

const (
	defaultMargin         = 0.1
	defaultLegalizeBudget = 100
)

type TriangulationOptions struct {
	// Margin is how far the bounding square extends past [0,1]².
	Margin float64
	// LegalizeBudget caps the number of triangles examined by one
	// legalization pass.
	LegalizeBudget int
	// InsertLegalization runs a legalization pass over the triangles
	// created by every insertion.
	InsertLegalization bool
	Observer           Observer
}

func defaultOptions() TriangulationOptions {
	return TriangulationOptions{
		Margin:             defaultMargin,
		LegalizeBudget:     defaultLegalizeBudget,
		InsertLegalization: true,
	}
}

type TriangulationOption func(*TriangulationOptions) error

// WithMargin sets how far the bounding square extends past the unit square.
func WithMargin(margin float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if margin <= 0 {
			return errors.Errorf("WithMargin: margin must be positive, got %v", margin)
		}
		o.Margin = margin
		return nil
	}
}

// WithLegalizeBudget caps the triangles examined by one legalization pass.
func WithLegalizeBudget(budget int) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if budget <= 0 {
			return errors.Errorf("WithLegalizeBudget: budget must be positive, got %d", budget)
		}
		o.LegalizeBudget = budget
		return nil
	}
}

// WithInsertLegalization toggles the legalization pass after each insertion.
// Disabling it leaves plain Bowyer-Watson.
func WithInsertLegalization(enabled bool) TriangulationOption {
	return func(o *TriangulationOptions) error {
		o.InsertLegalization = enabled
		return nil
	}
}

// WithObserver registers o for step-by-step notifications. nil disables them.
func WithObserver(o Observer) TriangulationOption {
	return func(opts *TriangulationOptions) error {
		opts.Observer = o
		return nil
	}
}
