// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned for points outside the bounding region.
	ErrOutOfBounds = errors.New("r2delaunay: point outside the bounding region")
	// ErrFinalized is returned when inserting into a finalized triangulation.
	ErrFinalized = errors.New("r2delaunay: triangulation already finalized")
	// ErrNotFinalized is returned by queries that need a finalized triangulation.
	ErrNotFinalized = errors.New("r2delaunay: triangulation not finalized")
)
