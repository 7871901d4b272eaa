// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import "github.com/pkg/errors"

var (
	// ErrEnded is returned by RunOneIteration once every cell is built.
	ErrEnded = errors.New("r2voronoi: diagram already complete")
	// ErrNotEnded is returned by operations that need every cell.
	ErrNotEnded = errors.New("r2voronoi: diagram is not complete")
)
