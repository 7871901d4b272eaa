// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"log/slog"

	"github.com/2dChan/r2voronoi/internal/logging"
)

// SetLogger sets the logger used by r2voronoi and r2delaunay. Passing nil
// silences them again, which is the default.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logging.Logger()
}
