// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"github.com/2dChan/r2voronoi/internal/logging"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Relax performs steps rounds of Lloyd relaxation: every site moves to the
// area centroid of its cell and the diagram is rebuilt. Sites with an empty
// cell stay in place.
func (d *Diagram) Relax(steps int) error {
	if steps < 0 {
		return errors.Errorf("Relax: steps must not be negative, got %d", steps)
	}
	if !d.Ended() {
		return ErrNotEnded
	}

	for step := range steps {
		sites := make([]r2.Point, len(d.Sites))
		for i, poly := range d.Polygons {
			sites[i] = d.Sites[i]
			if poly.Len() > 2 {
				sites[i] = d.opts.Bounds.ClampPoint(poly.AreaCentroid())
			}
		}

		nd, err := build(sites, d.opts)
		if err != nil {
			return errors.Wrapf(err, "Relax: step %d", step)
		}
		*d = *nd
	}
	logging.Logger().Debug("r2voronoi: relaxed", "steps", steps, "sites", len(d.Sites))
	return nil
}
