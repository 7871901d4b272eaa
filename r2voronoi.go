// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2voronoi implements Voronoi diagrams of points in the unit square,
// built on Delaunay triangulation and clipped to a box.
package r2voronoi

import (
	"slices"

	"github.com/2dChan/r2voronoi/internal/invariant"
	"github.com/2dChan/r2voronoi/internal/logging"
	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/2dChan/r2voronoi/r2geom"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Diagram is a Voronoi diagram clipped to a box, derived from a Delaunay
// triangulation of its sites. Polygons[i] is the cell of Sites[i]; it grows
// by one entry per RunOneIteration until Ended.
type Diagram struct {
	Sites    []r2.Point
	Polygons []Polygon

	opts DiagramOptions
	dt   *r2delaunay.Triangulation

	// vertexOf maps a site to its triangulation vertex; firstSite maps a
	// vertex back to the first site that produced it.
	vertexOf  []int
	firstSite []int
	// distinct sites in first-occurrence order, for the half-plane fallback
	// and corner ownership.
	distinct []int
}

func parseOptions(setters []DiagramOption) (DiagramOptions, error) {
	opts := defaultOptions()
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return DiagramOptions{}, err
		}
	}
	return opts, nil
}

// NewDiagram triangulates sites and builds every cell.
func NewDiagram(sites []r2.Point, setters ...DiagramOption) (*Diagram, error) {
	opts, err := parseOptions(setters)
	if err != nil {
		return nil, err
	}
	return build(sites, opts)
}

func build(sites []r2.Point, opts DiagramOptions) (*Diagram, error) {
	dt, err := r2delaunay.New(opts.TriangulationOptions...)
	if err != nil {
		return nil, err
	}

	vertexOf := make([]int, len(sites))
	for i, p := range sites {
		v, err := dt.Insert(p)
		if err != nil {
			return nil, errors.Wrapf(err, "r2voronoi: site %d", i)
		}
		vertexOf[i] = v
	}
	if err := dt.Finalize(); err != nil {
		return nil, err
	}

	d := newDiagram(dt, sites, vertexOf, opts)
	if err := d.Run(); err != nil {
		return nil, err
	}
	return d, nil
}

// FromTriangulation prepares a diagram over a finalized triangulation of sites
// without building any cell; call RunOneIteration or Run to build them.
// Every site must be a vertex of dt.
func FromTriangulation(dt *r2delaunay.Triangulation, sites []r2.Point, setters ...DiagramOption) (*Diagram, error) {
	if !dt.Ended() {
		return nil, r2delaunay.ErrNotFinalized
	}
	opts, err := parseOptions(setters)
	if err != nil {
		return nil, err
	}

	exact := make(map[r2.Point]int, len(dt.Vertices()))
	for v, p := range dt.Vertices() {
		exact[p] = v
	}
	vertexOf := make([]int, len(sites))
	for i, p := range sites {
		v, ok := exact[p]
		if !ok {
			v = nearestVertex(dt.Vertices(), p)
		}
		if v < 0 {
			return nil, errors.Errorf("r2voronoi: site %d %v is not a vertex of the triangulation", i, p)
		}
		vertexOf[i] = v
	}
	return newDiagram(dt, sites, vertexOf, opts), nil
}

func nearestVertex(vertices []r2.Point, p r2.Point) int {
	for v, q := range vertices {
		if r2geom.Near(p, q) {
			return v
		}
	}
	return -1
}

func newDiagram(dt *r2delaunay.Triangulation, sites []r2.Point, vertexOf []int, opts DiagramOptions) *Diagram {
	d := &Diagram{
		Sites:     slices.Clone(sites),
		Polygons:  make([]Polygon, 0, len(sites)),
		opts:      opts,
		dt:        dt,
		vertexOf:  vertexOf,
		firstSite: make([]int, len(dt.Vertices())),
	}
	for v := range d.firstSite {
		d.firstSite[v] = -1
	}
	for i, v := range vertexOf {
		if d.firstSite[v] < 0 {
			d.firstSite[v] = i
			d.distinct = append(d.distinct, i)
		}
	}
	return d
}

// Triangulation returns the triangulation the diagram is derived from.
func (d *Diagram) Triangulation() *r2delaunay.Triangulation {
	return d.dt
}

// Bounds returns the clipping domain.
func (d *Diagram) Bounds() r2geom.AABB {
	return d.opts.Bounds
}

// RunOneIteration builds the cell of the next site. After the last cell it
// runs Simplify when a merge radius is configured.
func (d *Diagram) RunOneIteration() (err error) {
	if d.Ended() {
		return ErrEnded
	}
	defer func() {
		if rerr := invariant.Recover(recover()); rerr != nil {
			err = rerr
		}
	}()

	i := len(d.Polygons)
	d.Polygons = append(d.Polygons, d.buildCell(i))
	if d.Ended() {
		logging.Logger().Debug("r2voronoi: diagram complete", "cells", len(d.Polygons))
		if d.opts.MergeRadius > 0 {
			d.Simplify(d.opts.MergeRadius)
		}
	}
	return nil
}

// Ended reports whether every cell has been built.
func (d *Diagram) Ended() bool {
	return len(d.Polygons) == len(d.Sites)
}

// Run builds every remaining cell.
func (d *Diagram) Run() error {
	for !d.Ended() {
		if err := d.RunOneIteration(); err != nil {
			return err
		}
	}
	return nil
}

// NumCells returns the number of cells, one per site.
func (d *Diagram) NumCells() int {
	return len(d.Sites)
}

// Cell returns a view of the cell of site i. Its polygon is empty until the
// cell has been built.
func (d *Diagram) Cell(i int) (Cell, error) {
	if i < 0 || i >= d.NumCells() {
		return Cell{}, errors.Errorf("Cell: index %d out of range [0 %d)", i, d.NumCells())
	}
	return Cell{idx: i, d: d}, nil
}
