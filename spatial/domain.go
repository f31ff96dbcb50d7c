// Package spatial provides the spatial domain and sample data types consumed
// by the kriging solver: point sets, regular grids and variable-keyed sample
// tables with missing-value filtering.
package spatial

import (
	"github.com/jakobetzel/geokrige/pkg/errors"
)

// Domain is a finite collection of spatial locations. Implementations must
// be immutable: the solver traverses a domain concurrently from multiple
// goroutines.
type Domain interface {
	// Len returns the number of locations.
	Len() int

	// Dims returns the coordinate dimensionality.
	Dims() int

	// Coordinates returns the coordinate vector of location i. The returned
	// slice is a fresh copy owned by the caller.
	Coordinates(i int) []float64
}

// PointSet is a domain given by an explicit list of points in ℝ^d.
type PointSet struct {
	points [][]float64
	dims   int
}

// NewPointSet creates a point set from a list of coordinate vectors. All
// vectors must share the same dimensionality and contain only finite values.
func NewPointSet(points [][]float64) (*PointSet, error) {
	if len(points) == 0 {
		return nil, errors.NewDataError("", "point set must contain at least one point")
	}
	d := len(points[0])
	if d == 0 {
		return nil, errors.NewDataError("", "points must have at least one coordinate")
	}
	copied := make([][]float64, len(points))
	for i, p := range points {
		if len(p) != d {
			return nil, errors.NewDimensionError("NewPointSet", d, len(p), 1)
		}
		for _, c := range p {
			if !errors.IsFinite(c) {
				return nil, errors.NewDataError("", "non-finite coordinate in point set")
			}
		}
		copied[i] = append([]float64(nil), p...)
	}
	return &PointSet{points: copied, dims: d}, nil
}

// Len returns the number of points.
func (s *PointSet) Len() int { return len(s.points) }

// Dims returns the coordinate dimensionality.
func (s *PointSet) Dims() int { return s.dims }

// Coordinates returns a copy of the coordinates of point i.
func (s *PointSet) Coordinates(i int) []float64 {
	return append([]float64(nil), s.points[i]...)
}

// RegularGrid is a domain of axis-aligned grid cells. Location index order is
// row-major with the first axis varying fastest, so index i decodes to grid
// position (i % size[0], (i / size[0]) % size[1], ...).
type RegularGrid struct {
	origin  []float64
	spacing []float64
	size    []int
	length  int
}

// NewRegularGrid creates a grid with the given cell counts per axis, origin
// and cell spacing. All three slices must have the same length.
func NewRegularGrid(size []int, origin, spacing []float64) (*RegularGrid, error) {
	d := len(size)
	if d == 0 {
		return nil, errors.NewDataError("", "grid must have at least one axis")
	}
	if len(origin) != d {
		return nil, errors.NewDimensionError("NewRegularGrid", d, len(origin), 1)
	}
	if len(spacing) != d {
		return nil, errors.NewDimensionError("NewRegularGrid", d, len(spacing), 1)
	}
	length := 1
	for ax, n := range size {
		if n <= 0 {
			return nil, errors.NewValidationError("size", "cell count must be > 0", n)
		}
		if spacing[ax] <= 0 || !errors.IsFinite(spacing[ax]) {
			return nil, errors.NewValidationError("spacing", "must be a finite value > 0", spacing[ax])
		}
		if !errors.IsFinite(origin[ax]) {
			return nil, errors.NewValidationError("origin", "must be finite", origin[ax])
		}
		length *= n
	}
	return &RegularGrid{
		origin:  append([]float64(nil), origin...),
		spacing: append([]float64(nil), spacing...),
		size:    append([]int(nil), size...),
		length:  length,
	}, nil
}

// Len returns the total number of grid cells.
func (g *RegularGrid) Len() int { return g.length }

// Dims returns the number of grid axes.
func (g *RegularGrid) Dims() int { return len(g.size) }

// Size returns a copy of the per-axis cell counts.
func (g *RegularGrid) Size() []int { return append([]int(nil), g.size...) }

// Coordinates returns the center coordinates of cell i.
func (g *RegularGrid) Coordinates(i int) []float64 {
	coords := make([]float64, len(g.size))
	for ax, n := range g.size {
		coords[ax] = g.origin[ax] + float64(i%n)*g.spacing[ax]
		i /= n
	}
	return coords
}
