package spatial

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/jakobetzel/geokrige/pkg/errors"
)

// Table holds sampled variable values over a point set. Missing observations
// are represented as NaN and dropped by Valid before fitting; a column may be
// sparse as long as at least one finite value remains.
type Table struct {
	points  *PointSet
	columns map[string][]float64
}

// NewTable creates a table binding one value column per variable to the
// points of the sample locations. Every column must have exactly one entry
// per point.
func NewTable(points *PointSet, columns map[string][]float64) (*Table, error) {
	if points == nil {
		return nil, errors.NewDataError("", "sample locations are required")
	}
	if len(columns) == 0 {
		return nil, errors.NewDataError("", "table must contain at least one variable")
	}
	copied := make(map[string][]float64, len(columns))
	for name, values := range columns {
		if name == "" {
			return nil, errors.NewValidationError("variable", "name must not be empty", name)
		}
		if len(values) != points.Len() {
			return nil, errors.NewDimensionError("NewTable", points.Len(), len(values), 0)
		}
		copied[name] = append([]float64(nil), values...)
	}
	return &Table{points: points, columns: copied}, nil
}

// Points returns the sample locations.
func (t *Table) Points() *PointSet { return t.points }

// Dims returns the coordinate dimensionality of the sample locations.
func (t *Table) Dims() int { return t.points.Dims() }

// Variables returns the variable names in sorted order.
func (t *Table) Variables() []string {
	names := make([]string, 0, len(t.columns))
	for name := range t.columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the table contains a column for name.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Valid returns the subset of samples with a finite value for the variable:
// a d×n coordinate matrix (one column per sample) and the matching value
// slice. A variable with zero valid samples yields a DataError naming it.
func (t *Table) Valid(name string) (*mat.Dense, []float64, error) {
	values, ok := t.columns[name]
	if !ok {
		return nil, nil, errors.NewDataError(name, "variable not present in table")
	}

	keep := make([]int, 0, len(values))
	for i, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return nil, nil, errors.NewDataError(name, "no valid samples after filtering missing values")
	}

	d := t.points.Dims()
	X := mat.NewDense(d, len(keep), nil)
	z := make([]float64, len(keep))
	for j, idx := range keep {
		p := t.points.points[idx]
		for ax := 0; ax < d; ax++ {
			X.Set(ax, j, p[ax])
		}
		z[j] = values[idx]
	}
	return X, z, nil
}
