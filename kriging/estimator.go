// Package kriging implements the kriging estimation engine: Simple, Ordinary,
// Universal and external-drift kriging behind one Estimator interface.
//
// Every variant follows the same lifecycle. Fit binds the estimator to a set
// of samples and factorizes its linear system exactly once; Estimate then
// assembles only the right-hand side for a query location and reuses the
// factorization. This one-fit-many-solve split is the defining performance
// property of the package: O(n³) once per variable, O(n²) per location
// thereafter. Fitted state is immutable, so a single fitted estimator may be
// shared by concurrent Estimate calls.
package kriging

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/jakobetzel/geokrige/pkg/errors"
	"github.com/jakobetzel/geokrige/variogram"
)

// Estimator is the common interface of all kriging variants.
type Estimator interface {
	// Fit binds the estimator to sample coordinates X (d×n, one column per
	// sample) and values z (length n), and factorizes the kriging system.
	Fit(X *mat.Dense, z []float64) error

	// Estimate returns the kriging mean and variance at a query location.
	// It must only be called after a successful Fit.
	Estimate(x []float64) (mean, variance float64, err error)

	// Variogram returns the variogram model the estimator was built with.
	Variogram() variogram.Model
}

// fitState tracks whether an estimator has been fitted.
type fitState int

const (
	notFitted fitState = iota
	fitted
)

// baseEstimator carries the fitted/not-fitted state shared by all variants.
type baseEstimator struct {
	state fitState
}

// IsFitted reports whether Fit has completed successfully.
func (b *baseEstimator) IsFitted() bool {
	return b.state == fitted
}

func (b *baseEstimator) setFitted() {
	b.state = fitted
}

func (b *baseEstimator) reset() {
	b.state = notFitted
}

// validateFitInputs checks the shared Fit preconditions and returns the
// coordinate dimensionality and sample count.
func validateFitInputs(op string, X *mat.Dense, z []float64) (d, n int, err error) {
	if X == nil {
		return 0, 0, errors.Wrap(errors.ErrEmptyData, op)
	}
	d, n = X.Dims()
	if d == 0 || n == 0 {
		return 0, 0, errors.Wrap(errors.ErrEmptyData, op)
	}
	if len(z) != n {
		return 0, 0, errors.NewDimensionError(op, n, len(z), 0)
	}
	for j := 0; j < n; j++ {
		if !errors.IsFinite(z[j]) {
			return 0, 0, errors.NewDataError("", "non-finite sample value; filter missing values before fitting")
		}
		for i := 0; i < d; i++ {
			if !errors.IsFinite(X.At(i, j)) {
				return 0, 0, errors.NewDataError("", "non-finite sample coordinate")
			}
		}
	}
	return d, n, nil
}

// euclidean returns the Euclidean distance between two coordinate vectors of
// equal length.
func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// colDistance returns the Euclidean distance between column j of X and x.
func colDistance(X *mat.Dense, j int, x []float64) float64 {
	var sum float64
	for i := range x {
		diff := X.At(i, j) - x[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
