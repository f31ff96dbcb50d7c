package errors

import (
	"math"
)

// CheckValues returns a DataError if values contain NaN or Inf. The variable
// name is carried into the error so the solver can report which column of a
// problem failed.
func CheckValues(variable string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewDataError(variable, "non-finite value in sample data")
		}
	}
	return nil
}

// CheckEstimate returns a NumericalError if a computed mean or variance is
// non-finite. Kriging must never silently emit NaN surfaces; a non-finite
// result means the system solve produced garbage and has to surface as an
// error.
func CheckEstimate(variable string, mean, variance float64) error {
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return NewNumericalError(variable, "estimate", "non-finite mean")
	}
	if math.IsNaN(variance) || math.IsInf(variance, 0) {
		return NewNumericalError(variable, "estimate", "non-finite variance")
	}
	return nil
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ClampVariance truncates small negative variances produced by floating-point
// round-off to zero. Larger negative values are left untouched so they can be
// detected and reported by the caller.
func ClampVariance(v float64) float64 {
	if v < 0 && v > -1e-8 {
		return 0
	}
	return v
}
