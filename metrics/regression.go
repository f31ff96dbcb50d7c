// Package metrics provides the regression metrics used to score kriging
// cross-validation: mean squared error, mean absolute error and the
// coefficient of determination.
package metrics

import (
	"math"

	"github.com/jakobetzel/geokrige/pkg/errors"
)

// MSE computes the mean squared error between observed and predicted values.
func MSE(observed, predicted []float64) (float64, error) {
	n := len(observed)
	if n == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "MSE")
	}
	if len(predicted) != n {
		return 0, errors.NewDimensionError("MSE", n, len(predicted), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := observed[i] - predicted[i]
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// MAE computes the mean absolute error between observed and predicted values.
func MAE(observed, predicted []float64) (float64, error) {
	n := len(observed)
	if n == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "MAE")
	}
	if len(predicted) != n {
		return 0, errors.NewDimensionError("MAE", n, len(predicted), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(observed[i] - predicted[i])
	}
	return sum / float64(n), nil
}

// R2 computes the coefficient of determination. A constant observed series
// has zero total variance, which leaves R² undefined; that case returns a
// ValueError-style validation error rather than a garbage ratio.
func R2(observed, predicted []float64) (float64, error) {
	n := len(observed)
	if n == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "R2")
	}
	if len(predicted) != n {
		return 0, errors.NewDimensionError("R2", n, len(predicted), 0)
	}

	var mean float64
	for _, v := range observed {
		mean += v
	}
	mean /= float64(n)

	var ssRes, ssTot float64
	for i := 0; i < n; i++ {
		res := observed[i] - predicted[i]
		tot := observed[i] - mean
		ssRes += res * res
		ssTot += tot * tot
	}
	if ssTot == 0 {
		return 0, errors.NewValidationError("observed", "total variance is zero, R2 is undefined", mean)
	}
	return 1 - ssRes/ssTot, nil
}
