// Package validation provides leave-one-out cross-validation for kriging
// configurations: each sample is held out in turn, the estimator is refitted
// on the rest and scored against the held-out value. The scores indicate how
// well a variogram and variant choice generalizes before committing to a
// full-domain solve.
package validation

import (
	"gonum.org/v1/gonum/mat"

	"github.com/jakobetzel/geokrige/metrics"
	"github.com/jakobetzel/geokrige/pkg/errors"
	"github.com/jakobetzel/geokrige/solver"
	"github.com/jakobetzel/geokrige/spatial"
)

// Scores summarizes a cross-validation run.
type Scores struct {
	MSE float64
	MAE float64
	R2  float64

	// Predicted holds the leave-one-out estimate for each sample, aligned
	// with the valid-sample order of the variable.
	Predicted []float64
}

// LeaveOneOut cross-validates the resolved estimator for one variable of a
// sample table. It needs at least three valid samples: with fewer, every
// fold degenerates. Refitting per fold is O(n) factorizations; the
// one-fit-many-solve amortization of a real solve does not apply here
// because the sample set changes at every fold.
func LeaveOneOut(data *spatial.Table, name string, params solver.Params) (Scores, error) {
	res, err := solver.Resolve(params)
	if err != nil {
		return Scores{}, err
	}

	X, z, err := data.Valid(name)
	if err != nil {
		return Scores{}, err
	}
	d, n := X.Dims()
	if n < 3 {
		return Scores{}, errors.NewDataError(name, "leave-one-out validation needs at least 3 valid samples")
	}

	predicted := make([]float64, n)
	foldX := mat.NewDense(d, n-1, nil)
	foldZ := make([]float64, n-1)
	held := make([]float64, d)
	for hold := 0; hold < n; hold++ {
		col := 0
		for j := 0; j < n; j++ {
			if j == hold {
				continue
			}
			for i := 0; i < d; i++ {
				foldX.Set(i, col, X.At(i, j))
			}
			foldZ[col] = z[j]
			col++
		}
		mat.Col(held, hold, X)

		est := res.NewEstimator()
		if err := est.Fit(foldX, foldZ); err != nil {
			return Scores{}, errors.Wrapf(err, "fold %d", hold)
		}
		mean, _, err := est.Estimate(held)
		if err != nil {
			return Scores{}, errors.Wrapf(err, "fold %d", hold)
		}
		predicted[hold] = mean
	}

	scores := Scores{Predicted: predicted}
	if scores.MSE, err = metrics.MSE(z, predicted); err != nil {
		return Scores{}, err
	}
	if scores.MAE, err = metrics.MAE(z, predicted); err != nil {
		return Scores{}, err
	}
	if scores.R2, err = metrics.R2(z, predicted); err != nil {
		// A constant sample column leaves R² undefined; report the usable
		// scores with R2 zeroed instead of failing the whole validation.
		scores.R2 = 0
	}
	return scores, nil
}
