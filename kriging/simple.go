package kriging

import (
	"gonum.org/v1/gonum/mat"

	"github.com/jakobetzel/geokrige/pkg/errors"
	"github.com/jakobetzel/geokrige/variogram"
)

// Simple is simple kriging: the global mean of the field is known. The
// estimator solves C·λ = c₀ against the sample covariance matrix and returns
//
//	μ(x₀)  = m + λᵗ(z − m·1)
//	σ²(x₀) = sill − λᵗc₀
//
// The estimate is unbiased when m is the true global mean. Variance is
// non-negative under a valid positive-semidefinite variogram model; the
// estimator does not re-validate the model.
type Simple struct {
	baseEstimator
	vg   variogram.Model
	mean float64

	chol mat.Cholesky
	X    *mat.Dense
	z    []float64
	n, d int
}

// NewSimple creates a simple kriging estimator with the given variogram and
// known mean. A nil variogram selects variogram.Default().
func NewSimple(vg variogram.Model, mean float64) *Simple {
	if vg == nil {
		vg = variogram.Default()
	}
	return &Simple{vg: vg, mean: mean}
}

// Variogram returns the variogram model.
func (s *Simple) Variogram() variogram.Model { return s.vg }

// Mean returns the known field mean the estimator was constructed with.
func (s *Simple) Mean() float64 { return s.mean }

// Fit builds the sample covariance matrix and factorizes it by Cholesky
// decomposition. The factorization is reused by every Estimate call.
func (s *Simple) Fit(X *mat.Dense, z []float64) error {
	s.reset()
	if !errors.IsFinite(s.mean) {
		return errors.NewValidationError("mean", "must be finite", s.mean)
	}
	d, n, err := validateFitInputs("SimpleKriging.Fit", X, z)
	if err != nil {
		return err
	}

	C := covMatrix(s.vg, X)
	if ok := s.chol.Factorize(C); !ok {
		return errors.Wrap(errors.ErrSingularMatrix,
			"SimpleKriging.Fit: covariance matrix is not positive definite; duplicate sample coordinates?")
	}
	if cond := s.chol.Cond(); cond > condWarnThreshold {
		errors.Warn(errors.NewConditioningWarning("", "SimpleKriging.Fit", cond))
	}

	s.X = mat.DenseCopyOf(X)
	s.z = append([]float64(nil), z...)
	s.n, s.d = n, d
	s.setFitted()
	return nil
}

// Estimate returns the simple kriging mean and variance at x.
func (s *Simple) Estimate(x []float64) (float64, float64, error) {
	if !s.IsFitted() {
		return 0, 0, errors.NewNotFittedError("SimpleKriging", "Estimate")
	}
	if len(x) != s.d {
		return 0, 0, errors.NewDimensionError("SimpleKriging.Estimate", s.d, len(x), 1)
	}

	c0 := mat.NewVecDense(s.n, nil)
	covVector(c0, s.vg, s.X, x)

	lambda := mat.NewVecDense(s.n, nil)
	if err := s.chol.SolveVecTo(lambda, c0); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return 0, 0, errors.NewNumericalError("", "SimpleKriging.Estimate",
				"covariance solve failed: "+err.Error())
		}
	}

	mean := s.mean
	var reduced float64
	for j := 0; j < s.n; j++ {
		mean += lambda.AtVec(j) * (s.z[j] - s.mean)
		reduced += lambda.AtVec(j) * c0.AtVec(j)
	}
	variance := errors.ClampVariance(s.vg.Sill() - reduced)

	if err := errors.CheckEstimate("", mean, variance); err != nil {
		return 0, 0, err
	}
	return mean, variance, nil
}
