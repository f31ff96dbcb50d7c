package kriging

import (
	"gonum.org/v1/gonum/mat"

	"github.com/jakobetzel/geokrige/pkg/errors"
	"github.com/jakobetzel/geokrige/variogram"
)

// Ordinary is ordinary kriging: the field mean is unknown and estimated
// implicitly through the unbiasedness constraint Σλᵢ = 1, enforced by a
// Lagrange multiplier. It is the default variant when no mean, drift degree
// or drift functions are configured.
//
// The augmented system depends only on sample geometry and is factorized
// once at fit time; queries change the right-hand side only. Estimates are
//
//	μ(x₀)  = λᵗz
//	σ²(x₀) = sill − λᵗc₀ − ν
type Ordinary struct {
	baseEstimator
	vg  variogram.Model
	sys augmentedSystem
}

// NewOrdinary creates an ordinary kriging estimator. A nil variogram selects
// variogram.Default().
func NewOrdinary(vg variogram.Model) *Ordinary {
	if vg == nil {
		vg = variogram.Default()
	}
	return &Ordinary{vg: vg}
}

// Variogram returns the variogram model.
func (o *Ordinary) Variogram() variogram.Model { return o.vg }

// Fit assembles and factorizes the augmented kriging system.
func (o *Ordinary) Fit(X *mat.Dense, z []float64) error {
	o.reset()
	if err := o.sys.fit("OrdinaryKriging.Fit", o.vg, constantBasis, X, z); err != nil {
		return err
	}
	o.setFitted()
	return nil
}

// Estimate returns the ordinary kriging mean and variance at x.
func (o *Ordinary) Estimate(x []float64) (float64, float64, error) {
	if !o.IsFitted() {
		return 0, 0, errors.NewNotFittedError("OrdinaryKriging", "Estimate")
	}
	return o.sys.estimate("OrdinaryKriging.Estimate", x)
}

// Weights returns the kriging weights λ for a query location. They sum to 1
// by the unbiasedness constraint, which makes them useful diagnostics for
// screening sample influence.
func (o *Ordinary) Weights(x []float64) ([]float64, error) {
	if !o.IsFitted() {
		return nil, errors.NewNotFittedError("OrdinaryKriging", "Weights")
	}
	return o.sys.weights("OrdinaryKriging.Weights", x)
}

// constantBasis is the trend basis of ordinary kriging: the constant
// function. With it the augmented system reduces to the classic
// ones-bordered form.
func constantBasis(_ []float64) []float64 {
	return []float64{1}
}
