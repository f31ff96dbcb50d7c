// Package variogram provides the variogram models consumed by the kriging
// estimators. A variogram describes spatial dissimilarity (semivariance)
// between two locations as a function of their separation distance; under
// second-order stationarity the covariance at lag h is sill − γ(h).
//
// All models are immutable value objects: estimators share them by reference
// and never mutate them after construction.
package variogram

import (
	"github.com/jakobetzel/geokrige/pkg/errors"
)

// Model is a variogram: a pure function from a nonnegative lag distance to a
// semivariance value, with readable sill, range and nugget parameters.
type Model interface {
	// At returns the semivariance at lag h. At(0) is 0 for every model:
	// the nugget discontinuity applies only at strictly positive lags.
	At(h float64) float64

	// Sill is the asymptotic semivariance at large separation.
	Sill() float64

	// Range is the (effective) distance at which the model levels off.
	Range() float64

	// Nugget is the discontinuity at zero separation, modeling measurement
	// error and microscale variation.
	Nugget() float64
}

// Cov converts a model's semivariance at lag h into a covariance under
// second-order stationarity.
func Cov(m Model, h float64) float64 {
	return m.Sill() - m.At(h)
}

// Default returns the default model used when a solver configuration leaves
// the variogram unset: an isotropic Gaussian with unit sill, unit range and
// zero nugget.
func Default() Model {
	return &Gaussian{params: params{sill: 1, rng: 1, nugget: 0}}
}

// params holds the scalar parameters common to all models.
type params struct {
	sill   float64
	rng    float64
	nugget float64
}

func (p params) Sill() float64   { return p.sill }
func (p params) Range() float64  { return p.rng }
func (p params) Nugget() float64 { return p.nugget }

// validate enforces sill ≥ 0, range > 0, nugget ≥ 0 and nugget ≤ sill.
func (p params) validate() error {
	if p.sill < 0 || !errors.IsFinite(p.sill) {
		return errors.NewValidationError("sill", "must be a finite value >= 0", p.sill)
	}
	if p.rng <= 0 || !errors.IsFinite(p.rng) {
		return errors.NewValidationError("range", "must be a finite value > 0", p.rng)
	}
	if p.nugget < 0 || !errors.IsFinite(p.nugget) {
		return errors.NewValidationError("nugget", "must be a finite value >= 0", p.nugget)
	}
	if p.nugget > p.sill {
		return errors.NewValidationError("nugget", "must not exceed the sill", p.nugget)
	}
	return nil
}
