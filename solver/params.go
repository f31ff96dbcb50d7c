package solver

import (
	"github.com/jakobetzel/geokrige/kriging"
	"github.com/jakobetzel/geokrige/variogram"
)

// Params is the per-variable parameter record of a solver configuration.
// All fields are optional; the populated optional fields select the kriging
// variant by precedence Drifts > Degree > Mean > none (ordinary kriging).
// See Resolve for the exact rules.
type Params struct {
	// Variogram is the variogram model for the variable. Nil selects the
	// default isotropic unit Gaussian model.
	Variogram variogram.Model

	// Mean, if set, selects simple kriging with this known field mean.
	Mean *float64

	// Degree, if set, selects universal kriging with a polynomial trend of
	// this degree.
	Degree *int

	// Drifts, if non-empty, selects external-drift kriging with these drift
	// functions as the trend basis.
	Drifts []kriging.DriftFunc
}

// Config maps variable names to parameter records. Variables of a problem
// that have no entry are estimated with the zero Params record, i.e.
// ordinary kriging under the default variogram.
type Config map[string]Params

// Float64 returns a pointer to v, for populating optional Params fields.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v, for populating optional Params fields.
func Int(v int) *int { return &v }
