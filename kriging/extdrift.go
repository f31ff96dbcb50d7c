package kriging

import (
	"gonum.org/v1/gonum/mat"

	"github.com/jakobetzel/geokrige/pkg/errors"
	"github.com/jakobetzel/geokrige/variogram"
)

// DriftFunc is a real-valued function of location used as a trend basis term
// in external-drift kriging, typically an exhaustively-known secondary
// covariate such as elevation. Drift functions must be pure: the engine
// evaluates them once per sample at fit time and once per query location.
type DriftFunc func(x []float64) float64

// ConstantDrift is the constant drift term. It is the default drift list and
// is normally included alongside covariate drifts so the trend has an
// intercept.
func ConstantDrift(_ []float64) float64 { return 1 }

// ExternalDrift is external-drift kriging: structurally identical to
// universal kriging, but the trend basis is the supplied list of drift
// functions instead of a fixed monomial family. All system assembly and
// solve logic is shared with the other augmented variants.
type ExternalDrift struct {
	baseEstimator
	vg     variogram.Model
	drifts []DriftFunc
	sys    augmentedSystem
}

// NewExternalDrift creates an external-drift kriging estimator. An empty
// drift list defaults to the constant drift, which makes the estimator
// equivalent to ordinary kriging.
func NewExternalDrift(vg variogram.Model, drifts []DriftFunc) *ExternalDrift {
	if vg == nil {
		vg = variogram.Default()
	}
	if len(drifts) == 0 {
		drifts = []DriftFunc{ConstantDrift}
	}
	return &ExternalDrift{vg: vg, drifts: append([]DriftFunc(nil), drifts...)}
}

// Variogram returns the variogram model.
func (e *ExternalDrift) Variogram() variogram.Model { return e.vg }

// Fit assembles and factorizes the augmented kriging system with the drift
// basis.
func (e *ExternalDrift) Fit(X *mat.Dense, z []float64) error {
	e.reset()
	for i, fn := range e.drifts {
		if fn == nil {
			return errors.NewValidationError("drifts", "drift function must not be nil", i)
		}
	}
	basis := func(x []float64) []float64 {
		f := make([]float64, len(e.drifts))
		for t, fn := range e.drifts {
			f[t] = fn(x)
		}
		return f
	}
	if err := e.sys.fit("ExternalDriftKriging.Fit", e.vg, basis, X, z); err != nil {
		return err
	}
	e.setFitted()
	return nil
}

// Estimate returns the external-drift kriging mean and variance at x.
func (e *ExternalDrift) Estimate(x []float64) (float64, float64, error) {
	if !e.IsFitted() {
		return 0, 0, errors.NewNotFittedError("ExternalDriftKriging", "Estimate")
	}
	return e.sys.estimate("ExternalDriftKriging.Estimate", x)
}
