package solver

import (
	"fmt"

	"github.com/jakobetzel/geokrige/kriging"
	"github.com/jakobetzel/geokrige/pkg/errors"
	"github.com/jakobetzel/geokrige/variogram"
)

// Variant identifies a kriging estimator variant.
type Variant int

const (
	VariantOrdinary Variant = iota
	VariantSimple
	VariantUniversal
	VariantExternalDrift
)

// String returns the variant name used in logs and errors.
func (v Variant) String() string {
	switch v {
	case VariantOrdinary:
		return "ordinary"
	case VariantSimple:
		return "simple"
	case VariantUniversal:
		return "universal"
	case VariantExternalDrift:
		return "external_drift"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving a Params record: an enum-tagged
// variant plus the parameters it needs. Shadowed lists the optional fields
// that were set but overridden by a higher-precedence field.
type Resolution struct {
	Variant   Variant
	Variogram variogram.Model
	Mean      float64
	Degree    int
	Drifts    []kriging.DriftFunc
	Shadowed  []string
}

// Resolve maps a parameter record to exactly one kriging variant using the
// precedence Drifts > Degree > Mean > none. When more than one optional
// field is set, the higher-precedence field wins silently and the losers are
// reported in Shadowed. Resolve is pure: it performs no fitting and touches
// no shared state, so resolutions can be computed and inspected eagerly
// before any linear algebra runs.
func Resolve(p Params) (Resolution, error) {
	r := Resolution{Variogram: p.Variogram}
	if r.Variogram == nil {
		r.Variogram = variogram.Default()
	}

	switch {
	case len(p.Drifts) > 0:
		for i, fn := range p.Drifts {
			if fn == nil {
				return Resolution{}, errors.NewConfigurationError("",
					fmt.Sprintf("drift function %d is nil", i))
			}
		}
		r.Variant = VariantExternalDrift
		r.Drifts = append([]kriging.DriftFunc(nil), p.Drifts...)
		if p.Degree != nil {
			r.Shadowed = append(r.Shadowed, "degree")
		}
		if p.Mean != nil {
			r.Shadowed = append(r.Shadowed, "mean")
		}

	case p.Degree != nil:
		if *p.Degree < 0 {
			return Resolution{}, errors.NewConfigurationError("", "drift degree must be >= 0")
		}
		r.Variant = VariantUniversal
		r.Degree = *p.Degree
		if p.Mean != nil {
			r.Shadowed = append(r.Shadowed, "mean")
		}

	case p.Mean != nil:
		if !errors.IsFinite(*p.Mean) {
			return Resolution{}, errors.NewConfigurationError("", "mean must be finite")
		}
		r.Variant = VariantSimple
		r.Mean = *p.Mean

	default:
		r.Variant = VariantOrdinary
	}
	return r, nil
}

// NewEstimator instantiates the resolved kriging variant.
func (r Resolution) NewEstimator() kriging.Estimator {
	switch r.Variant {
	case VariantSimple:
		return kriging.NewSimple(r.Variogram, r.Mean)
	case VariantUniversal:
		return kriging.NewUniversal(r.Variogram, r.Degree)
	case VariantExternalDrift:
		return kriging.NewExternalDrift(r.Variogram, r.Drifts)
	default:
		return kriging.NewOrdinary(r.Variogram)
	}
}
