package variogram

import "math"

// Exponential is the exponential variogram model
//
//	γ(h) = nugget + (sill − nugget) · (1 − exp(−3 h/range)),  h > 0
//
// with γ(0) = 0; the range parameter is the effective (95%) range.
type Exponential struct {
	params
}

// NewExponential creates an exponential model with the given sill, range and
// nugget.
func NewExponential(sill, rng, nugget float64) (*Exponential, error) {
	p := params{sill: sill, rng: rng, nugget: nugget}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Exponential{params: p}, nil
}

// At returns the semivariance at lag h.
func (e *Exponential) At(h float64) float64 {
	if h <= 0 {
		return 0
	}
	return e.nugget + (e.sill-e.nugget)*(1-math.Exp(-3*h/e.rng))
}
