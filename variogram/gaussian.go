package variogram

import "math"

// Gaussian is the Gaussian variogram model
//
//	γ(h) = nugget + (sill − nugget) · (1 − exp(−3 (h/range)²)),  h > 0
//
// with γ(0) = 0. The factor 3 makes the range parameter the effective range:
// the lag at which the model reaches ~95% of the sill.
type Gaussian struct {
	params
}

// NewGaussian creates a Gaussian model with the given sill, range and nugget.
func NewGaussian(sill, rng, nugget float64) (*Gaussian, error) {
	p := params{sill: sill, rng: rng, nugget: nugget}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Gaussian{params: p}, nil
}

// At returns the semivariance at lag h.
func (g *Gaussian) At(h float64) float64 {
	if h <= 0 {
		return 0
	}
	r := h / g.rng
	return g.nugget + (g.sill-g.nugget)*(1-math.Exp(-3*r*r))
}
