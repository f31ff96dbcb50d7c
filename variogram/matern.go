package variogram

import "math"

// Matern32 is the Matérn variogram model with smoothness ν = 3/2
//
//	γ(h) = nugget + (sill − nugget) · (1 − (1 + a·h) · exp(−a·h)),  h > 0
//
// where a = 3√3/range, chosen so the range parameter is the effective (95%)
// range like the other models in this package.
type Matern32 struct {
	params
	a float64
}

// NewMatern32 creates a Matérn-3/2 model with the given sill, range and
// nugget.
func NewMatern32(sill, rng, nugget float64) (*Matern32, error) {
	p := params{sill: sill, rng: rng, nugget: nugget}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Matern32{params: p, a: 3 * math.Sqrt(3) / rng}, nil
}

// At returns the semivariance at lag h.
func (m *Matern32) At(h float64) float64 {
	if h <= 0 {
		return 0
	}
	ah := m.a * h
	return m.nugget + (m.sill-m.nugget)*(1-(1+ah)*math.Exp(-ah))
}
