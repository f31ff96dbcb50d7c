package variogram

// Spherical is the spherical variogram model
//
//	γ(h) = nugget + (sill − nugget) · (1.5 h/range − 0.5 (h/range)³)  for 0 < h < range
//	γ(h) = sill                                                       for h ≥ range
//
// with γ(0) = 0. Unlike the Gaussian and exponential models it reaches the
// sill exactly at the range.
type Spherical struct {
	params
}

// NewSpherical creates a spherical model with the given sill, range and
// nugget.
func NewSpherical(sill, rng, nugget float64) (*Spherical, error) {
	p := params{sill: sill, rng: rng, nugget: nugget}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Spherical{params: p}, nil
}

// At returns the semivariance at lag h.
func (s *Spherical) At(h float64) float64 {
	if h <= 0 {
		return 0
	}
	if h >= s.rng {
		return s.sill
	}
	r := h / s.rng
	return s.nugget + (s.sill-s.nugget)*(1.5*r-0.5*r*r*r)
}
