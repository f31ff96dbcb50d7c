package kriging

import (
	"gonum.org/v1/gonum/mat"

	"github.com/jakobetzel/geokrige/pkg/errors"
	"github.com/jakobetzel/geokrige/variogram"
)

// Universal is universal kriging: the field mean is an unknown polynomial
// trend of a given degree in the coordinates. Degree 0 reduces to ordinary
// kriging. The trend basis is the full set of monomials up to the degree,
// enumerated in graded lexicographic order (see monomialBasis), giving
// k = C(d+p, p) terms for degree p in d dimensions.
//
// Fitting fails with a NumericalError when there are fewer samples than
// basis terms, since the augmented system is then underdetermined.
type Universal struct {
	baseEstimator
	vg     variogram.Model
	degree int
	sys    augmentedSystem
}

// NewUniversal creates a universal kriging estimator with a polynomial trend
// of the given degree. A nil variogram selects variogram.Default().
func NewUniversal(vg variogram.Model, degree int) *Universal {
	if vg == nil {
		vg = variogram.Default()
	}
	return &Universal{vg: vg, degree: degree}
}

// Variogram returns the variogram model.
func (u *Universal) Variogram() variogram.Model { return u.vg }

// Degree returns the polynomial trend degree.
func (u *Universal) Degree() int { return u.degree }

// Fit assembles and factorizes the augmented kriging system with the
// monomial trend basis.
func (u *Universal) Fit(X *mat.Dense, z []float64) error {
	u.reset()
	if u.degree < 0 {
		return errors.NewValidationError("degree", "must be >= 0", u.degree)
	}
	if X == nil {
		return errors.Wrap(errors.ErrEmptyData, "UniversalKriging.Fit")
	}
	d, _ := X.Dims()
	basis := monomialBasis(d, u.degree)
	if err := u.sys.fit("UniversalKriging.Fit", u.vg, basis, X, z); err != nil {
		return err
	}
	u.setFitted()
	return nil
}

// Estimate returns the universal kriging mean and variance at x.
func (u *Universal) Estimate(x []float64) (float64, float64, error) {
	if !u.IsFitted() {
		return 0, 0, errors.NewNotFittedError("UniversalKriging", "Estimate")
	}
	return u.sys.estimate("UniversalKriging.Estimate", x)
}

// monomialBasis returns the evaluator of all monomials in d coordinates with
// total degree at most degree. Terms are ordered by total degree, then
// lexicographically by exponent tuple with the first coordinate's exponent
// descending: in 2D up to degree 2 the terms are
//
//	1, x, y, x², xy, y²
//
// The ordering is deterministic; it fixes the layout of the trend block of
// the augmented system.
func monomialBasis(d, degree int) basisFunc {
	var exps [][]int
	for g := 0; g <= degree; g++ {
		exps = append(exps, exponents(d, g)...)
	}
	return func(x []float64) []float64 {
		f := make([]float64, len(exps))
		for t, e := range exps {
			term := 1.0
			for ax, p := range e {
				for i := 0; i < p; i++ {
					term *= x[ax]
				}
			}
			f[t] = term
		}
		return f
	}
}

// exponents enumerates all exponent tuples of length d with total degree g,
// first exponent descending.
func exponents(d, g int) [][]int {
	if d == 1 {
		return [][]int{{g}}
	}
	var out [][]int
	for e := g; e >= 0; e-- {
		for _, rest := range exponents(d-1, g-e) {
			out = append(out, append([]int{e}, rest...))
		}
	}
	return out
}
