package kriging

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/jakobetzel/geokrige/pkg/errors"
	"github.com/jakobetzel/geokrige/variogram"
)

// condWarnThreshold is the condition number above which a solvable system
// triggers a ConditioningWarning.
const condWarnThreshold = 1e12

// basisFunc evaluates the trend basis vector at a location. The augmented
// engine below is shared by Ordinary (constant basis), Universal (monomial
// basis) and external-drift kriging (caller-supplied basis); the variants
// differ only in this evaluator.
type basisFunc func(x []float64) []float64

// covMatrix builds the n×n sample covariance block C[i,j] = sill − γ(‖xᵢ−xⱼ‖).
func covMatrix(vg variogram.Model, X *mat.Dense) *mat.SymDense {
	d, n := X.Dims()
	xi := make([]float64, d)
	xj := make([]float64, d)
	C := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		mat.Col(xi, i, X)
		for j := i; j < n; j++ {
			mat.Col(xj, j, X)
			C.SetSym(i, j, variogram.Cov(vg, euclidean(xi, xj)))
		}
	}
	return C
}

// covVector fills dst[0:n] with the covariances between every sample column
// of X and the query location x.
func covVector(dst *mat.VecDense, vg variogram.Model, X *mat.Dense, x []float64) {
	_, n := X.Dims()
	for j := 0; j < n; j++ {
		dst.SetVec(j, variogram.Cov(vg, colDistance(X, j, x)))
	}
}

// augmentedSystem is the Lagrange-multiplier-augmented kriging system
//
//	[C  F][λ]   [c₀   ]
//	[Fᵗ 0][ν] = [f(x₀)]
//
// where F is the n×k trend basis matrix. The left-hand side depends only on
// sample geometry, so its LU factorization is computed once at fit time and
// reused for every query.
type augmentedSystem struct {
	vg    variogram.Model
	basis basisFunc

	lu mat.LU
	X  *mat.Dense
	z  []float64
	n  int
	d  int
	k  int
}

// fit assembles and factorizes the augmented system. The op string names the
// calling variant in errors and warnings.
func (s *augmentedSystem) fit(op string, vg variogram.Model, basis basisFunc, X *mat.Dense, z []float64) error {
	d, n, err := validateFitInputs(op, X, z)
	if err != nil {
		return err
	}

	x0 := make([]float64, d)
	mat.Col(x0, 0, X)
	k := len(basis(x0))
	if n < k {
		return errors.NewNumericalError("", op,
			"underdetermined system: fewer samples than trend basis terms")
	}

	size := n + k
	A := mat.NewDense(size, size, nil)
	C := covMatrix(vg, X)
	xj := make([]float64, d)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, j, C.At(i, j))
		}
	}
	for j := 0; j < n; j++ {
		mat.Col(xj, j, X)
		f := basis(xj)
		if len(f) != k {
			return errors.NewDimensionError(op, k, len(f), 1)
		}
		for t := 0; t < k; t++ {
			A.Set(j, n+t, f[t])
			A.Set(n+t, j, f[t])
		}
	}

	s.lu.Factorize(A)
	cond := s.lu.Cond()
	if math.IsInf(cond, 1) || math.IsNaN(cond) {
		return errors.NewNumericalError("", op,
			"singular kriging system; duplicate sample coordinates or degenerate basis")
	}
	if cond > condWarnThreshold {
		errors.Warn(errors.NewConditioningWarning("", op, cond))
	}

	s.vg = vg
	s.basis = basis
	s.X = mat.DenseCopyOf(X)
	s.z = append([]float64(nil), z...)
	s.n, s.d, s.k = n, d, k
	return nil
}

// estimate solves the system for one query location and returns the kriging
// mean and variance.
func (s *augmentedSystem) estimate(op string, x []float64) (float64, float64, error) {
	if len(x) != s.d {
		return 0, 0, errors.NewDimensionError(op, s.d, len(x), 1)
	}

	f := s.basis(x)
	if len(f) != s.k {
		return 0, 0, errors.NewDimensionError(op, s.k, len(f), 1)
	}

	rhs := mat.NewVecDense(s.n+s.k, nil)
	covVector(rhs, s.vg, s.X, x)
	for t := 0; t < s.k; t++ {
		rhs.SetVec(s.n+t, f[t])
	}

	sol := mat.NewVecDense(s.n+s.k, nil)
	if err := s.lu.SolveVecTo(sol, false, rhs); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return 0, 0, errors.NewNumericalError("", op, "kriging system solve failed: "+err.Error())
		}
		// Condition errors still carry a usable solution; the fit step
		// already warned about the conditioning.
	}

	var mean, variance float64
	for j := 0; j < s.n; j++ {
		mean += sol.AtVec(j) * s.z[j]
		variance += sol.AtVec(j) * rhs.AtVec(j)
	}
	for t := 0; t < s.k; t++ {
		variance += sol.AtVec(s.n+t) * f[t]
	}
	variance = errors.ClampVariance(s.vg.Sill() - variance)

	if err := errors.CheckEstimate("", mean, variance); err != nil {
		return 0, 0, err
	}
	return mean, variance, nil
}

// weights solves the system for one query location and returns the kriging
// weights λ (the first n entries of the solution, without the Lagrange
// multipliers).
func (s *augmentedSystem) weights(op string, x []float64) ([]float64, error) {
	if len(x) != s.d {
		return nil, errors.NewDimensionError(op, s.d, len(x), 1)
	}

	f := s.basis(x)
	rhs := mat.NewVecDense(s.n+s.k, nil)
	covVector(rhs, s.vg, s.X, x)
	for t := 0; t < s.k; t++ {
		rhs.SetVec(s.n+t, f[t])
	}

	sol := mat.NewVecDense(s.n+s.k, nil)
	if err := s.lu.SolveVecTo(sol, false, rhs); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, errors.NewNumericalError("", op, "kriging system solve failed: "+err.Error())
		}
	}

	lambda := make([]float64, s.n)
	for j := 0; j < s.n; j++ {
		lambda[j] = sol.AtVec(j)
	}
	return lambda, nil
}
