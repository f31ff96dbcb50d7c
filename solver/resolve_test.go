package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakobetzel/geokrige/kriging"
	"github.com/jakobetzel/geokrige/pkg/errors"
	"github.com/jakobetzel/geokrige/variogram"
)

func TestResolvePrecedence(t *testing.T) {
	drift := []kriging.DriftFunc{kriging.ConstantDrift}

	cases := []struct {
		name     string
		params   Params
		want     Variant
		shadowed []string
	}{
		{"empty is ordinary", Params{}, VariantOrdinary, nil},
		{"mean is simple", Params{Mean: Float64(1.5)}, VariantSimple, nil},
		{"degree is universal", Params{Degree: Int(2)}, VariantUniversal, nil},
		{"drifts is external", Params{Drifts: drift}, VariantExternalDrift, nil},
		{"degree beats mean", Params{Degree: Int(1), Mean: Float64(0)}, VariantUniversal, []string{"mean"}},
		{"drifts beat degree", Params{Drifts: drift, Degree: Int(1)}, VariantExternalDrift, []string{"degree"}},
		{"drifts beat all", Params{Drifts: drift, Degree: Int(1), Mean: Float64(0)}, VariantExternalDrift, []string{"degree", "mean"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Resolve(tc.params)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.Variant)
			assert.Equal(t, tc.shadowed, r.Shadowed)
		})
	}
}

func TestResolveDefaultVariogram(t *testing.T) {
	r, err := Resolve(Params{})
	require.NoError(t, err)
	require.NotNil(t, r.Variogram)
	assert.Equal(t, 1.0, r.Variogram.Sill())
	assert.Equal(t, 1.0, r.Variogram.Range())
	assert.Equal(t, 0.0, r.Variogram.Nugget())
}

func TestResolveKeepsConfiguredVariogram(t *testing.T) {
	vg, err := variogram.NewSpherical(2, 7, 0.1)
	require.NoError(t, err)
	r, err := Resolve(Params{Variogram: vg})
	require.NoError(t, err)
	assert.Same(t, vg, r.Variogram.(*variogram.Spherical))
}

func TestResolveInvalidParams(t *testing.T) {
	_, err := Resolve(Params{Degree: Int(-1)})
	require.Error(t, err)
	var confErr *errors.ConfigurationError
	assert.True(t, errors.As(err, &confErr), "want ConfigurationError, got %v", err)

	_, err = Resolve(Params{Drifts: []kriging.DriftFunc{nil}})
	require.Error(t, err)
	assert.True(t, errors.As(err, &confErr), "want ConfigurationError, got %v", err)
}

func TestResolutionNewEstimator(t *testing.T) {
	r, err := Resolve(Params{Mean: Float64(3)})
	require.NoError(t, err)
	sk, ok := r.NewEstimator().(*kriging.Simple)
	require.True(t, ok)
	assert.Equal(t, 3.0, sk.Mean())

	r, err = Resolve(Params{Degree: Int(2)})
	require.NoError(t, err)
	uk, ok := r.NewEstimator().(*kriging.Universal)
	require.True(t, ok)
	assert.Equal(t, 2, uk.Degree())

	r, err = Resolve(Params{})
	require.NoError(t, err)
	_, ok = r.NewEstimator().(*kriging.Ordinary)
	assert.True(t, ok)
}
