package errors

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomyAs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target interface{}
	}{
		{"configuration", NewConfigurationError("zinc", "drift function is nil"), new(*ConfigurationError)},
		{"data", NewDataError("lead", "no valid samples"), new(*DataError)},
		{"numerical", NewNumericalError("zinc", "fit", "singular matrix"), new(*NumericalError)},
		{"not fitted", NewNotFittedError("Ordinary", "Estimate"), new(*NotFittedError)},
		{"dimension", NewDimensionError("Fit", 2, 3, 1), new(*DimensionError)},
		{"validation", NewValidationError("degree", "must be >= 0", -1), new(*ValidationError)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, As(tt.err, tt.target))
			// Categories are disjoint.
			var other *PanicError
			assert.False(t, As(tt.err, &other))
		})
	}
}

func TestErrorsSurviveWrapping(t *testing.T) {
	err := Wrap(NewDataError("zinc", "no valid samples"), "solve")
	var dataErr *DataError
	require.True(t, As(err, &dataErr))
	assert.Equal(t, "zinc", dataErr.Variable)
	assert.Contains(t, err.Error(), "solve")
}

func TestErrorMessages(t *testing.T) {
	err := NewConfigurationError("zinc", "unknown variable")
	assert.Contains(t, err.Error(), `"zinc"`)
	assert.Contains(t, err.Error(), "unknown variable")

	err = NewNumericalError("", "fit", "underdetermined system")
	assert.Equal(t, "geokrige: fit: underdetermined system", err.Error())

	err = NewDimensionError("Estimate", 2, 3, 1)
	assert.Contains(t, err.Error(), "Expected 2, got 3")
}

func TestWarningHandler(t *testing.T) {
	var captured []error
	SetWarningHandler(func(w error) { captured = append(captured, w) })
	defer SetWarningHandler(func(w error) {})

	w := NewConditioningWarning("zinc", "fit", 1e14)
	Warn(w)
	require.Len(t, captured, 1)
	assert.Contains(t, captured[0].Error(), "ill-conditioned")
	assert.Contains(t, captured[0].Error(), `"zinc"`)
}

func TestCheckValues(t *testing.T) {
	assert.NoError(t, CheckValues("v", []float64{1, 2, 3}))

	err := CheckValues("v", []float64{1, math.NaN()})
	var dataErr *DataError
	require.True(t, As(err, &dataErr))
	assert.Equal(t, "v", dataErr.Variable)

	assert.Error(t, CheckValues("v", []float64{math.Inf(-1)}))
}

func TestCheckEstimate(t *testing.T) {
	assert.NoError(t, CheckEstimate("v", 1.5, 0.2))

	err := CheckEstimate("v", math.NaN(), 0.2)
	var numErr *NumericalError
	require.True(t, As(err, &numErr))
	assert.Equal(t, "non-finite mean", numErr.Reason)

	err = CheckEstimate("v", 1.5, math.Inf(1))
	require.True(t, As(err, &numErr))
	assert.Equal(t, "non-finite variance", numErr.Reason)
}

func TestClampVariance(t *testing.T) {
	assert.Equal(t, 0.0, ClampVariance(-1e-12))
	assert.Equal(t, 0.5, ClampVariance(0.5))
	assert.Equal(t, 0.0, ClampVariance(0.0))
	// A clearly negative variance is a real numerical failure and is kept.
	assert.Equal(t, -0.1, ClampVariance(-0.1))
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "solveVariable")
		panic("shape mismatch")
	}
	err := fn()
	require.Error(t, err)
	var panicErr *PanicError
	require.True(t, As(err, &panicErr))
	assert.Equal(t, "solveVariable", panicErr.Operation)
	assert.Contains(t, err.Error(), "shape mismatch")
	assert.Contains(t, panicErr.String(), "Stack trace")
}

func TestRecoverPreservesExistingError(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "op")
		err = fmt.Errorf("original failure")
		panic("later panic")
	}
	err := fn()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "original failure")
	assert.Contains(t, err.Error(), "later panic")
}

func TestCombineErrors(t *testing.T) {
	assert.NoError(t, CombineErrors(nil, nil))

	first := NewDataError("lead", "no valid samples")
	combined := CombineErrors(nil, first)
	var dataErr *DataError
	assert.True(t, As(combined, &dataErr))

	// The first failure stays the primary; later ones are attached as
	// secondary errors visible in the verbose rendering.
	second := NewNumericalError("zinc", "fit", "singular matrix")
	combined = CombineErrors(combined, second)
	assert.True(t, As(combined, &dataErr))
	assert.Contains(t, fmt.Sprintf("%+v", combined), "singular matrix")
}
