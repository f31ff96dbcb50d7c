// Standard attribute keys for kriging operations. Using these keys across all
// records keeps solve logs filterable: every per-variable record carries
// VariableKey, every fit record carries VariantKey and SamplesKey, and so on.

package log

// Estimation context.
const (
	// VariableKey identifies the target variable being estimated.
	VariableKey = "krige.variable"

	// VariantKey names the resolved kriging variant.
	// Values: "simple", "ordinary", "universal", "external_drift"
	VariantKey = "krige.variant"

	// OperationKey specifies the operation being performed.
	// Standard values: "resolve", "fit", "estimate", "solve", "validate"
	OperationKey = "krige.operation"

	// ComponentKey identifies the package performing the operation.
	// Examples: "solver", "kriging", "validation"
	ComponentKey = "krige.component"
)

// Data shape.
const (
	// SamplesKey is the number of valid samples an estimator was fitted on.
	SamplesKey = "data.samples"

	// LocationsKey is the number of domain locations traversed.
	LocationsKey = "data.locations"

	// DimsKey is the coordinate dimensionality of the problem.
	DimsKey = "data.dims"

	// DroppedKey is the number of samples dropped as missing/non-finite.
	DroppedKey = "data.dropped"

	// BasisTermsKey is the trend basis size of a Universal or external-drift
	// system (determines the augmented system shape).
	BasisTermsKey = "data.basis_terms"
)

// Performance.
const (
	// DurationMsKey is the elapsed wall time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// WorkersKey is the number of goroutines used for a parallel loop.
	WorkersKey = "perf.workers"
)
