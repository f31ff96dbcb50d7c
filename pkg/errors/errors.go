// Package errors provides the error taxonomy and warning machinery used
// throughout geokrige. Errors are split into configuration, data and
// numerical categories so callers can react to each stage of a solve
// differently; all constructors attach a stack trace via cockroachdb/errors.
package errors

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("geokrige-warning: %v\n", w)
	}
)

// SetWarningHandler replaces the process-wide warning handler. Warnings are
// non-fatal diagnostics (e.g. an ill-conditioned kriging system that could
// still be solved); the default handler writes them to the standard logger.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // drop warnings entirely
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// Warn emits a warning through the configured handler.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// ConditioningWarning reports that a kriging system was solvable but badly
// conditioned, so estimates near the affected samples may lose precision.
type ConditioningWarning struct {
	Variable  string
	Op        string
	Condition float64
}

func (w *ConditioningWarning) Error() string {
	if w.Variable != "" {
		return fmt.Sprintf("kriging system for variable %q is ill-conditioned in %s (cond=%.3g); estimates may be inaccurate", w.Variable, w.Op, w.Condition)
	}
	return fmt.Sprintf("kriging system is ill-conditioned in %s (cond=%.3g); estimates may be inaccurate", w.Op, w.Condition)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *ConditioningWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("variable", w.Variable).
		Str("operation", w.Op).
		Float64("condition", w.Condition).
		Str("type", "ConditioningWarning")
}

// NewConditioningWarning creates a new ConditioningWarning.
func NewConditioningWarning(variable, op string, cond float64) *ConditioningWarning {
	return &ConditioningWarning{Variable: variable, Op: op, Condition: cond}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// ConfigurationError reports an invalid solver configuration: an unknown
// variable name, or a structurally invalid parameter combination. It is
// raised eagerly, before any linear algebra runs.
type ConfigurationError struct {
	Variable string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	if e.Variable != "" {
		return fmt.Sprintf("geokrige: invalid configuration for variable %q: %s", e.Variable, e.Reason)
	}
	return fmt.Sprintf("geokrige: invalid configuration: %s", e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ConfigurationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("variable", e.Variable).
		Str("reason", e.Reason).
		Str("type", "ConfigurationError")
}

// NewConfigurationError creates a new ConfigurationError with a stack trace.
func NewConfigurationError(variable, reason string) error {
	err := &ConfigurationError{Variable: variable, Reason: reason}
	return errors.WithStack(err)
}

// DataError reports that the sample data for a variable cannot support an
// estimation: no valid samples remain after filtering, or the coordinate
// dimensionality disagrees between samples and domain.
type DataError struct {
	Variable string
	Reason   string
}

func (e *DataError) Error() string {
	if e.Variable != "" {
		return fmt.Sprintf("geokrige: bad data for variable %q: %s", e.Variable, e.Reason)
	}
	return fmt.Sprintf("geokrige: bad data: %s", e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("variable", e.Variable).
		Str("reason", e.Reason).
		Str("type", "DataError")
}

// NewDataError creates a new DataError with a stack trace.
func NewDataError(variable, reason string) error {
	err := &DataError{Variable: variable, Reason: reason}
	return errors.WithStack(err)
}

// NumericalError reports that a kriging system could not be solved reliably:
// a singular or rank-deficient covariance block (e.g. duplicate sample
// coordinates), or fewer samples than trend basis terms.
type NumericalError struct {
	Variable string
	Op       string
	Reason   string
}

func (e *NumericalError) Error() string {
	var b strings.Builder
	b.WriteString("geokrige: ")
	b.WriteString(e.Op)
	if e.Variable != "" {
		fmt.Fprintf(&b, " for variable %q", e.Variable)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NumericalError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("variable", e.Variable).
		Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "NumericalError")
}

// NewNumericalError creates a new NumericalError with a stack trace.
func NewNumericalError(variable, op, reason string) error {
	err := &NumericalError{Variable: variable, Op: op, Reason: reason}
	return errors.WithStack(err)
}

// NotFittedError is returned when Estimate is called on an estimator whose
// Fit has not completed.
type NotFittedError struct {
	EstimatorName string
	Method        string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("geokrige: %s: estimator is not fitted yet. Call Fit() before using %s()", e.EstimatorName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("estimator", e.EstimatorName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a new NotFittedError with a stack trace.
func NewNotFittedError(estimatorName, method string) error {
	err := &NotFittedError{EstimatorName: estimatorName, Method: method}
	return errors.WithStack(err)
}

// DimensionError reports a mismatch between expected and actual dimensions,
// e.g. a query location whose coordinate count differs from the samples the
// estimator was fitted on.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for samples, 1 for coordinates
}

func (e *DimensionError) Error() string {
	axisName := "coordinates"
	if e.Axis == 0 {
		axisName = "samples"
	}
	return fmt.Sprintf("geokrige: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "coordinates"
	if e.Axis == 0 {
		axisName = "samples"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError reports a single parameter whose value failed validation,
// e.g. a negative drift degree or a non-positive variogram range.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("geokrige: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a new ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// CombineErrors returns err, or other if err is nil. The solver uses it to
// accumulate per-variable failures without discarding earlier ones.
func CombineErrors(err, other error) error {
	return errors.CombineErrors(err, other)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyData indicates that empty data was passed.
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix indicates a singular kriging system matrix.
	ErrSingularMatrix = New("singular matrix")
)
