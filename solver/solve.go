package solver

import (
	"sync"
	"time"

	"github.com/jakobetzel/geokrige/core/parallel"
	"github.com/jakobetzel/geokrige/kriging"
	"github.com/jakobetzel/geokrige/pkg/errors"
	"github.com/jakobetzel/geokrige/pkg/log"
	"github.com/jakobetzel/geokrige/spatial"
)

// VariableEstimate is the estimated surface of one variable: mean and
// variance sequences index-aligned with the domain location order.
type VariableEstimate struct {
	Means     []float64
	Variances []float64
}

// Result maps variable names to their estimated surfaces. A variable appears
// in the result only if its whole pipeline succeeded.
type Result map[string]VariableEstimate

// Solve estimates every target variable of the problem over its domain.
//
// Configuration is validated eagerly: a config entry for a variable that is
// not a target of the problem, or a structurally invalid parameter record,
// aborts the whole call before any linear algebra runs. Data and numerical
// failures are isolated per variable: the returned Result holds the surfaces
// of every variable that succeeded, and the returned error combines the
// failures of those that did not, each naming its variable.
func Solve(problem *Problem, config Config, opts ...Option) (Result, error) {
	if problem == nil {
		return nil, errors.NewDataError("", "problem is required")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger.With(log.ComponentKey, "solver")

	resolutions, err := resolveAll(problem, config, logger)
	if err != nil {
		return nil, err
	}

	result := make(Result, len(resolutions))
	var solveErr error
	for _, name := range problem.Variables() {
		est, err := solveVariable(problem, name, resolutions[name], o, logger)
		if err != nil {
			logger.Error("variable estimation failed",
				log.ErrAttr(err), log.VariableKey, name)
			solveErr = errors.CombineErrors(solveErr, tagVariable(err, name))
			continue
		}
		result[name] = est
	}
	return result, solveErr
}

// resolveAll validates the configuration against the problem's target
// variables and resolves one estimator variant per variable.
func resolveAll(problem *Problem, config Config, logger log.Logger) (map[string]Resolution, error) {
	targets := make(map[string]bool, len(problem.vars))
	for _, name := range problem.vars {
		targets[name] = true
	}
	for name := range config {
		if !targets[name] {
			return nil, errors.NewConfigurationError(name,
				"configured variable is not a target of the problem")
		}
	}

	resolutions := make(map[string]Resolution, len(problem.vars))
	for _, name := range problem.vars {
		r, err := Resolve(config[name])
		if err != nil {
			return nil, tagVariable(err, name)
		}
		if len(r.Shadowed) > 0 {
			logger.Debug("configuration fields shadowed by precedence",
				log.VariableKey, name,
				log.VariantKey, r.Variant.String(),
				"shadowed", r.Shadowed)
		}
		resolutions[name] = r
	}
	return resolutions, nil
}

// solveVariable runs the fit-and-estimate pipeline for one variable.
func solveVariable(problem *Problem, name string, res Resolution, o options, logger log.Logger) (est VariableEstimate, err error) {
	defer errors.Recover(&err, "solveVariable")

	X, z, err := problem.data.Valid(name)
	if err != nil {
		return VariableEstimate{}, err
	}
	_, n := X.Dims()
	dropped := problem.data.Points().Len() - n

	start := time.Now()
	estimator := res.NewEstimator()
	if err := estimator.Fit(X, z); err != nil {
		return VariableEstimate{}, err
	}
	logger.Info("estimator fitted",
		log.VariableKey, name,
		log.VariantKey, res.Variant.String(),
		log.OperationKey, "fit",
		log.SamplesKey, n,
		log.DroppedKey, dropped,
		log.DimsKey, problem.data.Dims(),
		log.DurationMsKey, time.Since(start).Milliseconds())

	domain := problem.domain
	order := o.path.Order(domain.Len())
	if len(order) != domain.Len() {
		return VariableEstimate{}, errors.NewConfigurationError(name,
			"path order does not cover the domain exactly once")
	}

	start = time.Now()
	means := make([]float64, domain.Len())
	variances := make([]float64, domain.Len())
	if o.parallel {
		err = estimateParallel(estimator, domain, order, means, variances, o.parallelThreshold)
	} else {
		err = estimateSequential(estimator, domain, order, means, variances)
	}
	if err != nil {
		return VariableEstimate{}, err
	}
	logger.Info("surface estimated",
		log.VariableKey, name,
		log.OperationKey, "estimate",
		log.LocationsKey, domain.Len(),
		log.DurationMsKey, time.Since(start).Milliseconds())

	return VariableEstimate{Means: means, Variances: variances}, nil
}

func estimateSequential(est kriging.Estimator, domain spatial.Domain, order []int, means, variances []float64) error {
	for _, idx := range order {
		mean, variance, err := est.Estimate(domain.Coordinates(idx))
		if err != nil {
			return err
		}
		means[idx] = mean
		variances[idx] = variance
	}
	return nil
}

// estimateParallel partitions the path into index ranges and estimates them
// concurrently. This is semantically identical to the sequential loop: the
// fitted estimator is immutable and every location owns a disjoint output
// index.
func estimateParallel(est kriging.Estimator, domain spatial.Domain, order []int, means, variances []float64, threshold int) error {
	if len(order) <= threshold {
		return estimateSequential(est, domain, order, means, variances)
	}
	var mu sync.Mutex
	var firstErr error
	parallel.ForEachIndex(order, func(idx int) {
		mean, variance, err := est.Estimate(domain.Coordinates(idx))
		if err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			return
		}
		means[idx] = mean
		variances[idx] = variance
	})
	return firstErr
}

// tagVariable rewrites categorized errors so they carry the variable name,
// and wraps everything else with it.
func tagVariable(err error, name string) error {
	var numErr *errors.NumericalError
	if errors.As(err, &numErr) && numErr.Variable == "" {
		return errors.NewNumericalError(name, numErr.Op, numErr.Reason)
	}
	var dataErr *errors.DataError
	if errors.As(err, &dataErr) {
		if dataErr.Variable == "" {
			return errors.NewDataError(name, dataErr.Reason)
		}
		return err
	}
	var confErr *errors.ConfigurationError
	if errors.As(err, &confErr) && confErr.Variable == "" {
		return errors.NewConfigurationError(name, confErr.Reason)
	}
	var valErr *errors.ValidationError
	if errors.As(err, &valErr) {
		return errors.Wrapf(err, "variable %q", name)
	}
	if numErr != nil || confErr != nil {
		return err
	}
	return errors.Wrapf(err, "variable %q", name)
}
