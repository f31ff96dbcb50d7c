package solver

import (
	"github.com/jakobetzel/geokrige/pkg/log"
)

// Option configures a Solve call.
type Option func(*options)

type options struct {
	path              Path
	parallel          bool
	parallelThreshold int
	logger            log.Logger
}

func defaultOptions() options {
	return options{
		path:              SequentialPath{},
		parallel:          false,
		parallelThreshold: 256,
		logger:            log.NewSlogLogger(nil),
	}
}

// WithPath sets the traversal order over domain locations.
func WithPath(p Path) Option {
	return func(o *options) {
		if p != nil {
			o.path = p
		}
	}
}

// WithParallel enables partitioning of the location loop across CPU cores.
// Results are identical to the sequential loop: each location writes to a
// disjoint output index and the fitted estimator is read-only.
func WithParallel(parallel bool) Option {
	return func(o *options) {
		o.parallel = parallel
	}
}

// WithParallelThreshold sets the minimum location count for which the
// parallel loop is used; smaller domains run sequentially.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelThreshold = n
		}
	}
}

// WithLogger sets the structured logger used during the solve.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
