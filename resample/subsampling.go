package resample

import (
	"fmt"

	"github.com/arloliu/resampling/array"
	"github.com/arloliu/resampling/errs"
)

// SubsamplingEstimator implements resampling without replacement of a fixed
// number of measurements.
//
// Each iteration takes the first S entries of a random permutation of [0, N)
// and evaluates the function on their means. With I iterations:
//
//	mean  = (1/I) Σ f(x̄ᵢ)
//	error = √(S/(I(I-1))) · σ
//
// where σ is the population standard deviation of the f(x̄ᵢ).
type SubsamplingEstimator struct {
	cfg        Config
	samples    int
	iterations int
}

var _ Estimator = (*SubsamplingEstimator)(nil)

// NewSubsampling creates a subsampling estimator drawing samples measurements
// per resample over iterations resamples.
//
// The upper bound samples <= N is checked by Estimate, since N depends on the
// array. Iteration counts below two fail with an error matching both
// errs.ErrInvalidParameters and errs.ErrInsufficientIterations.
func NewSubsampling(samples, iterations int, opts ...Option) (*SubsamplingEstimator, error) {
	if samples < 1 {
		return nil, fmt.Errorf("%w: subsampling needs at least 1 sample, got %d", errs.ErrInvalidParameters, samples)
	}
	if iterations < 2 {
		return nil, fmt.Errorf("%w: %w: subsampling needs at least 2 iterations, got %d",
			errs.ErrInvalidParameters, errs.ErrInsufficientIterations, iterations)
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &SubsamplingEstimator{cfg: cfg, samples: samples, iterations: iterations}, nil
}

// Method returns MethodSubsampling.
func (s *SubsamplingEstimator) Method() Method {
	return MethodSubsampling
}

// Samples returns the subset size.
func (s *SubsamplingEstimator) Samples() int {
	return s.samples
}

// Iterations returns the number of resamples per call.
func (s *SubsamplingEstimator) Iterations() int {
	return s.iterations
}

// Estimate computes the subsampling mean and error of the function over a.
//
// Returns errs.ErrInvalidParameters when the subset size exceeds the
// measurement count. A subset size equal to N is a full permutation resample.
func (s *SubsamplingEstimator) Estimate(a *array.Array) (Result, error) {
	n, err := a.Measurements(s.cfg.FuncAxis)
	if err != nil {
		return Result{}, err
	}
	if s.samples > n {
		return Result{}, fmt.Errorf("%w: %d samples exceed %d measurements", errs.ErrInvalidParameters, s.samples, n)
	}

	r, err := newRun(&s.cfg, a, s.iterations)
	if err != nil {
		return Result{}, err
	}

	src := s.cfg.source()
	for range s.iterations {
		perm := src.Permutation(n)
		if len(perm) < s.samples {
			return Result{}, fmt.Errorf("%w: permutation of length %d, expected %d", errs.ErrInvalidIndex, len(perm), n)
		}
		if err := r.add(perm[:s.samples]); err != nil {
			return Result{}, err
		}
	}

	return r.result(MethodSubsampling, subsamplingScale(s.samples, s.iterations)), nil
}

// Subsampling computes the subsampling mean and error of a, drawing samples
// measurements without replacement in each of iterations resamples.
//
// Parameters:
//   - a: Measurement array
//   - samples: Subset size in [1, N]
//   - iterations: Number of resamples, at least 2
//   - opts: WithFunc, WithFuncAxis, WithDType, WithSource, WithSeed, WithLogger
//
// Returns:
//   - Result: Mean and error of the function
//   - error: errs.ErrInvalidParameters (also errs.ErrInsufficientIterations
//     for iterations < 2) or errs.ErrShapeMismatch
//
// Example:
//
//	res, err := resample.Subsampling(a, 100, 50, resample.WithSeedLabel("run-7"))
func Subsampling(a *array.Array, samples, iterations int, opts ...Option) (Result, error) {
	est, err := NewSubsampling(samples, iterations, opts...)
	if err != nil {
		return Result{}, err
	}

	return est.Estimate(a)
}
