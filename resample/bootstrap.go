package resample

import (
	"fmt"

	"github.com/arloliu/resampling/array"
	"github.com/arloliu/resampling/errs"
)

// BootstrapEstimator implements resampling with replacement.
//
// Each iteration draws N measurement indices uniformly from [0, N), repeats
// allowed, and evaluates the function on their means. With I iterations:
//
//	mean  = (1/I) Σ f(x̄ᵢ)
//	error = √(I/(I-1)) · σ
//
// where σ is the population standard deviation of the f(x̄ᵢ).
type BootstrapEstimator struct {
	cfg        Config
	iterations int
}

var _ Estimator = (*BootstrapEstimator)(nil)

// NewBootstrap creates a bootstrap estimator running iterations resamples.
//
// Returns errs.ErrInsufficientIterations when iterations < 2.
func NewBootstrap(iterations int, opts ...Option) (*BootstrapEstimator, error) {
	if iterations < 2 {
		return nil, fmt.Errorf("%w: bootstrap needs at least 2 iterations, got %d", errs.ErrInsufficientIterations, iterations)
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &BootstrapEstimator{cfg: cfg, iterations: iterations}, nil
}

// Method returns MethodBootstrap.
func (b *BootstrapEstimator) Method() Method {
	return MethodBootstrap
}

// Iterations returns the number of resamples per call.
func (b *BootstrapEstimator) Iterations() int {
	return b.iterations
}

// Estimate computes the bootstrap mean and error of the function over a.
//
// Returns errs.ErrInsufficientData when a holds fewer than two measurements.
func (b *BootstrapEstimator) Estimate(a *array.Array) (Result, error) {
	n, err := a.Measurements(b.cfg.FuncAxis)
	if err != nil {
		return Result{}, err
	}
	if n < 2 {
		return Result{}, fmt.Errorf("%w: bootstrap needs at least 2 measurements, got %d", errs.ErrInsufficientData, n)
	}

	r, err := newRun(&b.cfg, a, b.iterations)
	if err != nil {
		return Result{}, err
	}

	src := b.cfg.source()
	for range b.iterations {
		if err := r.add(src.UniformInts(0, n, n)); err != nil {
			return Result{}, err
		}
	}

	return r.result(MethodBootstrap, bootstrapScale(b.iterations)), nil
}

// Bootstrap computes the bootstrap mean and error of a over iterations
// resamples.
//
// Parameters:
//   - a: Measurement array
//   - iterations: Number of resamples, at least 2
//   - opts: WithFunc, WithFuncAxis, WithDType, WithSource, WithSeed, WithLogger
//
// Returns:
//   - Result: Mean and error of the function
//   - error: errs.ErrInsufficientIterations, errs.ErrInsufficientData or
//     errs.ErrShapeMismatch
//
// Example:
//
//	res, err := resample.Bootstrap(a, 100, resample.WithSeed(1, 2))
func Bootstrap(a *array.Array, iterations int, opts ...Option) (Result, error) {
	est, err := NewBootstrap(iterations, opts...)
	if err != nil {
		return Result{}, err
	}

	return est.Estimate(a)
}
