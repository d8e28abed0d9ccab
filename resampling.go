// Package resampling estimates the mean and statistical error of functions of
// correlated measurements, such as Markov chain Monte Carlo output, by
// jackknife, bootstrap and subsampling resampling.
//
// # Basic Usage
//
//	mean, stdErr, err := resampling.Jackknife(chain, nil)
//
//	// Error of the squared mean
//	mean, stdErr, err = resampling.Bootstrap(chain, 200, func(x float64) float64 {
//	    return x * x
//	})
//
// # Package Structure
//
// This package provides convenient top-level wrappers for one-dimensional data
// and scalar functions. Trailing resample options are forwarded, so a run can
// be seeded with resample.WithSeed. For multi-dimensional arrays, functions of
// several observables or vector-valued results, use the array and resample
// packages directly:
//
//	a, _ := array.FromColumns(energy, magnetization)
//	res, err := resample.Jackknife(a,
//	    resample.WithFuncAxis(1),
//	    resample.WithFunc(resample.Binary(func(e, m float64) float64 { return e * m })),
//	)
package resampling

import (
	"github.com/arloliu/resampling/array"
	"github.com/arloliu/resampling/resample"
)

// Jackknife computes the jackknife mean and error of f over data.
//
// A nil f is the identity. The computation is deterministic.
//
// Parameters:
//   - data: Measurements (not modified)
//   - f: Function of the mean, or nil
//   - opts: Additional resample options, such as resample.WithDType
//
// Returns:
//   - mean: Average of the leave-one-out function values
//   - stdErr: Estimated error of mean
//   - err: errs.ErrInsufficientData when len(data) < 2
//
// Example:
//
//	mean, stdErr, err := resampling.Jackknife([]float64{1, 2, 3, 4, 5}, nil)
//	// mean = 3, stdErr = 0.7071
func Jackknife(data []float64, f func(float64) float64, opts ...resample.Option) (mean, stdErr float64, err error) {
	res, err := resample.Jackknife(array.FromSlice(data), funcOptions(f, opts)...)
	if err != nil {
		return 0, 0, err
	}
	mean, stdErr = res.Scalar()

	return mean, stdErr, nil
}

// Bootstrap computes the bootstrap mean and error of f over data with
// iterations resamples. Draws come from a freshly seeded generator unless
// opts set a source, for example resample.WithSeed.
//
// A nil f is the identity. Returns errs.ErrInsufficientIterations when
// iterations < 2 and errs.ErrInsufficientData when len(data) < 2.
func Bootstrap(data []float64, iterations int, f func(float64) float64, opts ...resample.Option) (mean, stdErr float64, err error) {
	res, err := resample.Bootstrap(array.FromSlice(data), iterations, funcOptions(f, opts)...)
	if err != nil {
		return 0, 0, err
	}
	mean, stdErr = res.Scalar()

	return mean, stdErr, nil
}

// Subsampling computes the subsampling mean and error of f over data, drawing
// samples measurements without replacement in each of iterations resamples.
// As with Bootstrap, opts may fix the random source.
//
// A nil f is the identity. Returns errs.ErrInvalidParameters when samples is
// outside [1, len(data)] or iterations < 2.
func Subsampling(data []float64, samples, iterations int, f func(float64) float64, opts ...resample.Option) (mean, stdErr float64, err error) {
	res, err := resample.Subsampling(array.FromSlice(data), samples, iterations, funcOptions(f, opts)...)
	if err != nil {
		return 0, 0, err
	}
	mean, stdErr = res.Scalar()

	return mean, stdErr, nil
}

// funcOptions prepends the function option for f to opts.
func funcOptions(f func(float64) float64, opts []resample.Option) []resample.Option {
	if f == nil {
		return opts
	}

	return append([]resample.Option{resample.WithFunc(resample.Unary(f))}, opts...)
}
