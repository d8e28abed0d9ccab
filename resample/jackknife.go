package resample

import (
	"fmt"

	"github.com/arloliu/resampling/array"
	"github.com/arloliu/resampling/errs"
	"github.com/arloliu/resampling/internal/pool"
)

// JackknifeEstimator implements leave-one-out resampling.
//
// For N measurements it evaluates the function on the N means that each omit
// one measurement, and reports
//
//	mean  = (1/N) Σ f(x̄ᵢ)
//	error = √(N-1) · σ
//
// where σ is the population standard deviation of the f(x̄ᵢ). The jackknife
// uses no random draws, so repeated calls on the same array give identical
// results.
type JackknifeEstimator struct {
	cfg Config
}

var _ Estimator = (*JackknifeEstimator)(nil)

// NewJackknife creates a jackknife estimator.
func NewJackknife(opts ...Option) (*JackknifeEstimator, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &JackknifeEstimator{cfg: cfg}, nil
}

// Method returns MethodJackknife.
func (j *JackknifeEstimator) Method() Method {
	return MethodJackknife
}

// Estimate computes the jackknife mean and error of the function over a.
//
// Returns errs.ErrInsufficientData when a holds fewer than two measurements.
func (j *JackknifeEstimator) Estimate(a *array.Array) (Result, error) {
	n, err := a.Measurements(j.cfg.FuncAxis)
	if err != nil {
		return Result{}, err
	}
	if n < 2 {
		return Result{}, fmt.Errorf("%w: jackknife needs at least 2 measurements, got %d", errs.ErrInsufficientData, n)
	}

	r, err := newRun(&j.cfg, a, n)
	if err != nil {
		return Result{}, err
	}

	// indices omits position i: entries before i hold their own position,
	// entries from i on hold position+1. Moving to i+1 only rewrites entry i.
	indices, cleanup := pool.GetIntSlice(n - 1)
	defer cleanup()
	for p := range indices {
		indices[p] = p + 1
	}
	for i := range n {
		if i > 0 {
			indices[i-1] = i - 1
		}
		if err := r.add(indices); err != nil {
			return Result{}, err
		}
	}

	return r.result(MethodJackknife, jackknifeScale(n)), nil
}

// Jackknife computes the jackknife mean and error of a.
//
// Parameters:
//   - a: Measurement array
//   - opts: WithFunc, WithFuncAxis, WithDType, WithLogger
//
// Returns:
//   - Result: Mean and error of the function
//   - error: errs.ErrInsufficientData for N < 2, errs.ErrShapeMismatch when
//     the function arity does not match the function axis
//
// Example:
//
//	a := array.FromSlice([]float64{1, 2, 3, 4, 5})
//	res, _ := resample.Jackknife(a, resample.WithFunc(resample.Unary(func(x float64) float64 {
//	    return x * x
//	})))
//	mean, stdErr := res.Scalar() // 9.125, 4.2478
func Jackknife(a *array.Array, opts ...Option) (Result, error) {
	est, err := NewJackknife(opts...)
	if err != nil {
		return Result{}, err
	}

	return est.Estimate(a)
}
