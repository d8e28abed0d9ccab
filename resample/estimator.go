package resample

import (
	"fmt"
	"strings"

	"github.com/arloliu/resampling/array"
	"github.com/arloliu/resampling/errs"
)

// Estimator defines the interface shared by the resampling schemes.
type Estimator interface {
	// Estimate computes the mean and error of the configured function over a.
	Estimate(a *array.Array) (Result, error)
	// Method returns the resampling scheme.
	Method() Method
}

// NewEstimator creates an estimator by method name and integer parameters.
//
// Parameters:
//   - name: The method name (case-insensitive). Supported names:
//   - "jackknife": no parameters
//   - "bootstrap": [iterations]
//   - "subsampling": [samples, iterations]
//   - params: The method parameters
//   - opts: Options applied to the estimator
//
// Returns:
//   - Estimator: The created estimator instance
//   - error: errs.ErrInvalidParameters for an unknown name or a wrong
//     parameter count, otherwise the constructor's validation error
//
// Example:
//
//	est, err := resample.NewEstimator("subsampling", []int{100, 50}, resample.WithSeed(1, 2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := est.Estimate(a)
func NewEstimator(name string, params []int, opts ...Option) (Estimator, error) {
	method := MethodFromString(name)

	want := map[Method]int{
		MethodJackknife:   0,
		MethodBootstrap:   1,
		MethodSubsampling: 2,
	}
	count, exists := want[method]
	if !exists {
		return nil, fmt.Errorf("%w: unknown method: %s. Supported methods: %s",
			errs.ErrInvalidParameters, name, strings.Join(supportedMethods(), ", "))
	}
	if len(params) != count {
		return nil, fmt.Errorf("%w: %s expects %d parameter(s), got %d", errs.ErrInvalidParameters, method, count, len(params))
	}

	switch method {
	case MethodBootstrap:
		return NewBootstrap(params[0], opts...)
	case MethodSubsampling:
		return NewSubsampling(params[0], params[1], opts...)
	default:
		return NewJackknife(opts...)
	}
}
