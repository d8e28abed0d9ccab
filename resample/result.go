package resample

import (
	"fmt"
	"strings"
)

// Result is the outcome of one estimator call.
//
// Mean and Error have one component per component of the function result;
// for a scalar function both have length one and Scalar returns the pair.
type Result struct {
	// Method is the resampling scheme that produced the result.
	Method Method
	// Mean is the average of the resample values.
	Mean []float64
	// Error is the estimated statistical error of Mean, per component.
	Error []float64
	// Resamples is the number of resample values (N for the jackknife,
	// the iteration count otherwise).
	Resamples int
}

// Scalar returns the first mean/error pair.
// It returns zeros for an empty result.
func (r Result) Scalar() (mean, stdErr float64) {
	if len(r.Mean) == 0 {
		return 0, 0
	}

	return r.Mean[0], r.Error[0]
}

// Dim returns the number of components.
func (r Result) Dim() int {
	return len(r.Mean)
}

// String returns a string representation of the result.
func (r Result) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Result{Method: %s, Resamples: %d, Values: [", r.Method, r.Resamples)
	for i := range r.Mean {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g ± %g", r.Mean[i], r.Error[i])
	}
	sb.WriteString("]}")

	return sb.String()
}
