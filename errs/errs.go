// Package errs defines the sentinel errors returned by the resampling packages.
//
// Call sites wrap these sentinels with additional context, so callers should
// compare with errors.Is rather than by equality:
//
//	_, err := resample.Jackknife(a)
//	if errors.Is(err, errs.ErrInsufficientData) {
//	    // fewer than two measurements
//	}
package errs

import "errors"

var (
	// ErrInsufficientData indicates that the measurement count is too small for
	// the requested estimator (jackknife and bootstrap need at least two).
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInsufficientIterations indicates an iteration count below two.
	ErrInsufficientIterations = errors.New("insufficient iterations")

	// ErrInvalidParameters indicates an out-of-range estimator parameter,
	// such as a subsampling size outside [1, N].
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrInvalidIndex indicates that a measurement index is outside the array.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrShapeMismatch indicates a disagreement between the function arity and
	// the number of means supplied, or an inconsistent function result size.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidShape indicates that an array shape does not match its data.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrInvalidAxis indicates a function axis outside the array dimensions.
	ErrInvalidAxis = errors.New("invalid axis")
)
