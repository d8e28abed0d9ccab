// Package resample estimates the mean and statistical error of a function of
// the mean of correlated measurements using resampling.
//
// The typical input is the output of a Markov chain Monte Carlo simulation:
// measurements that are autocorrelated, where the quantity of interest is a
// (usually non-linear) function of the mean, f(x̄), rather than the mean of
// f(x). Analytic error propagation is replaced by evaluating f on many subset
// means and measuring their spread.
//
// # Estimators
//
//   - Jackknife: N leave-one-out means, error √(N-1)·σ. Deterministic.
//   - Bootstrap: I resamples of N draws with replacement, error √(I/(I-1))·σ.
//   - Subsampling: I resamples of S draws without replacement, error √(S/(I(I-1)))·σ.
//
// σ is always the population standard deviation (divided by the number of
// resample values) of the function values.
//
// # Basic Usage
//
//	a := array.FromSlice(chain)
//	res, err := resample.Jackknife(a)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mean, stdErr := res.Scalar()
//
// # Functions of Several Observables
//
// With a function axis, the function receives one mean per position along that
// axis. For an N x 2 array holding energy and magnetization per sweep:
//
//	a, _ := array.FromColumns(energy, magnetization)
//	res, err := resample.Jackknife(a,
//	    resample.WithFuncAxis(1),
//	    resample.WithFunc(resample.Binary(func(e, m float64) float64 { return e * m })),
//	)
//
// The function arity must match the size of the axis, otherwise the call fails
// with errs.ErrShapeMismatch.
//
// # Randomness
//
// Bootstrap and subsampling draw indices from a random.Source. Pass WithSeed or
// WithSeedLabel for reproducible runs, or WithSource to supply your own. When
// no source is given, each call uses a fresh randomly seeded generator, so
// concurrent calls on one estimator are safe. The generators created by
// WithSeed and WithSeedLabel are synchronized; a source passed to WithSource
// is shared by every call on the estimator and must be wrapped with
// random.Synchronized before concurrent use.
//
// Every call runs sequentially. Splitting iterations across goroutines with
// independent sources changes the floating point summation order, so results
// would only agree with a sequential run up to the last bits.
package resample
