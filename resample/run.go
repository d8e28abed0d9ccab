package resample

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/resampling/array"
	"github.com/arloliu/resampling/errs"
	"github.com/arloliu/resampling/internal/pool"
)

// run collects the resample values of one estimator call.
//
// Values are stored flat, resample after resample; dim is fixed by the
// first function result.
type run struct {
	cfg    *Config
	view   *subsetView
	args   []float64
	values []float64
	dim    int
	count  int
}

func newRun(cfg *Config, a *array.Array, resamples int) (*run, error) {
	view, err := newSubsetView(a, cfg.FuncAxis, cfg.DType)
	if err != nil {
		return nil, err
	}

	if err := cfg.Func.checkArity(view.arity()); err != nil {
		return nil, err
	}

	return &run{
		cfg:    cfg,
		view:   view,
		args:   make([]float64, view.arity()),
		values: make([]float64, 0, resamples),
	}, nil
}

// measurements returns N.
func (r *run) measurements() int {
	return r.view.n
}

// add evaluates the function on the subset means of indices.
func (r *run) add(indices []int) error {
	if err := r.view.means(r.args, indices); err != nil {
		return err
	}

	before := len(r.values)
	r.values = r.cfg.Func.appendTo(r.values, r.args)
	dim := len(r.values) - before

	switch {
	case dim == 0:
		return fmt.Errorf("%w: function returned no values", errs.ErrShapeMismatch)
	case r.count == 0:
		r.dim = dim
	case dim != r.dim:
		return fmt.Errorf("%w: function returned %d values, previously %d", errs.ErrShapeMismatch, dim, r.dim)
	}
	r.count++

	return nil
}

// result aggregates the collected values. Each component's error is scale
// times the population standard deviation of that component.
func (r *run) result(method Method, scale float64) Result {
	res := Result{
		Method:    method,
		Mean:      make([]float64, r.dim),
		Error:     make([]float64, r.dim),
		Resamples: r.count,
	}

	column, cleanup := pool.GetFloat64Slice(r.count)
	defer cleanup()

	for d := range r.dim {
		for i := range r.count {
			column[i] = r.values[i*r.dim+d]
		}
		mean, std := stat.PopMeanStdDev(column, nil)
		res.Mean[d] = mean
		res.Error[d] = scale * std
	}

	r.cfg.Logger.Debug().
		Str("method", method.String()).
		Int("measurements", r.view.n).
		Int("resamples", r.count).
		Int("dim", r.dim).
		Msg("resample: estimate complete")

	return res
}

func jackknifeScale(n int) float64 {
	return math.Sqrt(float64(n - 1))
}

func bootstrapScale(iterations int) float64 {
	return math.Sqrt(float64(iterations) / float64(iterations-1))
}

func subsamplingScale(samples, iterations int) float64 {
	return math.Sqrt(float64(samples) / (float64(iterations) * float64(iterations-1)))
}
