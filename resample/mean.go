package resample

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/resampling/array"
	"github.com/arloliu/resampling/errs"
	"github.com/arloliu/resampling/internal/pool"
)

// subsetView holds the measurement slices that index subsets select from:
// the flattened array without a function axis, or one slice per position
// along the function axis.
type subsetView struct {
	slices [][]float64
	n      int
	dtype  array.DType
}

func newSubsetView(a *array.Array, axis *int, dtype array.DType) (*subsetView, error) {
	n, err := a.Measurements(axis)
	if err != nil {
		return nil, err
	}

	if axis == nil {
		return &subsetView{slices: [][]float64{a.Flat()}, n: n, dtype: dtype}, nil
	}

	k, err := a.Dim(*axis)
	if err != nil {
		return nil, err
	}

	slices := make([][]float64, k)
	for j := range k {
		if slices[j], err = a.Take(*axis, j); err != nil {
			return nil, err
		}
	}

	return &subsetView{slices: slices, n: n, dtype: dtype}, nil
}

// arity returns the number of means produced per subset.
func (v *subsetView) arity() int {
	return len(v.slices)
}

// means writes one mean per slice over indices into dst.
func (v *subsetView) means(dst []float64, indices []int) error {
	if len(indices) == 0 {
		return fmt.Errorf("%w: empty index subset", errs.ErrInsufficientData)
	}

	for _, idx := range indices {
		if idx < 0 || idx >= v.n {
			return fmt.Errorf("%w: index %d out of range [0, %d)", errs.ErrInvalidIndex, idx, v.n)
		}
	}

	for j, s := range v.slices {
		dst[j] = v.mean(s, indices)
	}

	return nil
}

func (v *subsetView) mean(s []float64, indices []int) float64 {
	if v.dtype == array.Float32 {
		var sum float32
		for _, idx := range indices {
			sum += float32(s[idx])
		}

		return float64(sum / float32(len(indices)))
	}

	selected, cleanup := pool.GetFloat64Slice(len(indices))
	defer cleanup()
	for i, idx := range indices {
		selected[i] = s[idx]
	}

	return stat.Mean(selected, nil)
}

// MeanAt computes the mean of a over the measurements at indices.
//
// Without a function axis, a is flattened and the result holds a single mean.
// With a function axis, the result holds one mean per position j along that
// axis, each taken over the slice of a that fixes the axis to j. The array is
// never modified.
//
// Parameters:
//   - a: Measurement array
//   - indices: Measurement positions in [0, N); repeats are allowed
//   - axis: Optional function axis (nil for none)
//   - dtype: Precision of the mean computation
//
// Returns:
//   - []float64: One mean without an axis, otherwise one per axis position
//   - error: errs.ErrInvalidIndex for an index outside [0, N),
//     errs.ErrInvalidAxis for a bad axis, errs.ErrInsufficientData for an
//     empty subset
//
// Example:
//
//	a, _ := array.FromColumns([]float64{1, 2, 3}, []float64{10, 20, 30})
//	axis := 1
//	means, _ := resample.MeanAt(a, []int{0, 2}, &axis, array.Float64)
//	// means == [2, 20]
func MeanAt(a *array.Array, indices []int, axis *int, dtype array.DType) ([]float64, error) {
	if !dtype.Valid() {
		return nil, fmt.Errorf("%w: unknown dtype %d", errs.ErrInvalidParameters, dtype)
	}

	view, err := newSubsetView(a, axis, dtype)
	if err != nil {
		return nil, err
	}

	out := make([]float64, view.arity())
	if err := view.means(out, indices); err != nil {
		return nil, err
	}

	return out, nil
}
