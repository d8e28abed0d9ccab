// Package array provides the immutable dense measurement array consumed by the
// resampling estimators.
//
// An Array stores float64 values in row-major order together with its shape.
// The leading dimension usually holds the measurements; when a function axis
// is designated, every other dimension is flattened into the measurement
// dimension and the axis entries are handed to the estimator function as
// separate arguments.
//
// All constructors copy their input, and no method exposes the backing
// storage, so an Array is safe to share between goroutines.
package array

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/resampling/errs"
)

// Array is an immutable N-dimensional array of float64 measurements.
type Array struct {
	data  []float64
	shape []int
}

// New creates an array from data with the given shape.
//
// When no shape is given the array is one-dimensional with len(data) elements.
// The product of the shape must equal len(data), and every dimension must be
// non-negative.
//
// Parameters:
//   - data: Values in row-major order (copied)
//   - shape: Optional dimensions
//
// Returns:
//   - *Array: The created array
//   - error: errs.ErrInvalidShape if the shape does not describe data
//
// Example:
//
//	// Two observables measured three times each (N x K = 3 x 2)
//	a, err := array.New([]float64{0.1, 1.2, 0.4, 0.9, 0.7, 1.1}, 3, 2)
func New(data []float64, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}

	size := 1
	for i, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("%w: dimension %d is negative (%d)", errs.ErrInvalidShape, i, d)
		}
		size *= d
	}

	if size != len(data) {
		return nil, fmt.Errorf("%w: shape %v holds %d elements, got %d", errs.ErrInvalidShape, shape, size, len(data))
	}

	return &Array{
		data:  append([]float64(nil), data...),
		shape: append([]int(nil), shape...),
	}, nil
}

// FromSlice creates a one-dimensional array from values.
func FromSlice(values []float64) *Array {
	return &Array{
		data:  append([]float64(nil), values...),
		shape: []int{len(values)},
	}
}

// FromInts creates an array from integer measurements, promoting every value
// to float64.
func FromInts[T constraints.Integer](values []T, shape ...int) (*Array, error) {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}

	return New(data, shape...)
}

// FromColumns creates an N x K array whose k-th column is cols[k].
//
// This is the natural layout for several observables recorded along the same
// chain: designating axis 1 as the function axis passes one mean per column to
// the estimator function.
//
// Returns errs.ErrInvalidShape when no columns are given or when the columns
// have different lengths.
func FromColumns(cols ...[]float64) (*Array, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no columns", errs.ErrInvalidShape)
	}

	n := len(cols[0])
	k := len(cols)
	data := make([]float64, n*k)
	for c, col := range cols {
		if len(col) != n {
			return nil, fmt.Errorf("%w: column %d has %d rows, expected %d", errs.ErrInvalidShape, c, len(col), n)
		}
		for r, v := range col {
			data[r*k+c] = v
		}
	}

	return &Array{data: data, shape: []int{n, k}}, nil
}

// FromMatrix creates a two-dimensional array from a gonum matrix.
func FromMatrix(m mat.Matrix) *Array {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := range r {
		for j := range c {
			data = append(data, m.At(i, j))
		}
	}

	return &Array{data: data, shape: []int{r, c}}
}

// Shape returns a copy of the array dimensions.
func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return len(a.data)
}

// Dim returns the size along axis. Negative axes count from the end.
func (a *Array) Dim(axis int) (int, error) {
	ax, err := a.NormalizeAxis(axis)
	if err != nil {
		return 0, err
	}

	return a.shape[ax], nil
}

// NormalizeAxis maps a possibly negative axis to its position in the shape.
func (a *Array) NormalizeAxis(axis int) (int, error) {
	nd := len(a.shape)
	if axis < 0 {
		axis += nd
	}
	if axis < 0 || axis >= nd {
		return 0, fmt.Errorf("%w: axis %d out of range for %d-dimensional array", errs.ErrInvalidAxis, axis, nd)
	}

	return axis, nil
}

// At returns the element at the multi-dimensional index idx.
func (a *Array) At(idx ...int) (float64, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%w: %d indices for %d-dimensional array", errs.ErrInvalidIndex, len(idx), len(a.shape))
	}

	offset := 0
	for i, v := range idx {
		if v < 0 || v >= a.shape[i] {
			return 0, fmt.Errorf("%w: index %d out of range [0, %d) on axis %d", errs.ErrInvalidIndex, v, a.shape[i], i)
		}
		offset = offset*a.shape[i] + v
	}

	return a.data[offset], nil
}

// FlatAt returns the i-th element in row-major order.
func (a *Array) FlatAt(i int) (float64, error) {
	if i < 0 || i >= len(a.data) {
		return 0, fmt.Errorf("%w: flat index %d out of range [0, %d)", errs.ErrInvalidIndex, i, len(a.data))
	}

	return a.data[i], nil
}

// Flat returns a copy of all elements in row-major order.
func (a *Array) Flat() []float64 {
	return append([]float64(nil), a.data...)
}

// Take returns the one-dimensional slice obtained by fixing axis to j and
// flattening the remaining dimensions in row-major order.
//
// For an N x K array, Take(1, k) is the k-th column and Take(0, i) is the
// i-th row.
//
// Parameters:
//   - axis: The fixed axis (negative values count from the end)
//   - j: Position along axis
//
// Returns:
//   - []float64: Newly allocated slice of Size()/Dim(axis) elements
//   - error: errs.ErrInvalidAxis or errs.ErrInvalidIndex
func (a *Array) Take(axis, j int) ([]float64, error) {
	ax, err := a.NormalizeAxis(axis)
	if err != nil {
		return nil, err
	}

	k := a.shape[ax]
	if j < 0 || j >= k {
		return nil, fmt.Errorf("%w: position %d out of range [0, %d) on axis %d", errs.ErrInvalidIndex, j, k, ax)
	}

	outer, inner := 1, 1
	for _, d := range a.shape[:ax] {
		outer *= d
	}
	for _, d := range a.shape[ax+1:] {
		inner *= d
	}

	out := make([]float64, 0, outer*inner)
	for o := range outer {
		base := (o*k + j) * inner
		out = append(out, a.data[base:base+inner]...)
	}

	return out, nil
}

// Measurements returns the measurement count N.
//
// Without a function axis every element is a measurement. With an axis, N is
// Size() divided by the size along that axis.
func (a *Array) Measurements(axis *int) (int, error) {
	if axis == nil {
		return len(a.data), nil
	}

	k, err := a.Dim(*axis)
	if err != nil {
		return 0, err
	}
	if k == 0 {
		return 0, fmt.Errorf("%w: function axis %d is empty", errs.ErrInsufficientData, *axis)
	}

	return len(a.data) / k, nil
}

// String returns a short description of the array.
func (a *Array) String() string {
	return fmt.Sprintf("Array{Shape: %v, Size: %d}", a.shape, len(a.data))
}
