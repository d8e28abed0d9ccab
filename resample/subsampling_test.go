package resample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/resampling/array"
	"github.com/arloliu/resampling/errs"
)

func TestSubsamplingNormalization(t *testing.T) {
	a := array.FromSlice([]float64{1, 2, 3, 4})
	src := &scriptedSource{perms: [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}}}

	res, err := Subsampling(a, 2, 2, WithSource(src))
	require.NoError(t, err)

	// resample means 1.5 and 3.5: population std 1, scaled by √(2/(2·1))
	mean, stdErr := res.Scalar()
	require.InDelta(t, 2.5, mean, 1e-12)
	require.InDelta(t, 1.0, stdErr, 1e-12)
	require.Equal(t, MethodSubsampling, res.Method)
	require.Equal(t, 2, res.Resamples)
}

func TestSubsamplingStatistics(t *testing.T) {
	uniform := uniformArray(t)
	normal := normalArray(t)
	sqrtN1 := math.Sqrt(testN - 1)

	tests := []struct {
		name     string
		a        *array.Array
		opts     []Option
		wantMean float64
		wantErr  float64
	}{
		{"uniform", uniform, nil, 0.5, 1 / math.Sqrt(12) / sqrtN1},
		{"normal", normal, nil, 0.0, 1 / sqrtN1},
		{"uniform square", uniform, []Option{WithFunc(Unary(square))}, 0.25, math.Sqrt(4.0/45.0) / sqrtN1},
		{"normal square", normal, []Option{WithFunc(Unary(square))}, 0.0, math.Sqrt(2) / sqrtN1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithSeedLabel(tt.name)}, tt.opts...)
			res, err := Subsampling(tt.a, 20, 50, opts...)
			require.NoError(t, err)

			mean, stdErr := res.Scalar()
			require.InDelta(t, tt.wantMean, mean, statDelta)
			require.InDelta(t, tt.wantErr, stdErr, statDelta)
			require.GreaterOrEqual(t, stdErr, 0.0)
			require.False(t, math.IsInf(stdErr, 0) || math.IsNaN(stdErr))
		})
	}
}

func TestSubsamplingFullSize(t *testing.T) {
	data := []float64{4, 8, 15, 16, 23, 42}
	a := array.FromSlice(data)

	res, err := Subsampling(a, len(data), 10, WithSeed(9, 9))
	require.NoError(t, err)

	// every full permutation has the same mean
	mean, stdErr := res.Scalar()
	require.InDelta(t, 18.0, mean, 1e-12)
	require.InDelta(t, 0.0, stdErr, 1e-12)
}

func TestSubsamplingSingleSample(t *testing.T) {
	a := array.FromSlice([]float64{7})
	src := &scriptedSource{perms: [][]int{{0}}}

	res, err := Subsampling(a, 1, 3, WithSource(src))
	require.NoError(t, err)

	mean, stdErr := res.Scalar()
	require.Equal(t, 7.0, mean)
	require.Equal(t, 0.0, stdErr)
}

func TestSubsamplingFuncAxis(t *testing.T) {
	res, err := Subsampling(uniformNormalArray(t), 200, 50,
		WithSeed(5, 6),
		WithFuncAxis(1),
		WithFunc(Binary(func(x, y float64) float64 { return x * y })),
	)
	require.NoError(t, err)

	mean, stdErr := res.Scalar()
	require.InDelta(t, 0.5, mean, statDelta)
	require.InDelta(t, math.Sqrt(1+1.0/12.0)/math.Sqrt(testN-1), stdErr, statDelta)
}

func TestSubsamplingErrors(t *testing.T) {
	a := array.FromSlice([]float64{1, 2, 3})

	t.Run("zero samples", func(t *testing.T) {
		_, err := Subsampling(a, 0, 10)
		require.ErrorIs(t, err, errs.ErrInvalidParameters)
	})

	t.Run("more samples than measurements", func(t *testing.T) {
		_, err := Subsampling(a, 4, 10, WithSeed(1, 1))
		require.ErrorIs(t, err, errs.ErrInvalidParameters)
	})

	t.Run("too few iterations", func(t *testing.T) {
		_, err := Subsampling(a, 2, 1)
		require.ErrorIs(t, err, errs.ErrInvalidParameters)
		require.ErrorIs(t, err, errs.ErrInsufficientIterations)
	})

	t.Run("empty array", func(t *testing.T) {
		_, err := Subsampling(array.FromSlice(nil), 1, 10)
		require.ErrorIs(t, err, errs.ErrInvalidParameters)
	})

	t.Run("short permutation from source", func(t *testing.T) {
		src := &scriptedSource{perms: [][]int{{0}}}
		_, err := Subsampling(a, 2, 2, WithSource(src))
		require.ErrorIs(t, err, errs.ErrInvalidIndex)
	})
}

func TestSubsamplingAccessors(t *testing.T) {
	est, err := NewSubsampling(5, 12)
	require.NoError(t, err)
	require.Equal(t, 5, est.Samples())
	require.Equal(t, 12, est.Iterations())
	require.Equal(t, MethodSubsampling, est.Method())
}
