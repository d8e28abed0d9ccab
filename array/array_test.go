package array

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/resampling/errs"
)

func TestNew(t *testing.T) {
	t.Run("defaults to one dimension", func(t *testing.T) {
		a, err := New([]float64{1, 2, 3})
		require.NoError(t, err)
		require.Equal(t, []int{3}, a.Shape())
		require.Equal(t, 1, a.NDim())
		require.Equal(t, 3, a.Size())
	})

	t.Run("accepts matching shape", func(t *testing.T) {
		a, err := New([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
		require.NoError(t, err)
		require.Equal(t, []int{2, 3}, a.Shape())

		v, err := a.At(1, 2)
		require.NoError(t, err)
		require.Equal(t, 6.0, v)
	})

	t.Run("rejects mismatched shape", func(t *testing.T) {
		_, err := New([]float64{1, 2, 3}, 2, 2)
		require.ErrorIs(t, err, errs.ErrInvalidShape)
	})

	t.Run("rejects negative dimension", func(t *testing.T) {
		_, err := New(nil, -1)
		require.ErrorIs(t, err, errs.ErrInvalidShape)
	})

	t.Run("copies input", func(t *testing.T) {
		data := []float64{1, 2, 3}
		a, err := New(data)
		require.NoError(t, err)

		data[0] = 100
		v, err := a.FlatAt(0)
		require.NoError(t, err)
		require.Equal(t, 1.0, v)

		flat := a.Flat()
		flat[1] = 100
		v, err = a.FlatAt(1)
		require.NoError(t, err)
		require.Equal(t, 2.0, v)
	})
}

func TestFromInts(t *testing.T) {
	a, err := FromInts([]int32{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, a.Flat())

	b, err := FromInts([]uint8{7})
	require.NoError(t, err)
	require.Equal(t, []int{1}, b.Shape())
}

func TestFromColumns(t *testing.T) {
	a, err := FromColumns([]float64{1, 2, 3}, []float64{10, 20, 30})
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, a.Shape())
	require.Equal(t, []float64{1, 10, 2, 20, 3, 30}, a.Flat())

	_, err = FromColumns([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, errs.ErrInvalidShape)

	_, err = FromColumns()
	require.ErrorIs(t, err, errs.ErrInvalidShape)
}

func TestFromMatrix(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	a := FromMatrix(m)
	require.Equal(t, []int{2, 3}, a.Shape())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.Flat())

	col, err := a.Take(1, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)
}

func TestTake(t *testing.T) {
	// shape 2 x 3 x 2
	data := []float64{
		0, 1, 2, 3, 4, 5,
		6, 7, 8, 9, 10, 11,
	}
	a, err := New(data, 2, 3, 2)
	require.NoError(t, err)

	tests := []struct {
		name     string
		axis     int
		j        int
		expected []float64
	}{
		{"leading axis", 0, 1, []float64{6, 7, 8, 9, 10, 11}},
		{"middle axis", 1, 1, []float64{2, 3, 8, 9}},
		{"trailing axis", 2, 0, []float64{0, 2, 4, 6, 8, 10}},
		{"negative axis", -1, 1, []float64{1, 3, 5, 7, 9, 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Take(tt.axis, tt.j)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}

	t.Run("rejects bad axis", func(t *testing.T) {
		_, err := a.Take(3, 0)
		require.ErrorIs(t, err, errs.ErrInvalidAxis)
		_, err = a.Take(-4, 0)
		require.ErrorIs(t, err, errs.ErrInvalidAxis)
	})

	t.Run("rejects bad position", func(t *testing.T) {
		_, err := a.Take(1, 3)
		require.ErrorIs(t, err, errs.ErrInvalidIndex)
	})
}

func TestMeasurements(t *testing.T) {
	a, err := New(make([]float64, 12), 4, 3)
	require.NoError(t, err)

	n, err := a.Measurements(nil)
	require.NoError(t, err)
	require.Equal(t, 12, n)

	axis := 1
	n, err = a.Measurements(&axis)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	axis = 0
	n, err = a.Measurements(&axis)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	axis = 2
	_, err = a.Measurements(&axis)
	require.ErrorIs(t, err, errs.ErrInvalidAxis)

	empty, err := New(nil, 3, 0)
	require.NoError(t, err)
	axis = 1
	_, err = empty.Measurements(&axis)
	require.ErrorIs(t, err, errs.ErrInsufficientData)
}

func TestAtErrors(t *testing.T) {
	a, err := New([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	_, err = a.At(0)
	require.ErrorIs(t, err, errs.ErrInvalidIndex)

	_, err = a.At(2, 0)
	require.ErrorIs(t, err, errs.ErrInvalidIndex)

	_, err = a.FlatAt(4)
	require.ErrorIs(t, err, errs.ErrInvalidIndex)
}

func TestDType(t *testing.T) {
	require.Equal(t, "float64", Float64.String())
	require.Equal(t, "float32", Float32.String())
	require.Equal(t, "unknown", DType(9).String())
	require.True(t, Float32.Valid())
	require.False(t, DType(9).Valid())
}
