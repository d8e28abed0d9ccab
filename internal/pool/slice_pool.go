package pool

import "sync"

// Slice pools for the scratch buffers of a resampling run.
// The int pool backs the jackknife leave-one-out index buffer; the float64
// pool backs the per-subset gather buffer and the per-component aggregation
// column. Index subsets drawn from a random.Source are allocated by the source.
var (
	intSlicePool = sync.Pool{
		New: func() any { return &[]int{} },
	}
	float64SlicePool = sync.Pool{
		New: func() any { return &[]float64{} },
	}
)

// GetIntSlice retrieves and resizes an int slice from the pool.
//
// The returned slice has length size; its contents are unspecified.
// The caller must call the returned cleanup function to return the slice to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []int: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	indices, cleanup := pool.GetIntSlice(n - 1)
//	defer cleanup()
func GetIntSlice(size int) ([]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	slice := *ptr

	if cap(slice) < size {
		slice = make([]int, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { intSlicePool.Put(ptr) }
}

// GetFloat64Slice retrieves and resizes a float64 slice from the pool.
//
// The returned slice has length size; its contents are unspecified.
// The caller must call the returned cleanup function to return the slice to the pool.
//
// Example:
//
//	values, cleanup := pool.GetFloat64Slice(len(indices))
//	defer cleanup()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := *ptr

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
