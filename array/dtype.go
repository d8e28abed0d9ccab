package array

// DType selects the floating point precision used when averaging measurements.
type DType uint8

const (
	// Float64 accumulates in double precision. This is the default.
	Float64 DType = iota
	// Float32 converts each element to float32 and accumulates in single precision.
	Float32
)

// String returns the name of the data type.
func (d DType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	default:
		return "unknown"
	}
}

// Valid reports whether d is a known data type.
func (d DType) Valid() bool {
	return d == Float64 || d == Float32
}
