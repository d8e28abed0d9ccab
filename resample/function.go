package resample

import (
	"fmt"

	"github.com/arloliu/resampling/errs"
)

// Function is the quantity whose mean and error are estimated.
//
// A Function receives the means of one resample as positional arguments: a
// single mean when no function axis is set, or one mean per position along the
// function axis. It produces either a scalar or a fixed-size vector.
//
// Construct Functions with Identity, Unary, Binary, Scalar, Vector or Means.
// The zero Function is invalid.
type Function struct {
	arity  int
	scalar func(args []float64) float64
	vector func(args []float64) []float64
}

// Identity returns the default function, which takes one mean and returns it.
func Identity() Function {
	return Function{
		arity:  1,
		scalar: func(args []float64) float64 { return args[0] },
	}
}

// Unary wraps a function of a single mean, for example x -> x².
func Unary(f func(x float64) float64) Function {
	return Function{
		arity:  1,
		scalar: func(args []float64) float64 { return f(args[0]) },
	}
}

// Binary wraps a function of two means, typically used with a function axis
// of size two.
func Binary(f func(x, y float64) float64) Function {
	return Function{
		arity:  2,
		scalar: func(args []float64) float64 { return f(args[0], args[1]) },
	}
}

// Scalar wraps a scalar function taking arity means.
// An arity of zero accepts any number of means.
func Scalar(arity int, f func(args ...float64) float64) Function {
	return Function{
		arity:  arity,
		scalar: func(args []float64) float64 { return f(args...) },
	}
}

// Vector wraps an array-valued function taking arity means.
// An arity of zero accepts any number of means. Every call must return the
// same non-zero number of components.
func Vector(arity int, f func(args ...float64) []float64) Function {
	return Function{
		arity:  arity,
		vector: func(args []float64) []float64 { return f(args...) },
	}
}

// Means returns a function that accepts any number of means and returns them
// as a vector, producing one mean/error pair per function axis position.
func Means() Function {
	return Function{
		arity:  0,
		vector: func(args []float64) []float64 { return args },
	}
}

// Arity returns the number of means the function expects, or zero when it
// accepts any number.
func (f Function) Arity() int {
	return f.arity
}

func (f Function) valid() bool {
	return f.arity >= 0 && (f.scalar != nil || f.vector != nil)
}

// checkArity verifies that the function accepts k means.
func (f Function) checkArity(k int) error {
	if f.arity != 0 && f.arity != k {
		return fmt.Errorf("%w: function takes %d argument(s), function axis supplies %d", errs.ErrShapeMismatch, f.arity, k)
	}

	return nil
}

// appendTo evaluates the function at args and appends the result to dst.
func (f Function) appendTo(dst, args []float64) []float64 {
	if f.scalar != nil {
		return append(dst, f.scalar(args))
	}

	return append(dst, f.vector(args)...)
}
