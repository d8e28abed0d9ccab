// Package options implements generic functional options.
//
// A package exposes its option type as an alias of Option over its config
// pointer, builds options with New or NoError, and resolves them with Apply:
//
//	type Option = options.Option[*Config]
//
//	func WithIterations(n int) Option {
//	    return options.New(func(c *Config) error {
//	        if n < 2 {
//	            return errors.New("need at least two iterations")
//	        }
//	        c.Iterations = n
//	        return nil
//	    })
//	}
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// funcOption adapts a function to the Option interface.
type funcOption[T any] struct {
	applyFunc func(T) error
}

func (f *funcOption[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) Option[T] {
	return &funcOption[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return &funcOption[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
