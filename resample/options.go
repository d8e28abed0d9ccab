package resample

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arloliu/resampling/array"
	"github.com/arloliu/resampling/errs"
	"github.com/arloliu/resampling/internal/options"
	"github.com/arloliu/resampling/random"
)

// Config holds the settings shared by all estimators.
type Config struct {
	// Func is applied to the means of every resample. Defaults to Identity.
	Func Function
	// FuncAxis designates the function axis, or nil for none.
	FuncAxis *int
	// DType selects the precision of the subset means.
	DType array.DType
	// Source supplies random draws. When nil, every estimator call creates
	// its own randomly seeded generator.
	Source random.Source
	// Logger receives one debug event per estimator call.
	Logger zerolog.Logger
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

func defaultConfig() Config {
	return Config{
		Func:   Identity(),
		DType:  array.Float64,
		Logger: zerolog.Nop(),
	}
}

func newConfig(opts ...Option) (Config, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// source returns the configured source or a fresh random generator.
func (c *Config) source() random.Source {
	if c.Source != nil {
		return c.Source
	}

	return random.NewRandom()
}

// WithFunc sets the function applied to the resample means.
func WithFunc(f Function) Option {
	return options.New(func(cfg *Config) error {
		if !f.valid() {
			return fmt.Errorf("%w: invalid function", errs.ErrInvalidParameters)
		}
		cfg.Func = f

		return nil
	})
}

// WithFuncAxis designates axis as the function axis. The function then
// receives one mean per position along axis, and N becomes the array size
// divided by the size of that axis. Negative axes count from the end.
func WithFuncAxis(axis int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.FuncAxis = &axis
	})
}

// WithDType sets the precision used to compute the subset means.
func WithDType(d array.DType) Option {
	return options.New(func(cfg *Config) error {
		if !d.Valid() {
			return fmt.Errorf("%w: unknown dtype %d", errs.ErrInvalidParameters, d)
		}
		cfg.DType = d

		return nil
	})
}

// WithSource sets the random source. The source is used without locking;
// wrap it with random.Synchronized when sharing it between goroutines.
func WithSource(src random.Source) Option {
	return options.New(func(cfg *Config) error {
		if src == nil {
			return fmt.Errorf("%w: nil random source", errs.ErrInvalidParameters)
		}
		cfg.Source = src

		return nil
	})
}

// WithSeed uses a PCG generator seeded with seed1 and seed2.
//
// The generator is shared by every call on the estimator and is wrapped with
// random.Synchronized, so concurrent calls are safe. Results are reproducible
// for sequential calls only; concurrent calls interleave their draws.
func WithSeed(seed1, seed2 uint64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Source = random.Synchronized(random.New(seed1, seed2))
	})
}

// WithSeedLabel uses a generator whose seeds are derived from label.
// Like WithSeed, the generator is synchronized and shared by all calls.
func WithSeedLabel(label string) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Source = random.Synchronized(random.NewFromLabel(label))
	})
}

// WithLogger sets the logger for per-call debug events.
func WithLogger(logger zerolog.Logger) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Logger = logger
	})
}
