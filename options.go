package tabgo

type options struct {
	weighted bool
	logger   *Logger
	seed     int64
	seeded   bool
	name     string
}

// Option configures table construction behavior.
type Option func(*options)

// WithWeights constructs the table with an all-ones weight container
// instead of a zero-width one.
func WithWeights() Option {
	return func(o *options) {
		o.weighted = true
	}
}

// WithLogger sets the structured logger for operation tracing.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRandSeed seeds the table's random source, used by Shuffle,
// RandomRow and random filtering. Without it the source is seeded from
// the clock.
func WithRandSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithName sets a human-readable table name, used in log records.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
