package faker

import (
	"log/slog"

	"github.com/roach88/fakery/internal/dictionary"
	"github.com/roach88/fakery/internal/provider"
	"github.com/roach88/fakery/internal/random"
)

// options collects the settings applied by New.
type options struct {
	source        dictionary.Source
	defaultLocale string
	locale        string
	rnd           random.Source
	seed          *uint64
	providers     []provider.Provider
	maxPasses     int
	maxDepth      int
	logger        *slog.Logger
}

// Option configures a Faker.
type Option func(*options)

// WithSource sets the dictionary source.
// Default: the embedded locale data (dictionary.Builtin).
func WithSource(src dictionary.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithLocale selects the override locale merged on top of the default one.
// An empty locale, or one equal to the default, loads the default only.
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = locale
	}
}

// WithDefaultLocale sets the locale that must always be present in the
// source. Default: "en".
func WithDefaultLocale(locale string) Option {
	return func(o *options) {
		o.defaultLocale = locale
	}
}

// WithRandom sets the random source. Ignored when WithSeed is also given.
func WithRandom(src random.Source) Option {
	return func(o *options) {
		o.rnd = src
	}
}

// WithSeed seeds a private random source. Takes precedence over WithRandom.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithProvider registers a custom provider. A custom provider shadows the
// category provider of the same name.
func WithProvider(p provider.Provider) Option {
	return func(o *options) {
		o.providers = append(o.providers, p)
	}
}

// WithMaxPasses sets the fixpoint pass budget (see resolver.WithMaxPasses).
func WithMaxPasses(n int) Option {
	return func(o *options) {
		o.maxPasses = n
	}
}

// WithMaxDepth sets the nesting budget (see resolver.WithMaxDepth).
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
