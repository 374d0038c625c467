package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/roach88/fakery/internal/dictionary"
	"github.com/roach88/fakery/internal/errdefs"
	"github.com/roach88/fakery/internal/provider"
	"github.com/roach88/fakery/internal/random"
)

// placeholderPattern matches #{body} and #{Provider.body}.
// Group 1 is the optional qualifier including its dot, group 2 the body.
var placeholderPattern = regexp.MustCompile(`#\{(\p{L}+\.)?(.*?)\}`)

// Dispatcher locates providers and capabilities for qualified placeholders.
// Implemented by *provider.Registry.
type Dispatcher interface {
	Provider(name string) (provider.Provider, error)
	Capability(p provider.Provider, name string) (provider.Capability, error)
}

// Resolver expands dictionary values and ad-hoc templates.
//
// Thread-safety: a Resolver is immutable after New. It is safe for
// concurrent use when its random source is (random.Locked is).
type Resolver struct {
	dict       *dictionary.Dictionary
	dispatcher Dispatcher
	selector   *Selector
	numerals   *NumeralExpander
	maxPasses  int
	maxDepth   int
	logger     *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxPasses sets the fixpoint pass budget per expansion.
//
// Default: 64 passes (DefaultMaxPasses)
func WithMaxPasses(n int) Option {
	return func(r *Resolver) {
		r.maxPasses = n
	}
}

// WithMaxDepth sets the nesting budget for recursive resolutions.
//
// Default: 32 levels (DefaultMaxDepth)
func WithMaxDepth(n int) Option {
	return func(r *Resolver) {
		r.maxDepth = n
	}
}

// WithLogger sets the logger used for dispatch diagnostics.
// Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// New creates a Resolver over dict. Qualified placeholders go through
// dispatcher; rnd drives candidate selection and numeral expansion.
func New(dict *dictionary.Dictionary, dispatcher Dispatcher, rnd random.Source, opts ...Option) (*Resolver, error) {
	if dict == nil {
		return nil, errdefs.Configuration(nil, "resolver requires a dictionary")
	}
	if dispatcher == nil {
		return nil, errdefs.Configuration(nil, "resolver requires a dispatcher")
	}
	if rnd == nil {
		return nil, errdefs.Configuration(nil, "resolver requires a random source")
	}

	r := &Resolver{
		dict:       dict,
		dispatcher: dispatcher,
		selector:   NewSelector(rnd),
		numerals:   NewNumeralExpander(rnd),
		maxPasses:  DefaultMaxPasses,
		maxDepth:   DefaultMaxDepth,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.maxPasses < 1 || r.maxDepth < 1 {
		return nil, errdefs.Configuration(nil, "expansion limits must be positive (passes=%d, depth=%d)", r.maxPasses, r.maxDepth)
	}
	return r, nil
}

// Resolve returns a fully expanded value for category/key.
// Digit wildcards are left in place.
func (r *Resolver) Resolve(ctx context.Context, category, key string) (string, error) {
	ctx, err := enter(ctx, category+"."+key, r.maxDepth)
	if err != nil {
		return "", err
	}

	raw, err := r.dict.RawValue(category, key)
	if err != nil {
		return "", err
	}
	s, err := r.selector.Select(raw)
	if err != nil {
		var e *errdefs.Error
		if errors.As(err, &e) {
			e.Category, e.Key = category, key
		}
		return "", err
	}
	return r.expand(ctx, category, s)
}

// ResolveWithNumerals is Resolve followed by numeral expansion.
func (r *Resolver) ResolveWithNumerals(ctx context.Context, category, key string) (string, error) {
	s, err := r.Resolve(ctx, category, key)
	if err != nil {
		return "", err
	}
	return r.numerals.Expand(s), nil
}

// Expand expands an arbitrary template against category. With an empty
// category, unqualified placeholders fail with a not-found error.
// Digit wildcards are left in place.
func (r *Resolver) Expand(ctx context.Context, category, expression string) (string, error) {
	if category != "" {
		if _, err := r.dict.Category(category); err != nil {
			return "", err
		}
	}
	return r.expand(ctx, category, expression)
}

// Numerify replaces the digit wildcards of s with random digits.
func (r *Resolver) Numerify(s string) string {
	return r.numerals.Expand(s)
}

// RawCategory returns the unresolved category.
func (r *Resolver) RawCategory(name string) (*dictionary.Category, error) {
	return r.dict.Category(name)
}

// Dictionary returns the dictionary the resolver reads from.
func (r *Resolver) Dictionary() *dictionary.Dictionary {
	return r.dict
}

// expand runs fixpoint passes over s until no placeholder remains.
func (r *Resolver) expand(ctx context.Context, category, s string) (string, error) {
	budget := passBudget{max: r.maxPasses}
	for {
		matches := placeholderPattern.FindAllStringSubmatchIndex(s, -1)
		if len(matches) == 0 {
			return s, nil
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := budget.check(ctx, s); err != nil {
			return "", err
		}

		next, err := r.pass(ctx, category, s, matches)
		if err != nil {
			return "", err
		}
		s = next
	}
}

// pass substitutes every match in s, left to right, into a new string.
func (r *Resolver) pass(ctx context.Context, category, s string, matches [][]int) (string, error) {
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])

		var qualifier string
		if m[2] >= 0 {
			qualifier = strings.TrimSuffix(s[m[2]:m[3]], ".")
		}
		body := s[m[4]:m[5]]

		v, err := r.placeholder(ctx, category, qualifier, body)
		if err != nil {
			return "", err
		}
		b.WriteString(v)
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String(), nil
}

// placeholder resolves one match.
func (r *Resolver) placeholder(ctx context.Context, category, qualifier, body string) (string, error) {
	if qualifier == "" {
		if category == "" {
			return "", errdefs.KeyNotFound("", body)
		}
		return r.Resolve(ctx, category, body)
	}
	return r.dispatch(ctx, qualifier, body)
}

// dispatch invokes the capability named by body on the qualifier's provider.
func (r *Resolver) dispatch(ctx context.Context, qualifier, body string) (string, error) {
	p, err := r.dispatcher.Provider(qualifier)
	if err != nil {
		return "", err
	}
	name := provider.CapabilityName(body)
	capability, err := r.dispatcher.Capability(p, name)
	if err != nil {
		return "", err
	}

	ctx, err = enter(ctx, p.Name()+"."+name, r.maxDepth)
	if err != nil {
		return "", err
	}
	r.logger.Debug("dispatching placeholder",
		"provider", p.Name(),
		"capability", name,
		"depth", len(frameFrom(ctx).chain))

	v, err := capability(ctx)
	if err != nil {
		if errdefs.KindOf(err) != "" {
			return "", err
		}
		return "", fmt.Errorf("invoking %s.%s: %w", p.Name(), name, err)
	}
	return v, nil
}
