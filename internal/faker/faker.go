// Package faker assembles a dictionary, a random source, a provider
// registry and a resolver into one ready-to-use generator.
//
// Every dictionary category is published as a provider, so dictionary
// entries can reference each other with qualified placeholders such as
// #{Name.first_name}. Custom providers passed with WithProvider are
// registered first and shadow category providers with the same name.
//
// Example:
//
//	f, err := faker.New(faker.WithLocale("en-GB"), faker.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	city, err := f.Generate(ctx, "Address.city")
package faker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/roach88/fakery/internal/dictionary"
	"github.com/roach88/fakery/internal/provider"
	"github.com/roach88/fakery/internal/random"
	"github.com/roach88/fakery/internal/resolver"
)

// Faker generates values for one locale.
//
// Thread-safety: a Faker is immutable after New and safe for concurrent
// use when its random source is. Sources created by WithSeed, or by default,
// are.
type Faker struct {
	dict     *dictionary.Dictionary
	registry *provider.Registry
	resolver *resolver.Resolver
}

// New builds a Faker.
//
// Fails with a configuration error when the dictionary cannot be loaded or
// a custom provider cannot be registered.
func New(opts ...Option) (*Faker, error) {
	o := options{
		source:        dictionary.Builtin(),
		defaultLocale: dictionary.DefaultLocale,
		maxPasses:     resolver.DefaultMaxPasses,
		maxDepth:      resolver.DefaultMaxDepth,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	dict, err := dictionary.Load(o.source, o.defaultLocale, o.locale)
	if err != nil {
		return nil, err
	}
	o.logger.Info("dictionary loaded",
		"locale", dict.Locale(),
		"categories", dict.Len())

	rnd := o.rnd
	switch {
	case o.seed != nil:
		rnd = random.New(*o.seed)
	case rnd == nil:
		rnd = random.NewFromEntropy()
	}

	registry := provider.NewRegistry()
	for _, p := range o.providers {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}

	res, err := resolver.New(dict, registry, rnd,
		resolver.WithMaxPasses(o.maxPasses),
		resolver.WithMaxDepth(o.maxDepth),
		resolver.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}

	// Category providers never replace a custom provider or an earlier
	// category whose name folds to the same provider name.
	for _, c := range dict.Categories() {
		p := newCategoryProvider(c, res)
		if existing, err := registry.Provider(p.Name()); err == nil {
			if prev, ok := existing.(*categoryProvider); ok {
				o.logger.Debug("category provider name already taken",
					"provider", p.Name(),
					"category", c.Name(),
					"taken_by", prev.category)
			} else {
				o.logger.Debug("category provider shadowed by custom provider",
					"provider", p.Name(),
					"category", c.Name())
			}
			continue
		}
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}

	return &Faker{
		dict:     dict,
		registry: registry,
		resolver: res,
	}, nil
}

// Resolve returns a fully expanded value for category/key with digit
// wildcards left in place.
func (f *Faker) Resolve(ctx context.Context, category, key string) (string, error) {
	return f.resolver.Resolve(ctx, category, key)
}

// ResolveWithNumerals is Resolve with digit wildcards replaced.
func (f *Faker) ResolveWithNumerals(ctx context.Context, category, key string) (string, error) {
	return f.resolver.ResolveWithNumerals(ctx, category, key)
}

// Expand expands template against category, leaving digit wildcards.
func (f *Faker) Expand(ctx context.Context, category, template string) (string, error) {
	return f.resolver.Expand(ctx, category, template)
}

// Format expands a free-standing template and replaces its digit
// wildcards. Only qualified placeholders are allowed:
//
//	f.Format(ctx, "#{Name.first_name} <#{Internet.email}> ###")
func (f *Faker) Format(ctx context.Context, template string) (string, error) {
	s, err := f.resolver.Expand(ctx, "", template)
	if err != nil {
		return "", err
	}
	return f.resolver.Numerify(s), nil
}

// Generate invokes a capability given as "Provider.capability". The
// capability may be spelled in snake_case or camelCase.
func (f *Faker) Generate(ctx context.Context, ref string) (string, error) {
	providerName, capabilityName, ok := strings.Cut(ref, ".")
	if !ok || providerName == "" || capabilityName == "" {
		return "", fmt.Errorf("invalid capability reference %q: want Provider.capability", ref)
	}

	p, err := f.registry.Provider(providerName)
	if err != nil {
		return "", err
	}
	capability, err := f.registry.Capability(p, provider.CapabilityName(capabilityName))
	if err != nil {
		return "", err
	}
	return capability(ctx)
}

// RawCategory returns the unresolved category.
func (f *Faker) RawCategory(name string) (*dictionary.Category, error) {
	return f.resolver.RawCategory(name)
}

// Provider returns the provider registered under name, ignoring case.
func (f *Faker) Provider(name string) (provider.Provider, error) {
	return f.registry.Provider(name)
}

// Registry returns the provider registry.
func (f *Faker) Registry() *provider.Registry {
	return f.registry
}

// Dictionary returns the merged dictionary.
func (f *Faker) Dictionary() *dictionary.Dictionary {
	return f.dict
}

// Locale returns the effective locale: the override locale when one was
// merged, otherwise the default locale.
func (f *Faker) Locale() string {
	return f.dict.Locale()
}
