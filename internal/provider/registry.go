// Package provider indexes the named value producers that placeholders such
// as #{Name.first_name} dispatch to.
//
// A Provider exposes a fixed, discoverable set of capabilities: named
// operations that take no domain arguments and return a string. The Registry
// maps a provider's short name (case-insensitive) to the provider, and a
// capability name (exact) to a callable Capability. The registry does not
// own providers; it only indexes instances built elsewhere.
//
// Thread-safety: a Registry is populated once at startup with Register and
// is read-only afterwards. Lookups may then run from any goroutine.
package provider

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/roach88/fakery/internal/errdefs"
)

// Capability produces one value. The context carries expansion state for
// nested resolution; capabilities that do not resolve anything may ignore it.
type Capability func(ctx context.Context) (string, error)

// Provider is a named set of capabilities.
type Provider interface {
	// Name returns the short display name used in qualified placeholders.
	Name() string

	// Capabilities returns the capability names in declaration order.
	Capabilities() []string

	// Invoke runs the named capability.
	Invoke(ctx context.Context, capability string) (string, error)
}

// Registry is a name-indexed lookup of providers.
type Registry struct {
	providers []Provider          // Registration order
	byName    map[string]Provider // Keyed by case-folded name
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Provider),
	}
}

// Register adds a provider.
// Returns a configuration error if the name is empty or already taken
// (names compare case-insensitively).
func (r *Registry) Register(p Provider) error {
	name := p.Name()
	if strings.TrimSpace(name) == "" {
		return errdefs.Configuration(nil, "provider name is required")
	}
	key := foldName(name)
	if existing, ok := r.byName[key]; ok {
		return errdefs.Configuration(nil, "provider %q already registered as %q", name, existing.Name())
	}
	r.byName[key] = p
	r.providers = append(r.providers, p)
	return nil
}

// Has reports whether a provider with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[foldName(name)]
	return ok
}

// Provider returns the provider registered under name, ignoring case.
func (r *Registry) Provider(name string) (Provider, error) {
	p, ok := r.byName[foldName(name)]
	if !ok {
		return nil, errdefs.ProviderNotFound(name)
	}
	return p, nil
}

// Capability returns the capability of p named exactly name.
func (r *Registry) Capability(p Provider, name string) (Capability, error) {
	if !slices.Contains(p.Capabilities(), name) {
		return nil, errdefs.CapabilityNotFound(p.Name(), name)
	}
	return func(ctx context.Context) (string, error) {
		return p.Invoke(ctx, name)
	}, nil
}

// Providers returns the registered providers in registration order.
func (r *Registry) Providers() []Provider {
	out := make([]Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	return len(r.providers)
}

// foldName case-folds a provider name for lookup.
// A Caser is stateful, so a fresh one is used per call.
func foldName(name string) string {
	return cases.Fold().String(name)
}
