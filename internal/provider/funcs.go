package provider

import (
	"context"

	"github.com/roach88/fakery/internal/errdefs"
)

// Funcs is a Provider assembled from Go functions.
type Funcs struct {
	name  string
	order []string
	fns   map[string]Capability
}

// NewFuncs creates an empty function-backed provider.
func NewFuncs(name string) *Funcs {
	return &Funcs{
		name: name,
		fns:  make(map[string]Capability),
	}
}

// Add registers a capability. Adding an existing name replaces the function
// and keeps its position. Returns f for chaining.
func (f *Funcs) Add(capability string, fn Capability) *Funcs {
	if _, exists := f.fns[capability]; !exists {
		f.order = append(f.order, capability)
	}
	f.fns[capability] = fn
	return f
}

// AddString registers a capability that cannot fail.
func (f *Funcs) AddString(capability string, fn func() string) *Funcs {
	return f.Add(capability, func(context.Context) (string, error) {
		return fn(), nil
	})
}

// Name implements Provider.
func (f *Funcs) Name() string {
	return f.name
}

// Capabilities implements Provider.
func (f *Funcs) Capabilities() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Invoke implements Provider.
func (f *Funcs) Invoke(ctx context.Context, capability string) (string, error) {
	fn, ok := f.fns[capability]
	if !ok {
		return "", errdefs.CapabilityNotFound(f.name, capability)
	}
	return fn(ctx)
}
