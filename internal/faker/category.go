package faker

import (
	"context"

	"github.com/roach88/fakery/internal/dictionary"
	"github.com/roach88/fakery/internal/errdefs"
	"github.com/roach88/fakery/internal/provider"
	"github.com/roach88/fakery/internal/resolver"
)

// categoryProvider exposes one dictionary category as a provider.
//
// Category phone_number becomes provider PhoneNumber; key area_code becomes
// capability areaCode. Invoking a capability resolves the key with numerals.
type categoryProvider struct {
	name     string
	category string
	caps     []string          // Declaration order
	keys     map[string]string // Capability name to dictionary key
	res      *resolver.Resolver
}

func newCategoryProvider(c *dictionary.Category, res *resolver.Resolver) *categoryProvider {
	p := &categoryProvider{
		name:     provider.ProviderName(c.Name()),
		category: c.Name(),
		keys:     make(map[string]string, c.Len()),
		res:      res,
	}
	for _, key := range c.Keys() {
		name := provider.CapabilityName(key)
		if _, taken := p.keys[name]; taken {
			continue // First spelling wins
		}
		p.keys[name] = key
		p.caps = append(p.caps, name)
	}
	return p
}

func (p *categoryProvider) Name() string {
	return p.name
}

func (p *categoryProvider) Capabilities() []string {
	out := make([]string, len(p.caps))
	copy(out, p.caps)
	return out
}

func (p *categoryProvider) Invoke(ctx context.Context, capability string) (string, error) {
	key, ok := p.keys[capability]
	if !ok {
		return "", errdefs.CapabilityNotFound(p.name, capability)
	}
	return p.res.ResolveWithNumerals(ctx, p.category, key)
}
