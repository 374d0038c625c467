package provider

import (
	"slices"
	"strings"
)

// Description lists one provider's capabilities.
type Description struct {
	Provider     string   `json:"provider"`
	Capabilities []string `json:"capabilities"`
}

// Describe lists every registered provider sorted by name, each with its
// capabilities sorted alphabetically.
func Describe(r *Registry) []Description {
	providers := r.Providers()
	slices.SortFunc(providers, func(a, b Provider) int {
		return strings.Compare(foldName(a.Name()), foldName(b.Name()))
	})

	out := make([]Description, 0, len(providers))
	for _, p := range providers {
		out = append(out, describe(p))
	}
	return out
}

// DescribeProvider describes the provider registered under name.
func DescribeProvider(r *Registry, name string) (Description, error) {
	p, err := r.Provider(name)
	if err != nil {
		return Description{}, err
	}
	return describe(p), nil
}

func describe(p Provider) Description {
	caps := slices.Clone(p.Capabilities())
	slices.Sort(caps)
	return Description{Provider: p.Name(), Capabilities: caps}
}
