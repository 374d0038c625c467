// Package resolver expands dictionary template expressions into concrete
// strings.
//
// A template is plain text with embedded placeholders:
//
//	#{key}                 key of the current category
//	#{Provider.some_key}   capability someKey of the named provider
//
// EXPANSION:
//
// Resolve selects one raw value for category/key (see Selector), then runs
// fixpoint passes over the result. Each pass finds every non-overlapping
// placeholder left to right and builds a new string in which each match is
// replaced. Replacements are never re-scanned in the pass that produced
// them; if the new string still contains placeholders, another pass runs.
//
// Unqualified placeholders recurse into the current category. Qualified
// placeholders go through a Dispatcher (normally *provider.Registry): the
// provider name matches case-insensitively, the key body is translated from
// snake_case to camelCase and must name a capability exactly.
//
// TERMINATION:
//
// Two bounds guarantee that a cyclic dictionary fails instead of recursing
// forever:
//   - MaxPasses: fixpoint passes within one expansion (WithMaxPasses)
//   - MaxDepth: nested resolutions, unqualified or provider-qualified
//     (WithMaxDepth)
//
// The depth is carried in the context.Context, so a provider capability that
// calls back into a resolver with the context it was given stays inside the
// same budget. Both bounds fail with an errdefs CYCLIC_EXPRESSION error
// listing the active expansion chain.
//
// NUMERALS:
//
// '#' characters left in a final string are digit wildcards. Resolve never
// touches them; ResolveWithNumerals replaces each with a random digit.
package resolver
