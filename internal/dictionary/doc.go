// Package dictionary holds the locale-scoped data that fake values are
// generated from.
//
// A Dictionary is an ordered mapping from category name to Category, and a
// Category is an ordered mapping from key to RawValue. Dictionaries are built
// once from a default locale plus an optional override locale and are never
// mutated afterwards, so they can be shared between goroutines freely.
//
// MERGE RULE:
//
// Fragments are applied in order. Category sets are unioned; inside a
// category present in more than one fragment the key sets are unioned and a
// later fragment's value replaces an earlier one for the same key. Default
// fragments are applied first, override fragments last, so the override
// locale wins on every key collision while categories it does not mention
// keep their default content.
//
// ORDERING:
//
// Categories and keys keep first-appearance order. A key that is replaced by
// a later fragment keeps its original position. Introspection and golden
// tests rely on this.
//
// SOURCES:
//
// A Source turns a locale identifier into fragments. Two file-backed sources
// share one layout: a directory named after the locale holding any number of
// files, and/or a single file named after the locale. Each file has one root
// entry (the locale) with a "faker" mapping underneath:
//
//	en:
//	  faker:
//	    address:
//	      city: ["#{city_prefix} #{Name.first_name}#{city_suffix}"]
//
// NewYAMLSource reads .yml/.yaml files, NewCUESource reads .cue files with
// the same shape. Builtin returns the embedded YAML data.
package dictionary
