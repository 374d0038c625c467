package dictionary

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/roach88/fakery/internal/errdefs"
)

// DefaultLocale is the locale whose data is always loaded first.
const DefaultLocale = "en"

// Fragment is the content of one dictionary file: the categories it
// declares, in order.
type Fragment struct {
	// Locale is the canonical locale the fragment was loaded for.
	Locale string

	// Origin names where the fragment came from (file name), for diagnostics.
	Origin string

	Categories []*Category
}

// Source yields dictionary fragments for a locale.
//
// Implementations return an error wrapping ErrLocaleNotFound when no data
// exists for the locale at all.
type Source interface {
	Fragments(locale string) ([]Fragment, error)
}

// ErrLocaleNotFound is wrapped by Source implementations when a locale has
// no data.
var ErrLocaleNotFound = errors.New("locale not found")

// Dictionary is the merged, immutable mapping from category name to Category.
type Dictionary struct {
	locale     string
	order      []string // First-appearance order
	categories map[string]*Category
}

// Build merges fragments into a Dictionary.
//
// defaults must contain at least one fragment. overrides may be empty; when
// present they are merged after the defaults with the same rule, so they win
// on key collisions. Input categories are copied, never aliased.
func Build(defaults []Fragment, overrides []Fragment) (*Dictionary, error) {
	if len(defaults) == 0 {
		return nil, errdefs.Configuration(nil, "default dictionary source is empty")
	}

	d := &Dictionary{
		locale:     defaults[0].Locale,
		categories: make(map[string]*Category),
	}
	for _, f := range defaults {
		d.merge(f)
	}
	for _, f := range overrides {
		d.merge(f)
		if f.Locale != "" {
			d.locale = f.Locale
		}
	}
	return d, nil
}

// merge applies one fragment. Only called while building.
func (d *Dictionary) merge(f Fragment) {
	for _, incoming := range f.Categories {
		existing, ok := d.categories[incoming.name]
		if !ok {
			d.order = append(d.order, incoming.name)
			d.categories[incoming.name] = incoming.clone()
			continue
		}
		for _, k := range incoming.keys {
			existing.set(k, incoming.values[k])
		}
	}
}

// Load reads the default locale and, when overrideLocale names a different
// locale, the override locale from src and merges them.
//
// Fails with a configuration error when the default locale has no data or
// when an explicitly requested override locale cannot be located.
func Load(src Source, defaultLocale, overrideLocale string) (*Dictionary, error) {
	if src == nil {
		return nil, errdefs.Configuration(nil, "dictionary source is required")
	}

	def, err := CanonicalLocale(defaultLocale)
	if err != nil {
		return nil, errdefs.Configuration(err, "invalid default locale %q", defaultLocale)
	}

	defaults, err := src.Fragments(def)
	if err != nil {
		return nil, errdefs.Configuration(err, "directory with default dictionary files not found for %q", def)
	}
	if len(defaults) == 0 {
		return nil, errdefs.Configuration(nil, "no default dictionary files found for %q", def)
	}

	var overrides []Fragment
	if strings.TrimSpace(overrideLocale) != "" {
		loc, err := CanonicalLocale(overrideLocale)
		if err != nil {
			return nil, errdefs.Configuration(err, "invalid locale %q", overrideLocale)
		}
		if loc != def {
			overrides, err = src.Fragments(loc)
			if err != nil {
				return nil, errdefs.Configuration(err, "dictionary file not found for locale value: %s", loc)
			}
		}
	}

	return Build(defaults, overrides)
}

// CanonicalLocale parses a locale identifier ("en", "en_GB", "de-AT") and
// returns its canonical BCP 47 form ("en", "en-GB", "de-AT").
func CanonicalLocale(locale string) (string, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return "", fmt.Errorf("empty locale")
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "", err
	}
	return tag.String(), nil
}

// Locale returns the locale the dictionary was built for: the override
// locale when one was merged, otherwise the default locale.
func (d *Dictionary) Locale() string {
	return d.locale
}

// Names returns category names in first-appearance order.
func (d *Dictionary) Names() []string {
	names := make([]string, len(d.order))
	copy(names, d.order)
	return names
}

// Categories returns the categories in first-appearance order.
func (d *Dictionary) Categories() []*Category {
	out := make([]*Category, len(d.order))
	for i, name := range d.order {
		out[i] = d.categories[name]
	}
	return out
}

// Len returns the number of categories.
func (d *Dictionary) Len() int {
	return len(d.order)
}
