// Package config loads fakery settings.
//
// Sources, lowest precedence first:
//  1. built-in defaults
//  2. a TOML file: the explicit path, or fakery.toml in the working directory
//  3. FAKERY_* environment variables, with .env support
//  4. overrides supplied by the caller (command-line flags)
//
// The merged result is validated once, after every source was applied.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/roach88/fakery/internal/dictionary"
	"github.com/roach88/fakery/internal/errdefs"
	"github.com/roach88/fakery/internal/resolver"
)

// DefaultFile is read when no explicit config path is given and it exists.
const DefaultFile = "fakery.toml"

// Environment variables.
const (
	EnvLocale        = "FAKERY_LOCALE"
	EnvDefaultLocale = "FAKERY_DEFAULT_LOCALE"
	EnvSeed          = "FAKERY_SEED"
	EnvDictionaryDir = "FAKERY_DICTIONARY_DIR"
	EnvMaxDepth      = "FAKERY_MAX_DEPTH"
	EnvMaxPasses     = "FAKERY_MAX_PASSES"
	EnvDB            = "FAKERY_DB"
)

// Config holds fakery settings.
type Config struct {
	// Locale is the override locale merged on top of DefaultLocale.
	Locale string `toml:"locale"`

	// DefaultLocale must exist in the dictionary source.
	DefaultLocale string `toml:"default_locale"`

	// Seed makes generation reproducible. Nil means a random seed.
	Seed *uint64 `toml:"seed"`

	// DictionaryDir is a directory of YAML or CUE locale files.
	// Empty means the embedded dictionary.
	DictionaryDir string `toml:"dictionary_dir"`

	MaxDepth  int `toml:"max_depth"`
	MaxPasses int `toml:"max_passes"`

	// DB is the SQLite database used to record generation runs.
	DB string `toml:"db"`
}

// Override adjusts a Config after the file and environment were applied.
type Override func(*Config)

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DefaultLocale: dictionary.DefaultLocale,
		MaxDepth:      resolver.DefaultMaxDepth,
		MaxPasses:     resolver.DefaultMaxPasses,
	}
}

// Load builds the configuration from every source and validates it.
// path may be empty; an explicit path must exist.
func Load(path string, overrides ...Override) (*Config, error) {
	// .env is optional when variables come from the environment.
	_ = godotenv.Load()

	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, errdefs.Configuration(err, "loading configuration")
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, errdefs.Configuration(err, "loading configuration")
	}
	for _, o := range overrides {
		o(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, errdefs.Configuration(err, "invalid configuration")
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("%s:%d:%d: %s", path, row, col, derr.Error())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return fmt.Errorf("%s: unknown settings:\n%s", path, serr.String())
		}
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	if v, ok := lookup(EnvLocale); ok {
		c.Locale = v
	}
	if v, ok := lookup(EnvDefaultLocale); ok {
		c.DefaultLocale = v
	}
	if v, ok := lookup(EnvDictionaryDir); ok {
		c.DictionaryDir = v
	}
	if v, ok := lookup(EnvDB); ok {
		c.DB = v
	}

	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s must be an unsigned integer (%q): %w", EnvSeed, v, err)
		}
		c.Seed = &seed
	}

	for _, limit := range []struct {
		env string
		dst *int
	}{
		{EnvMaxDepth, &c.MaxDepth},
		{EnvMaxPasses, &c.MaxPasses},
	} {
		v, ok := lookup(limit.env)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer (%q): %w", limit.env, v, err)
		}
		*limit.dst = n
	}
	return nil
}

// lookup returns a non-blank environment variable.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// validate checks the merged settings and canonicalizes locales.
func (c *Config) validate() error {
	if strings.TrimSpace(c.DefaultLocale) == "" {
		return fmt.Errorf("default locale is required")
	}
	def, err := dictionary.CanonicalLocale(c.DefaultLocale)
	if err != nil {
		return fmt.Errorf("invalid default locale %q: %w", c.DefaultLocale, err)
	}
	c.DefaultLocale = def

	if strings.TrimSpace(c.Locale) != "" {
		loc, err := dictionary.CanonicalLocale(c.Locale)
		if err != nil {
			return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
		}
		c.Locale = loc
	}

	if c.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	if c.MaxPasses < 1 {
		return fmt.Errorf("max_passes must be positive, got %d", c.MaxPasses)
	}

	if c.DictionaryDir != "" {
		info, err := os.Stat(c.DictionaryDir)
		if err != nil {
			return fmt.Errorf("dictionary_dir %q: %w", c.DictionaryDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("dictionary_dir %q is not a directory", c.DictionaryDir)
		}
	}
	return nil
}

// EffectiveLocale returns Locale, or DefaultLocale when no override is set.
func (c *Config) EffectiveLocale() string {
	if c.Locale != "" {
		return c.Locale
	}
	return c.DefaultLocale
}
