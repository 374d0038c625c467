package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/fakery/internal/config"
	"github.com/roach88/fakery/internal/dictionary"
	"github.com/roach88/fakery/internal/errdefs"
	"github.com/roach88/fakery/internal/faker"
)

// loadConfig merges the config file, the environment and the global flags.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	var seed *uint64
	if s := strings.TrimSpace(opts.Seed); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, errdefs.Configuration(err, "invalid --seed %q", opts.Seed)
		}
		seed = &v
	}

	return config.Load(opts.Config, func(c *config.Config) {
		if opts.Locale != "" {
			c.Locale = opts.Locale
		}
		if seed != nil {
			c.Seed = seed
		}
		if opts.Dict != "" {
			c.DictionaryDir = opts.Dict
		}
	})
}

// DictionarySource returns the dictionary source for dir: the embedded
// dictionary when dir is empty, CUE when dir holds any .cue file, YAML
// otherwise.
func DictionarySource(dir string) (dictionary.Source, error) {
	if dir == "" {
		return dictionary.Builtin(), nil
	}

	cueFiles, err := FindCUEFiles(dir)
	if err != nil {
		return nil, errdefs.Configuration(err, "scanning dictionary directory %s", dir)
	}
	if len(cueFiles) > 0 {
		return dictionary.NewCUESource(os.DirFS(dir)), nil
	}
	return dictionary.NewYAMLSource(os.DirFS(dir)), nil
}

// FindCUEFiles recursively finds all .cue files in a directory.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// newFaker builds a Faker from cfg.
func newFaker(cmd *cobra.Command, opts *RootOptions, cfg *config.Config) (*faker.Faker, error) {
	src, err := DictionarySource(cfg.DictionaryDir)
	if err != nil {
		return nil, err
	}

	fopts := []faker.Option{
		faker.WithSource(src),
		faker.WithDefaultLocale(cfg.DefaultLocale),
		faker.WithLocale(cfg.Locale),
		faker.WithMaxDepth(cfg.MaxDepth),
		faker.WithMaxPasses(cfg.MaxPasses),
		faker.WithLogger(opts.Logger(cmd)),
	}
	if cfg.Seed != nil {
		fopts = append(fopts, faker.WithSeed(*cfg.Seed))
	}
	return faker.New(fopts...)
}

// setup loads the configuration and builds a Faker, reporting failures
// through formatter.
func setup(cmd *cobra.Command, opts *RootOptions, formatter *OutputFormatter) (*config.Config, *faker.Faker, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, formatter.Fail("failed to load configuration", err)
	}
	f, err := newFaker(cmd, opts, cfg)
	if err != nil {
		return nil, nil, formatter.Fail("failed to load dictionary", err)
	}
	formatter.VerboseLog("Loaded %d categories for locale %s", f.Dictionary().Len(), cfg.EffectiveLocale())
	return cfg, f, nil
}

// newFormatter builds the formatter for cmd's output streams.
func newFormatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// checkCount validates a --count flag.
func checkCount(formatter *OutputFormatter, count int) error {
	if count < 1 {
		msg := fmt.Sprintf("--count must be positive, got %d", count)
		_ = formatter.Error(ErrCodeInvalidArgument, msg, nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeInvalidArgument, msg))
	}
	return nil
}
