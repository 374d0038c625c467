package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/fakery/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	Config string // explicit config file
	Locale string
	Seed   string // parsed as uint64 so "--seed 0" differs from no seed
	Dict   string // dictionary directory

	// RunIDs generates IDs for recorded runs. Tests replace it.
	RunIDs store.RunIDGenerator

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the fakery CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{RunIDs: store.UUIDv7Generator{}})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fakery",
		Short: "fakery - synthetic data from locale dictionaries",
		Long: `Generate fake names, addresses, phone numbers and other data from
locale dictionaries whose values reference each other with #{...} placeholders.`,
		// main prints errors that no command reported itself.
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			slog.SetDefault(opts.Logger(cmd))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "config file (default ./fakery.toml when present)")
	cmd.PersistentFlags().StringVarP(&opts.Locale, "locale", "l", "", "override locale merged on top of the default locale")
	cmd.PersistentFlags().StringVar(&opts.Seed, "seed", "", "seed for reproducible output")
	cmd.PersistentFlags().StringVar(&opts.Dict, "dict", "", "directory of YAML or CUE dictionary files")

	// Add subcommands
	cmd.AddCommand(NewResolveCommand(opts))
	cmd.AddCommand(NewFormatCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewRawCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// Logger returns the command logger, writing text records to the command's
// error stream. Debug records are enabled by --verbose.
func (o *RootOptions) Logger(cmd *cobra.Command) *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
	return o.logger
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
