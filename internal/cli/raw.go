package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewRawCommand creates the raw command.
func NewRawCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raw <category>",
		Short: "Print a merged category without resolving it",
		Long: `Print a category exactly as stored after the locale merge: placeholders
and digit wildcards are left untouched.

Text output is YAML; --format json prints the same mapping as JSON.

Example:
  fakery raw address --locale en-GB`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRaw(rootOpts, cmd, args[0])
		},
	}

	return cmd
}

func runRaw(opts *RootOptions, cmd *cobra.Command, name string) error {
	formatter := newFormatter(cmd, opts)

	_, f, err := setup(cmd, opts, formatter)
	if err != nil {
		return err
	}

	c, err := f.RawCategory(name)
	if err != nil {
		return formatter.Fail("failed to read category", err)
	}

	if opts.Format == "json" {
		return formatter.Success(c)
	}

	enc := yaml.NewEncoder(formatter.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return WrapExitError(ExitFailure, "failed to encode category", err)
	}
	return enc.Close()
}
