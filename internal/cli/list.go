package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/fakery/internal/provider"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [provider]",
		Short: "List providers and their capabilities",
		Long: `List every provider published for the selected locale, or the
capabilities of a single provider.

Examples:
  fakery list
  fakery list PhoneNumber --locale en-GB`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd, args)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command, args []string) error {
	formatter := newFormatter(cmd, opts)

	_, f, err := setup(cmd, opts, formatter)
	if err != nil {
		return err
	}

	var descriptions []provider.Description
	if len(args) == 1 {
		d, err := provider.DescribeProvider(f.Registry(), args[0])
		if err != nil {
			return formatter.Fail("failed to describe provider", err)
		}
		descriptions = []provider.Description{d}
	} else {
		descriptions = provider.Describe(f.Registry())
	}

	if opts.Format == "json" {
		return formatter.Success(descriptions)
	}
	for _, d := range descriptions {
		fmt.Fprintf(formatter.Writer, "%s\n  %s\n", d.Provider, strings.Join(d.Capabilities, "\n  "))
	}
	return nil
}
