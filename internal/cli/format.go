package cli

import (
	"github.com/spf13/cobra"
)

// FormatOptions holds flags for the format command.
type FormatOptions struct {
	*RootOptions
	Count int
}

// FormatResult is the JSON payload of the format command.
type FormatResult struct {
	Template string   `json:"template"`
	Values   []string `json:"values"`
}

// NewFormatCommand creates the format command.
func NewFormatCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FormatOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "format <template>",
		Short: "Expand a free-standing template",
		Long: `Expand every #{Provider.capability} placeholder in a template and
replace its digit wildcards.

Example:
  fakery format '#{Name.first_name} <#{Internet.email}>'
  fakery format 'Order ####-##' --count 3`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(opts, cmd, args[0])
		},
	}

	cmd.Flags().IntVar(&opts.Count, "count", 1, "number of values to generate")

	return cmd
}

func runFormat(opts *FormatOptions, cmd *cobra.Command, template string) error {
	formatter := newFormatter(cmd, opts.RootOptions)
	if err := checkCount(formatter, opts.Count); err != nil {
		return err
	}

	_, f, err := setup(cmd, opts.RootOptions, formatter)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	values := make([]string, 0, opts.Count)
	for range opts.Count {
		v, err := f.Format(ctx, template)
		if err != nil {
			return formatter.Fail("failed to format template", err)
		}
		values = append(values, v)
	}

	if opts.Format == "json" {
		return formatter.Success(FormatResult{Template: template, Values: values})
	}
	printLines(formatter, values)
	return nil
}
