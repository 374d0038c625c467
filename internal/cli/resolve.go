package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ResolveOptions holds flags for the resolve command.
type ResolveOptions struct {
	*RootOptions
	Numerals bool
	Count    int
}

// ResolveResult is the JSON payload of the resolve command.
type ResolveResult struct {
	Category string   `json:"category"`
	Key      string   `json:"key"`
	Values   []string `json:"values"`
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "resolve <category> <key>",
		Short: "Resolve a dictionary key",
		Long: `Pick a value for category.key and expand every placeholder it contains.

Digit wildcards (#) are kept unless --numerals is given.

Example:
  fakery resolve address street_address --numerals
  fakery resolve name first_name --count 5 --seed 42`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(opts, cmd, args[0], args[1])
		},
	}

	cmd.Flags().BoolVarP(&opts.Numerals, "numerals", "n", false, "replace # with random digits")
	cmd.Flags().IntVar(&opts.Count, "count", 1, "number of values to generate")

	return cmd
}

func runResolve(opts *ResolveOptions, cmd *cobra.Command, category, key string) error {
	formatter := newFormatter(cmd, opts.RootOptions)
	if err := checkCount(formatter, opts.Count); err != nil {
		return err
	}

	_, f, err := setup(cmd, opts.RootOptions, formatter)
	if err != nil {
		return err
	}

	resolve := f.Resolve
	if opts.Numerals {
		resolve = f.ResolveWithNumerals
	}

	ctx := cmd.Context()
	values := make([]string, 0, opts.Count)
	for range opts.Count {
		v, err := resolve(ctx, category, key)
		if err != nil {
			return formatter.Fail(fmt.Sprintf("failed to resolve %s.%s", category, key), err)
		}
		values = append(values, v)
	}

	if opts.Format == "json" {
		return formatter.Success(ResolveResult{Category: category, Key: key, Values: values})
	}
	printLines(formatter, values)
	return nil
}

// printLines writes one value per line.
func printLines(formatter *OutputFormatter, values []string) {
	for _, v := range values {
		fmt.Fprintln(formatter.Writer, v)
	}
}
