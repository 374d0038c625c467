package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/fakery/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database   string
	Expression string // optional - list samples of one expression
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Inspect recorded generation runs",
		Long: `Inspect runs recorded by 'fakery generate --db'.

Without arguments every run is listed, oldest first. With a run ID the
run's samples are printed. With --expression every sample generated for
that capability is printed across all runs.

Examples:
  fakery history --db ./fakery.db
  fakery history --db ./fakery.db 0190a3c4-...
  fakery history --db ./fakery.db --expression Name.firstName`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd, args)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database")
	cmd.Flags().StringVarP(&opts.Expression, "expression", "e", "", "list samples for one Provider.capability")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command, args []string) error {
	formatter := newFormatter(cmd, opts.RootOptions)

	path := opts.Database
	if path == "" {
		cfg, err := loadConfig(opts.RootOptions)
		if err != nil {
			return formatter.Fail("failed to load configuration", err)
		}
		path = cfg.DB
	}
	if path == "" {
		msg := "no database: pass --db or set the db setting"
		_ = formatter.Error(ErrCodeInvalidArgument, msg, nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeInvalidArgument, msg))
	}
	if len(args) == 1 && opts.Expression != "" {
		msg := "a run ID and --expression cannot be combined"
		_ = formatter.Error(ErrCodeInvalidArgument, msg, nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeInvalidArgument, msg))
	}

	st, err := store.Open(path)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, fmt.Sprintf("failed to open database: %v", err), nil)
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	switch {
	case len(args) == 1:
		run, err := st.ReadRun(ctx, args[0])
		if err != nil {
			return formatter.Fail("failed to read run", err)
		}
		if opts.Format == "json" {
			return formatter.Success(run)
		}
		printRun(formatter, run)

	case opts.Expression != "":
		samples, err := st.FindSamples(ctx, opts.Expression)
		if err != nil {
			return formatter.Fail("failed to query samples", err)
		}
		if opts.Format == "json" {
			return formatter.Success(samples)
		}
		w := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
		for _, s := range samples {
			fmt.Fprintf(w, "%s\t%d\t%s\n", s.RunID, s.Index, s.Value)
		}
		return w.Flush()

	default:
		runs, err := st.ListRuns(ctx)
		if err != nil {
			return formatter.Fail("failed to list runs", err)
		}
		if opts.Format == "json" {
			return formatter.Success(runs)
		}
		w := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SEQ\tID\tLOCALE\tSEED\tSAMPLES\tCOMMAND")
		for _, r := range runs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", r.Seq, r.ID, r.Locale, seedText(r.Seed), r.Count, r.Command)
		}
		return w.Flush()
	}
	return nil
}

func printRun(formatter *OutputFormatter, run store.Run) {
	fmt.Fprintf(formatter.Writer, "Run %s (#%d)\n", run.ID, run.Seq)
	fmt.Fprintf(formatter.Writer, "  locale:  %s\n", run.Locale)
	fmt.Fprintf(formatter.Writer, "  seed:    %s\n", seedText(run.Seed))
	fmt.Fprintf(formatter.Writer, "  command: %s\n", run.Command)
	for _, s := range run.Samples {
		fmt.Fprintf(formatter.Writer, "  [%d] %s = %s\n", s.Index, s.Expression, s.Value)
	}
}

func seedText(seed *uint64) string {
	if seed == nil {
		return "-"
	}
	return strconv.FormatUint(*seed, 10)
}
