package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/fakery/internal/store"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Count    int
	Database string // records the run when set; overrides the db setting
}

// GenerateResult is the JSON payload of the generate command.
type GenerateResult struct {
	Locale  string         `json:"locale"`
	Seed    *uint64        `json:"seed,omitempty"`
	Samples []store.Sample `json:"samples"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <Provider.capability>...",
		Short: "Invoke provider capabilities",
		Long: `Invoke one or more provider capabilities. Every dictionary category is a
provider: category phone_number is PhoneNumber and key cell_phone is cellPhone
(snake_case is accepted too).

With --db, or the db setting, the run is recorded in a SQLite database and can
be inspected later with 'fakery history'.

Examples:
  fakery generate Name.firstName Address.city
  fakery generate PhoneNumber.cell_phone --count 10 --seed 7
  fakery generate Company.name --db ./fakery.db`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd, args)
		},
	}

	cmd.Flags().IntVar(&opts.Count, "count", 1, "number of values per capability")
	cmd.Flags().StringVar(&opts.Database, "db", "", "SQLite database recording the run")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command, refs []string) error {
	formatter := newFormatter(cmd, opts.RootOptions)
	if err := checkCount(formatter, opts.Count); err != nil {
		return err
	}
	for _, ref := range refs {
		if !validReference(ref) {
			msg := fmt.Sprintf("invalid capability reference %q: want Provider.capability", ref)
			_ = formatter.Error(ErrCodeInvalidArgument, msg, nil)
			return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeInvalidArgument, msg))
		}
	}

	cfg, f, err := setup(cmd, opts.RootOptions, formatter)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result := GenerateResult{
		Locale:  f.Locale(),
		Seed:    cfg.Seed,
		Samples: make([]store.Sample, 0, len(refs)*opts.Count),
	}
	for _, ref := range refs {
		for range opts.Count {
			v, err := f.Generate(ctx, ref)
			if err != nil {
				return formatter.Fail(fmt.Sprintf("failed to generate %s", ref), err)
			}
			result.Samples = append(result.Samples, store.Sample{
				Index:      len(result.Samples),
				Expression: ref,
				Value:      v,
			})
		}
	}

	dbPath := opts.Database
	if dbPath == "" {
		dbPath = cfg.DB
	}

	var runID string
	if dbPath != "" {
		runID, err = recordRun(cmd, opts, dbPath, store.Run{
			Locale:  result.Locale,
			Seed:    result.Seed,
			Command: "generate " + strings.Join(refs, " "),
			Samples: result.Samples,
		})
		if err != nil {
			_ = formatter.Error(ErrCodeWriteFailed, err.Error(), map[string]string{"db": dbPath})
			return WrapExitError(ExitCommandError, fmt.Sprintf("%s: failed to record run", ErrCodeWriteFailed), err)
		}
		for i := range result.Samples {
			result.Samples[i].RunID = runID
		}
		formatter.VerboseLog("Recorded run %s in %s", runID, dbPath)
	}

	if opts.Format == "json" {
		return formatter.SuccessWithRun(result, runID)
	}
	for _, s := range result.Samples {
		if len(refs) > 1 {
			fmt.Fprintf(formatter.Writer, "%s: %s\n", s.Expression, s.Value)
		} else {
			fmt.Fprintln(formatter.Writer, s.Value)
		}
	}
	return nil
}

// recordRun writes run to the database at path and returns its new ID.
func recordRun(cmd *cobra.Command, opts *GenerateOptions, path string, run store.Run) (string, error) {
	st, err := store.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open database: %w", err)
	}
	defer st.Close()

	var ids store.RunIDGenerator = store.UUIDv7Generator{}
	if opts.RunIDs != nil {
		ids = opts.RunIDs
	}
	run.ID = ids.Generate()
	if err := st.WriteRun(cmd.Context(), run); err != nil {
		return "", err
	}
	opts.Logger(cmd).Info("run recorded", "run_id", run.ID, "samples", len(run.Samples))
	return run.ID, nil
}

// validReference reports whether ref has the Provider.capability form.
func validReference(ref string) bool {
	p, c, ok := strings.Cut(ref, ".")
	return ok && p != "" && c != ""
}
