package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/roach88/fakery/internal/errdefs"
)

// Run is one recorded generation.
type Run struct {
	ID      string   `json:"id"`
	Seq     int64    `json:"seq"`
	Locale  string   `json:"locale"`
	Seed    *uint64  `json:"seed,omitempty"`
	Command string   `json:"command"`
	Count   int      `json:"count"`
	Samples []Sample `json:"samples,omitempty"`
}

// Sample is one generated value.
type Sample struct {
	RunID      string `json:"run_id,omitempty"`
	Index      int    `json:"index"`
	Expression string `json:"expression"`
	Value      string `json:"value"`
}

// WriteRun inserts a run and its samples in one transaction.
// Seq is assigned by the store; run.Seq and run.Count are ignored.
//
// Uses ON CONFLICT(id) DO NOTHING for idempotency - a run whose ID already
// exists is left untouched, samples included.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	if run.ID == "" {
		return fmt.Errorf("write run: id is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, seq, locale, seed, command)
		SELECT ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?
		FROM runs
		WHERE true
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Locale,
		formatSeed(run.Seed),
		run.Command,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	if inserted == 0 {
		return tx.Commit()
	}

	for i, sample := range run.Samples {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO samples (run_id, idx, expression, value)
			VALUES (?, ?, ?, ?)
		`, run.ID, i, sample.Expression, sample.Value)
		if err != nil {
			return fmt.Errorf("write sample %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run: commit: %w", err)
	}
	return nil
}

// ReadRun returns a run with its samples ordered by index.
// Returns a not-found error if no run has the given ID.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT r.id, r.seq, r.locale, r.seed, r.command,
		       (SELECT COUNT(*) FROM samples WHERE run_id = r.id)
		FROM runs r
		WHERE r.id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, errdefs.RunNotFound(id)
	}
	if err != nil {
		return Run{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, idx, expression, value
		FROM samples
		WHERE run_id = ?
		ORDER BY idx ASC
	`, id)
	if err != nil {
		return Run{}, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	run.Samples, err = scanSamples(rows)
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

// ListRuns returns every run without samples, ordered by seq.
// Returns an empty slice (not nil) when the store is empty.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.seq, r.locale, r.seed, r.command,
		       (SELECT COUNT(*) FROM samples WHERE run_id = r.id)
		FROM runs r
		ORDER BY r.seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// FindSamples returns every sample generated for expression, oldest run
// first. Returns an empty slice (not nil) when there is none.
func (s *Store) FindSamples(ctx context.Context, expression string) ([]Sample, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.run_id, s.idx, s.expression, s.value
		FROM samples s
		JOIN runs r ON r.id = s.run_id
		WHERE s.expression = ?
		ORDER BY r.seq ASC, s.idx ASC
	`, expression)
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	return scanSamples(rows)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run  Run
		seed sql.NullString
	)
	if err := row.Scan(&run.ID, &run.Seq, &run.Locale, &seed, &run.Command, &run.Count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}

	if seed.Valid {
		v, err := strconv.ParseUint(seed.String, 10, 64)
		if err != nil {
			return Run{}, fmt.Errorf("scan run %s: invalid seed %q: %w", run.ID, seed.String, err)
		}
		run.Seed = &v
	}
	return run, nil
}

func scanSamples(rows *sql.Rows) ([]Sample, error) {
	samples := []Sample{}
	for rows.Next() {
		var sample Sample
		if err := rows.Scan(&sample.RunID, &sample.Index, &sample.Expression, &sample.Value); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate samples: %w", err)
	}
	return samples, nil
}

// formatSeed stores seeds as decimal text; SQLite integers are signed.
func formatSeed(seed *uint64) any {
	if seed == nil {
		return nil
	}
	return strconv.FormatUint(*seed, 10)
}
