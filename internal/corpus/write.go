package corpus

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/maxdiff/internal/harness"
)

// Run describes one recorded harness run.
type Run struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Seed   int64  `json:"seed"`
	Trials int    `json:"trials"`
}

// Record stores a report's failures under a new run and returns the run and
// the number of failing pairs that were not already in the corpus.
//
// Passing reports are not recorded. Everything is written in one transaction.
func (s *Store) Record(ctx context.Context, report *harness.Report, trials int) (*Run, int, error) {
	if report.Pass {
		return nil, 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("record run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	run := &Run{
		ID:     s.newID(),
		Kind:   report.Kind,
		Seed:   report.Seed,
		Trials: trials,
	}
	if err := insertRun(ctx, tx, run); err != nil {
		return nil, 0, err
	}

	added := 0
	for _, m := range report.Failures {
		inserted, err := insertMismatch(ctx, tx, run.ID, m)
		if err != nil {
			return nil, 0, err
		}
		if inserted {
			added++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("record run: commit: %w", err)
	}
	return run, added, nil
}

func insertRun(ctx context.Context, tx *sql.Tx, run *Run) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, kind, seed, trials)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.Kind, run.Seed, run.Trials)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

// insertMismatch uses ON CONFLICT(a, b) DO NOTHING; a pair is kept with the
// run that first found it.
func insertMismatch(ctx context.Context, tx *sql.Tx, runID string, m *harness.ResultMismatch) (bool, error) {
	result, err := tx.ExecContext(ctx, `
		INSERT INTO mismatches (run_id, case_name, a, b, actual, expected)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(a, b) DO NOTHING
	`, runID, m.Case, m.Input.A, m.Input.B, m.Actual, m.Expected)
	if err != nil {
		return false, fmt.Errorf("write mismatch %s: %w", m.Input, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("write mismatch %s: rows affected: %w", m.Input, err)
	}
	return n > 0, nil
}
