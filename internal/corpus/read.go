package corpus

import (
	"context"
	"fmt"

	"github.com/roach88/maxdiff/internal/harness"
)

// Entry is a stored mismatch.
type Entry struct {
	Seq      int64             `json:"seq"`
	RunID    string            `json:"run_id"`
	Case     string            `json:"case,omitempty"`
	Input    harness.InputPair `json:"input"`
	Actual   int32             `json:"actual"`
	Expected int32             `json:"expected"`
}

// Mismatches returns every stored mismatch in the order it was first found.
// Returns an empty slice (not nil) for an empty corpus.
func (s *Store) Mismatches(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, run_id, case_name, a, b, actual, expected
		FROM mismatches
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query mismatches: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Seq, &e.RunID, &e.Case, &e.Input.A, &e.Input.B, &e.Actual, &e.Expected); err != nil {
			return nil, fmt.Errorf("scan mismatch: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mismatches: %w", err)
	}
	return entries, nil
}

// Inputs returns the stored input pairs in the order they were first found,
// ready for harness.Domain.WithPairs.
func (s *Store) Inputs(ctx context.Context) ([]harness.InputPair, error) {
	entries, err := s.Mismatches(ctx)
	if err != nil {
		return nil, err
	}
	pairs := make([]harness.InputPair, len(entries))
	for i, e := range entries {
		pairs[i] = e.Input
	}
	return pairs, nil
}

// Runs returns every recorded run in insertion order.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, seed, trials
		FROM runs
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Kind, &r.Seed, &r.Trials); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
