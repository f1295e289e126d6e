package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/maxdiff/internal/examplemax"
	"github.com/roach88/maxdiff/internal/harness"
)

// createTestStore creates a file-backed store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func failingReport(failures ...*harness.ResultMismatch) *harness.Report {
	r := &harness.Report{Kind: harness.KindProperty, Pass: true, Seed: 11}
	for _, m := range failures {
		r.AddFailure(m)
	}
	return r
}

func sentinelMismatch(trial int, b int32) *harness.ResultMismatch {
	return &harness.ResultMismatch{
		Trial:    trial,
		Input:    harness.InputPair{A: examplemax.Sentinel, B: b},
		Actual:   1,
		Expected: max(examplemax.Sentinel, b),
	}
}

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")
	for i := 0; i < 3; i++ {
		s, err := Open(path)
		require.NoError(t, err, "iteration %d", i)
		require.NoError(t, s.Close())
	}

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	for _, table := range []string{"runs", "mismatches"} {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		assert.NoError(t, err, "table %q", table)
	}

	var version int
	require.NoError(t, s.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestOpen_InMemory(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	entries, err := s.Mismatches(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestOpen_RejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.db.Exec("PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestClose_NilDB(t *testing.T) {
	assert.NoError(t, (&Store{}).Close())
}

func TestRecord_PassingReportIsSkipped(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run, added, err := s.Record(ctx, failingReport(), 100)
	require.NoError(t, err)
	assert.Nil(t, run)
	assert.Equal(t, 0, added)

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRecord_StoresRunAndMismatches(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	report := failingReport(sentinelMismatch(3, 0), sentinelMismatch(9, 5))
	run, added, err := s.Record(ctx, report, 250)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, 2, added)

	parsed, err := uuid.Parse(run.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Run{{ID: run.ID, Kind: harness.KindProperty, Seed: 11, Trials: 250}}, runs)

	entries, err := s.Mismatches(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, run.ID, entries[0].RunID)
	assert.Equal(t, harness.InputPair{A: examplemax.Sentinel, B: 0}, entries[0].Input)
	assert.Equal(t, int32(1), entries[0].Actual)
	assert.Equal(t, examplemax.Sentinel, entries[0].Expected)
	assert.Less(t, entries[0].Seq, entries[1].Seq)
}

func TestRecord_DeduplicatesPairsAcrossRuns(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	ids := []string{"run-1", "run-2"}
	s.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	_, added, err := s.Record(ctx, failingReport(sentinelMismatch(1, 0)), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	_, added, err = s.Record(ctx, failingReport(sentinelMismatch(4, 0), sentinelMismatch(5, 7)), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	entries, err := s.Mismatches(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "run-1", entries[0].RunID)
	assert.Equal(t, "run-2", entries[1].RunID)
}

func TestRecord_KeepsFixedCaseName(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	report := &harness.Report{Kind: harness.KindFixed, Pass: true}
	report.AddFailure(&harness.ResultMismatch{
		Case:     "sentinel",
		Input:    harness.InputPair{A: examplemax.Sentinel, B: 5},
		Actual:   1,
		Expected: examplemax.Sentinel,
	})

	_, _, err := s.Record(ctx, report, 1)
	require.NoError(t, err)

	entries, err := s.Mismatches(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sentinel", entries[0].Case)
}

func TestInputs_ReplayCatchesRecordedBug(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, _, err := s.Record(ctx, failingReport(sentinelMismatch(1, 42)), 1)
	require.NoError(t, err)

	pairs, err := s.Inputs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []harness.InputPair{{A: examplemax.Sentinel, B: 42}}, pairs)

	// A domain built only from the corpus reproduces the failure.
	report, err := harness.New(examplemax.Compute).RunPropertyCheck(ctx, harness.Domain{}.WithPairs(pairs...))
	require.NoError(t, err)
	require.False(t, report.Pass)
	assert.Equal(t, 1, report.Failures[0].Trial)
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	_, _, err = s.Record(ctx, failingReport(sentinelMismatch(1, 3)), 1)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	pairs, err := s.Inputs(ctx)
	require.NoError(t, err)
	assert.Len(t, pairs, 1)
}
