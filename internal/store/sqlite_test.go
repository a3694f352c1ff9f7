package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/remarks-cli/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestSQLite_CreateAndGetRun(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, "batch")
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunStatusRunning, run.Status)

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "batch", got.Kind)
	assert.Equal(t, model.RunStatusRunning, got.Status)
	assert.Nil(t, got.Summary)
	assert.Nil(t, got.FinishedAt)
}

func TestSQLite_CompleteRun(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, "batch")
	require.NoError(t, err)

	summary := &model.RunSummary{
		Scanned:   5,
		Processed: 3,
		Skipped:   1,
		Failed:    1,
		Failures: []model.RunFailure{
			{SubmissionID: "sub-4", Shop: "Unknown Shop", Error: "row not found"},
		},
	}
	require.NoError(t, st.CompleteRun(ctx, run.ID, summary))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, got.Status)
	require.NotNil(t, got.Summary)
	assert.Equal(t, 3, got.Summary.Processed)
	require.Len(t, got.Summary.Failures, 1)
	assert.Equal(t, "sub-4", got.Summary.Failures[0].SubmissionID)
	assert.NotNil(t, got.FinishedAt)
}

func TestSQLite_FailRun(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, "process")
	require.NoError(t, err)
	require.NoError(t, st.FailRun(ctx, run.ID, "missing required column"))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusFailed, got.Status)
	assert.Equal(t, "missing required column", got.Error)
	assert.NotNil(t, got.FinishedAt)
}

func TestSQLite_CompleteRun_Missing(t *testing.T) {
	st := newTestSQLiteStore(t)

	err := st.CompleteRun(context.Background(), "nope", &model.RunSummary{})
	assert.Error(t, err)
}

func TestSQLite_ListRuns_Filters(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	batch, err := st.CreateRun(ctx, "batch")
	require.NoError(t, err)
	_, err = st.CreateRun(ctx, "process")
	require.NoError(t, err)
	require.NoError(t, st.CompleteRun(ctx, batch.ID, &model.RunSummary{Scanned: 1}))

	all, err := st.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	batches, err := st.ListRuns(ctx, RunFilter{Kind: "batch"})
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, batch.ID, batches[0].ID)

	running, err := st.ListRuns(ctx, RunFilter{Status: model.RunStatusRunning})
	require.NoError(t, err)
	require.Len(t, running, 1)
	assert.Equal(t, "process", running[0].Kind)

	limited, err := st.ListRuns(ctx, RunFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
