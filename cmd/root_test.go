package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/remarks-cli/internal/model"
	"github.com/sells-group/remarks-cli/internal/reconcile"
)

func TestLedgerSummary(t *testing.T) {
	s := &reconcile.Summary{
		Scanned:   4,
		Processed: 2,
		Skipped:   1,
		Failed:    1,
		DryRun:    true,
		Failures: []reconcile.Failure{
			{SubmissionID: "sub-3", ShopName: "Nowhere", Error: "boom"},
		},
	}

	got := ledgerSummary(s)
	assert.Equal(t, 4, got.Scanned)
	assert.Equal(t, 2, got.Processed)
	assert.True(t, got.DryRun)
	if assert.Len(t, got.Failures, 1) {
		assert.Equal(t, "sub-3", got.Failures[0].SubmissionID)
		assert.Equal(t, "Nowhere", got.Failures[0].Shop)
	}
}

func TestWorksheetSlug(t *testing.T) {
	assert.Equal(t, "hit-list", worksheetSlug("Hit List"))
	assert.Equal(t, "dapp-remarks", worksheetSlug(" DApp Remarks "))
}

func TestRotate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hit-list.csv")

	// Nothing to rotate.
	assert.NoError(t, rotate(path))

	assert.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
	assert.NoError(t, rotate(path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	data, err := os.ReadFile(path + ".bak")
	assert.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestColumnRef(t *testing.T) {
	assert.Equal(t, "A", columnRef(0))
	assert.Equal(t, "Z", columnRef(25))
	assert.Equal(t, "AA", columnRef(26))
}

func TestFormatRunsList(t *testing.T) {
	started := time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)
	runs := []model.Run{
		{
			ID:        "run-1",
			Kind:      "batch",
			Status:    model.RunStatusComplete,
			Summary:   &model.RunSummary{Processed: 3, Skipped: 1},
			StartedAt: started,
		},
		{ID: "run-2", Kind: "process", Status: model.RunStatusRunning, StartedAt: started},
	}

	var buf bytes.Buffer
	formatRunsList(&buf, runs)
	out := buf.String()

	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "batch")
	assert.Contains(t, out, "complete")
	assert.Contains(t, out, "2025-11-20 09:00:00")
	// Runs without a summary render dashes.
	assert.Contains(t, out, "run-2")
	assert.Contains(t, out, "-")
}
