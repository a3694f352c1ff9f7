package reconcile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_MarkThenCheck(t *testing.T) {
	e := newEnv(
		[][]string{hitRow("Spice of Life", "Contacted")},
		[][]string{remarkRow("sub-1", "Spice of Life", "Contacted", "x", "ft")},
	)
	ctx := context.Background()
	sub := e.submission("sub-1")

	done, err := e.tracker.IsProcessed(ctx, sub)
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, e.tracker.MarkProcessed(ctx, sub))

	done, err = e.tracker.IsProcessed(ctx, sub)
	require.NoError(t, err)
	assert.True(t, done)

	// Timestamp invariant: processed_at set with the flag.
	assert.Equal(t, "Yes", e.mem.Cell(remarks, 2, 7))
	assert.Equal(t, "2025-11-20T09:00:00Z", e.mem.Cell(remarks, 2, 8))
}

func TestTracker_DoubleMarkIsNoop(t *testing.T) {
	e := newEnv(
		[][]string{hitRow("Spice of Life", "Contacted")},
		[][]string{remarkRow("sub-1", "Spice of Life", "Contacted", "x", "ft")},
	)
	ctx := context.Background()
	sub := e.submission("sub-1")

	require.NoError(t, e.tracker.MarkProcessed(ctx, sub))
	first := e.mem.Cell(remarks, 2, 8)

	require.NoError(t, e.tracker.MarkProcessed(ctx, sub), "second mark is a reported no-op")
	assert.Equal(t, first, e.mem.Cell(remarks, 2, 8), "timestamp untouched")
}

func TestTracker_SeesFlagFromInterruptedRun(t *testing.T) {
	e := newEnv(
		[][]string{hitRow("Spice of Life", "Contacted")},
		[][]string{remarkRow("sub-1", "Spice of Life", "Contacted", "x", "ft")},
	)
	ctx := context.Background()
	sub := e.submission("sub-1") // stale snapshot: unprocessed

	// Another run marks it behind our back.
	require.NoError(t, e.mem.UpdateCell(ctx, remarks, 2, 7, "Yes"))

	done, err := e.tracker.IsProcessed(ctx, sub)
	require.NoError(t, err)
	assert.True(t, done, "fresh read, not the stale snapshot")
}
