package journal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	started := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	require.NoError(t, store.Record(ctx, Run{
		RunID:      "run-1",
		Started:    started,
		Duration:   250 * time.Millisecond,
		OutputPath: "PIANO_MIGLIORAMENTO_RAG.docx",
		Bytes:      20480,
		Status:     "success",
	}))
	require.NoError(t, store.Record(ctx, Run{
		RunID:      "run-2",
		Started:    started.Add(time.Hour),
		Duration:   300 * time.Millisecond,
		OutputPath: "PIANO_MIGLIORAMENTO_RAG.docx",
		Bytes:      20481,
		Status:     "success",
	}))

	runs, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, "run-2", runs[0].RunID)
	assert.Equal(t, "run-1", runs[1].RunID)
	assert.Equal(t, started.Unix(), runs[1].Started.Unix())
	assert.Equal(t, 250*time.Millisecond, runs[1].Duration)
	assert.Equal(t, int64(20480), runs[1].Bytes)
}

func TestListLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, Run{
			RunID:   "run",
			Started: time.Now(),
			Status:  "success",
		}))
	}

	runs, err := store.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestListEmpty(t *testing.T) {
	store := openTestStore(t)

	runs, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
