package database

import (
	"database/sql"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/divergence-profiler/internal/pipeline"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	db, err := NewDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStore(db)
}

func testResult() pipeline.Result {
	ruler := strings.Repeat("=", 80)
	dump := ruler + "\nREPOSITORY: sample\n" + ruler + "\nFILE: app.py\nimport flask\n2024-01-05T10:00:00\n"
	return pipeline.Run(dump)
}

func TestSaveAndGetRun(t *testing.T) {
	store := testStore(t)
	result := testResult()

	id, err := store.SaveRun("abc123", result)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	run, err := store.GetRun(id)
	require.NoError(t, err)

	assert.Equal(t, id, run.ID)
	assert.Equal(t, "abc123", run.DumpHash)
	assert.Equal(t, 1, run.Repositories)
	assert.Equal(t, 1, run.TotalCommits)
	assert.True(t, json.Valid([]byte(run.FilteredJSON)))
	assert.True(t, json.Valid([]byte(run.TranslatedJSON)))
	assert.True(t, json.Valid([]byte(run.PredictiveJSON)))
}

func TestGetRunMissing(t *testing.T) {
	store := testStore(t)

	_, err := store.GetRun("no-such-id")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestGetRunByDumpHash(t *testing.T) {
	store := testStore(t)
	result := testResult()

	first, err := store.SaveRun("hash-a", result)
	require.NoError(t, err)
	second, err := store.SaveRun("hash-a", result)
	require.NoError(t, err)
	_ = first

	run, err := store.GetRunByDumpHash("hash-a")
	require.NoError(t, err)
	// Most recent run wins.
	assert.Equal(t, second, run.ID)
}

func TestListRuns(t *testing.T) {
	store := testStore(t)
	result := testResult()

	for i := 0; i < 3; i++ {
		_, err := store.SaveRun("hash", result)
		require.NoError(t, err)
	}

	runs, err := store.ListRuns(2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestStoredArtifactRoundTrip(t *testing.T) {
	store := testStore(t)
	result := testResult()

	id, err := store.SaveRun("hash", result)
	require.NoError(t, err)

	run, err := store.GetRun(id)
	require.NoError(t, err)

	var decoded struct {
		TotalCommits int `json:"total_commits"`
	}
	require.NoError(t, json.Unmarshal([]byte(run.FilteredJSON), &decoded))
	assert.Equal(t, result.Filtered.TotalCommits, decoded.TotalCommits)
}
