package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	conn, err := Open(filepath.Join(t.TempDir(), ".history", "imports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewStore(conn)
}

func TestRecordAndListRuns(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.RecordRun(Run{
		Source: "ledger", File: "ledger.csv",
		Rows: 10, Imported: 8, Skipped: 2,
		NetTotal: "123.45", JournalFile: "journals/whatnot_ledger.journal",
	}))
	require.NoError(t, store.RecordRun(Run{
		Source: "earnings", File: "w1_earnings.csv",
		Rows: 5, Imported: 5,
		NetTotal: "80.00", JournalFile: "journals/whatnot_earnings.journal",
	}))

	runs, err := store.RunsBySource("ledger")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "ledger.csv", runs[0].File)
	assert.Equal(t, 8, runs[0].Imported)
	assert.Equal(t, 2, runs[0].Skipped)
	assert.Equal(t, "123.45", runs[0].NetTotal)
	assert.False(t, runs[0].ImportedAt.IsZero())

	runs, err = store.RunsBySource("purchases")
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestGetStats(t *testing.T) {
	store := testStore(t)

	stats, err := store.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalRuns)
	assert.False(t, stats.LastImport.Valid)

	require.NoError(t, store.RecordRun(Run{Source: "ledger", File: "a.csv", Rows: 3, Imported: 2, Skipped: 1, NetTotal: "0", JournalFile: "a.journal"}))
	require.NoError(t, store.RecordRun(Run{Source: "ledger", File: "b.csv", Rows: 4, Imported: 4, NetTotal: "0", JournalFile: "b.journal"}))

	stats, err = store.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRuns)
	assert.Equal(t, 6, stats.TotalImported)
	assert.Equal(t, 1, stats.TotalSkipped)
	assert.True(t, stats.LastImport.Valid)
}

func TestMetadata(t *testing.T) {
	store := testStore(t)

	value, err := store.GetMetadata("last_file")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, store.SetMetadata("last_file", "ledger.csv"))
	value, err = store.GetMetadata("last_file")
	require.NoError(t, err)
	assert.Equal(t, "ledger.csv", value)

	// Upsert replaces the value.
	require.NoError(t, store.SetMetadata("last_file", "other.csv"))
	value, err = store.GetMetadata("last_file")
	require.NoError(t, err)
	assert.Equal(t, "other.csv", value)
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "imports.db")
	conn, err := Open(path)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, path, conn.Path())
}
