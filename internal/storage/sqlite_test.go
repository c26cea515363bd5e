package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/torus-boards/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestSaveResultAssignsIDs(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveResult(Result{
		GameID:        "go",
		Mode:          "rollover",
		Winner:        core.White,
		Moves:         120,
		BlackCaptures: 3,
		WhiteCaptures: 7,
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	_, err = uuid.Parse(saved.MatchID)
	assert.NoError(t, err, "match id %q is not a UUID", saved.MatchID)

	got, err := store.ResultByMatchID(saved.MatchID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "go", got.GameID)
	assert.Equal(t, "rollover", got.Mode)
	assert.Equal(t, core.White, got.Winner)
	assert.Equal(t, 120, got.Moves)
	assert.Equal(t, 3, got.BlackCaptures)
	assert.Equal(t, 7, got.WhiteCaptures)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt not set")
}

func TestResultByMatchIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.ResultByMatchID("does-not-exist")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestDuplicateMatchIDRejected(t *testing.T) {
	store := openTestStore(t)

	r := Result{MatchID: "fixed", GameID: "chess", Mode: "classic", Winner: core.Black}
	_, err := store.SaveResult(r)
	require.NoError(t, err)

	_, err = store.SaveResult(r)
	assert.Error(t, err, "duplicate match id should fail")
}

func TestRecentResults(t *testing.T) {
	store := openTestStore(t)

	for i, w := range []core.Color{core.White, core.Black, core.NoColor} {
		_, err := store.SaveResult(Result{GameID: "chess", Mode: "classic", Winner: w, Moves: i + 1})
		require.NoError(t, err)
	}
	_, err := store.SaveResult(Result{GameID: "go", Mode: "mirror", Winner: core.Black})
	require.NoError(t, err)

	results, err := store.RecentResults("chess", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 3, results[0].Moves, "newest result first")
	assert.Equal(t, core.NoColor, results[0].Winner)
	assert.Equal(t, 2, results[1].Moves)

	all, err := store.RecentResults("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	for _, w := range []core.Color{core.Black, core.Black, core.White, core.NoColor} {
		_, err := store.SaveResult(Result{GameID: "go", Mode: "classic", Winner: w, Moves: 10})
		require.NoError(t, err)
	}

	stats, err := store.Stats("go")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.GamesCount)
	assert.Equal(t, 2, stats.BlackWins)
	assert.Equal(t, 1, stats.WhiteWins)
	assert.Equal(t, 1, stats.Draws)
	assert.InDelta(t, 10.0, stats.AvgMoves, 1e-9)

	empty, err := store.Stats("chess")
	require.NoError(t, err)
	assert.Zero(t, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())
}

func TestClearResults(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveResult(Result{GameID: "chess", Mode: "classic", Winner: core.White})
	require.NoError(t, err)
	_, err = store.SaveResult(Result{GameID: "go", Mode: "classic", Winner: core.Black})
	require.NoError(t, err)

	require.NoError(t, store.ClearResults("chess"))

	chess, err := store.RecentResults("chess", 10)
	require.NoError(t, err)
	assert.Empty(t, chess)

	goResults, err := store.RecentResults("go", 10)
	require.NoError(t, err)
	assert.Len(t, goResults, 1)
}
