package gamestore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "games.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndRecentGames(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	recs := []GameRecord{
		{PlayedAt: base, Winner: "Black", BlackScore: 40, WhiteScore: 24, Moves: "(2, 4) (2, 3)"},
		{PlayedAt: base.Add(time.Hour), Winner: "White", BlackScore: 20, WhiteScore: 44, Moves: "(2, 4) (4, 2)"},
		{PlayedAt: base.Add(2 * time.Hour), Winner: "Empty", BlackScore: 32, WhiteScore: 32, Moves: "(pass) (pass)"},
	}
	for _, rec := range recs {
		require.NoError(t, s.SaveGame(rec))
	}

	got, err := s.RecentGames(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Most recent first.
	assert.Equal(t, "Empty", got[0].Winner)
	assert.Equal(t, "White", got[1].Winner)
	assert.Equal(t, 44, got[1].WhiteScore)
}

func TestRecentGamesEmpty(t *testing.T) {
	s := openTestStore(t)
	got, err := s.RecentGames(10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpenBadPath(t *testing.T) {
	_, err := Open("/nonexistent-dir/sub/games.db")
	assert.Error(t, err)
}
