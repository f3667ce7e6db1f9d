package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haya28/othello/board"
	"github.com/haya28/othello/move"
)

func TestNewGame(t *testing.T) {
	g := NewGame()
	assert.True(t, g.Playing())
	assert.Equal(t, board.Black, g.SideToMove())
	assert.Equal(t, 0, g.TurnNumber())
	black, white := g.Scores()
	assert.Equal(t, 2, black)
	assert.Equal(t, 2, white)
}

func TestPlayMoveAlternatesTurns(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.PlayMove(move.NewMove(2, 4)))
	assert.Equal(t, board.White, g.SideToMove())
	assert.Equal(t, 1, g.TurnNumber())

	require.NoError(t, g.PlayMove(move.NewMove(2, 3)))
	assert.Equal(t, board.Black, g.SideToMove())
}

func TestPlayMoveRejectsIllegal(t *testing.T) {
	g := NewGame()
	err := g.PlayMove(move.NewMove(0, 0))
	assert.ErrorIs(t, err, ErrIllegalMove)
	// State unchanged after a rejected move.
	assert.Equal(t, board.Black, g.SideToMove())
	assert.Equal(t, 0, g.TurnNumber())
}

func TestTwoConsecutivePassesEndGame(t *testing.T) {
	g := NewGame()
	g.Pass()
	assert.True(t, g.Playing())
	g.Pass()
	assert.False(t, g.Playing())

	err := g.PlayMove(move.NewMove(2, 4))
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestPassResetOnPlay(t *testing.T) {
	g := NewGame()
	g.Pass()
	require.NoError(t, g.PlayMove(move.NewMove(2, 3)))
	g.Pass()
	// Not consecutive: the game continues.
	assert.True(t, g.Playing())
}

func TestWinnerByDiscCount(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.PlayMove(move.NewMove(2, 4)))
	// Black now leads 4-1.
	assert.Equal(t, board.Black, g.Winner())
	g.Pass()
	g.Pass()
	assert.False(t, g.Playing())
	assert.Equal(t, board.Black, g.Winner())
}

func TestWinnerDraw(t *testing.T) {
	g := NewGame()
	g.Pass()
	g.Pass()
	assert.Equal(t, board.Empty, g.Winner())
}

func TestHistoryText(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.PlayMove(move.NewMove(2, 4)))
	g.Pass()
	assert.Equal(t, "(2, 4) (pass)", g.HistoryText())
}

func TestToDisplayText(t *testing.T) {
	g := NewGame()
	text := g.ToDisplayText()
	assert.Contains(t, text, "Black 2 - 2 White")
	assert.Contains(t, text, "Black to move")
	// Two discs each on the board plus one of each in the score line.
	assert.Equal(t, 3, strings.Count(text, "●"))
	assert.Equal(t, 3, strings.Count(text, "○"))
}
