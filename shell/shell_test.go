package shell

import (
	"testing"

	"github.com/matryer/is"

	"github.com/haya28/othello/board"
	"github.com/haya28/othello/equity"
	"github.com/haya28/othello/game"
)

func TestForceAIMovePlaysForSideToMove(t *testing.T) {
	is := is.New(t)
	g := game.NewGame()
	is.Equal(g.SideToMove(), board.Black)

	m, err := forceAIMove(g, 2, equity.DefaultWeights())
	is.NoErr(err)
	is.True(m != nil)
	is.Equal(g.TurnNumber(), 1)
	is.Equal(g.SideToMove(), board.White)

	// Works for either side: a second call now moves for White.
	m, err = forceAIMove(g, 2, equity.DefaultWeights())
	is.NoErr(err)
	is.True(m != nil)
	is.Equal(g.TurnNumber(), 2)
	is.Equal(g.SideToMove(), board.Black)
}

func TestForceAIMoveRecordsLegalMoves(t *testing.T) {
	is := is.New(t)
	g := game.NewGame()
	b := g.Board()
	m, err := forceAIMove(g, 2, equity.DefaultWeights())
	is.NoErr(err)
	is.True(m != nil)
	is.True(b.IsValidMove(m.Row(), m.Col(), board.Black))
}
