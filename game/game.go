// Package game tracks the authoritative state of one Othello game: the
// current board, whose turn it is, and the move history. It owns turn
// alternation and game-over detection; move legality itself lives in the
// board package.
package game

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/haya28/othello/board"
	"github.com/haya28/othello/move"
)

var ErrIllegalMove = errors.New("illegal move")
var ErrGameOver = errors.New("game is over")

type playState int

const (
	statePlaying playState = iota
	stateGameOver
)

type Game struct {
	b          *board.Board
	sideToMove board.CellValue
	history    []*move.Move
	passes     int // consecutive passes; two in a row end the game
	state      playState
}

// NewGame starts a fresh game from the standard position. Black moves
// first, per the rules.
func NewGame() *Game {
	return &Game{
		b:          board.NewBoard(),
		sideToMove: board.Black,
	}
}

func (g *Game) Board() *board.Board {
	return g.b
}

func (g *Game) SideToMove() board.CellValue {
	return g.sideToMove
}

func (g *Game) Playing() bool {
	return g.state == statePlaying
}

func (g *Game) History() []*move.Move {
	return g.history
}

func (g *Game) TurnNumber() int {
	return len(g.history)
}

// ValidMoves lists the legal moves for the side to move.
func (g *Game) ValidMoves() []*move.Move {
	return g.b.ValidMoves(g.sideToMove)
}

// PlayMove applies m for the side to move and advances the turn. It
// returns ErrIllegalMove if the board rejects the placement; the game
// state is unchanged in that case.
func (g *Game) PlayMove(m *move.Move) error {
	if g.state != statePlaying {
		return ErrGameOver
	}
	if m.Action() == move.MoveTypePass {
		g.Pass()
		return nil
	}
	nb := g.b.MakeMove(m.Row(), m.Col(), g.sideToMove)
	if nb == nil {
		return ErrIllegalMove
	}
	log.Debug().Msgf("%v plays %v", g.sideToMove, m)
	g.b = nb
	g.history = append(g.history, m)
	g.passes = 0
	g.endTurn()
	return nil
}

// Pass records a pass for the side to move. Two consecutive passes end
// the game.
func (g *Game) Pass() {
	if g.state != statePlaying {
		return
	}
	log.Debug().Msgf("%v passes", g.sideToMove)
	g.history = append(g.history, move.NewPass())
	g.passes++
	if g.passes >= 2 {
		g.state = stateGameOver
		return
	}
	g.endTurn()
}

func (g *Game) endTurn() {
	g.sideToMove = g.sideToMove.Opponent()
	black, white := g.b.Scores()
	if black+white == board.Dim*board.Dim {
		g.state = stateGameOver
	}
}

// Scores returns the current disc counts.
func (g *Game) Scores() (black, white int) {
	return g.b.Scores()
}

// Winner returns the side with more discs, or Empty for a draw. Only
// meaningful once Playing() is false.
func (g *Game) Winner() board.CellValue {
	black, white := g.b.Scores()
	if black > white {
		return board.Black
	}
	if white > black {
		return board.White
	}
	return board.Empty
}
