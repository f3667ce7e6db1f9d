// Package bot wraps move-selection strategies behind a common player
// interface for the game loop and the automatic runner.
package bot

import (
	"lukechampine.com/frand"

	"github.com/haya28/othello/ai/bestfirst"
	"github.com/haya28/othello/board"
	"github.com/haya28/othello/equity"
	"github.com/haya28/othello/move"
)

// AIPlayer picks moves for one fixed side. BestMove returns nil when the
// side has to pass.
type AIPlayer interface {
	BestMove(b *board.Board) *move.Move
	Side() board.CellValue
	Name() string
}

// SearchBot selects moves with the best-first solver.
type SearchBot struct {
	solver *bestfirst.Solver
	side   board.CellValue
}

func NewSearchBot(side board.CellValue, maxDepth int, calc equity.Calculator) *SearchBot {
	return &SearchBot{
		solver: bestfirst.NewSolver(side, maxDepth, calc),
		side:   side,
	}
}

func (sb *SearchBot) BestMove(b *board.Board) *move.Move {
	return sb.solver.GetMove(b)
}

func (sb *SearchBot) Side() board.CellValue {
	return sb.side
}

func (sb *SearchBot) Name() string {
	return "searchbot"
}

// RandomBot picks uniformly among the legal moves. It is the baseline
// opponent for selfplay comparisons.
type RandomBot struct {
	side board.CellValue
}

func NewRandomBot(side board.CellValue) *RandomBot {
	return &RandomBot{side: side}
}

func (rb *RandomBot) BestMove(b *board.Board) *move.Move {
	moves := b.ValidMoves(rb.side)
	if len(moves) == 0 {
		return nil
	}
	return moves[frand.Intn(len(moves))]
}

func (rb *RandomBot) Side() board.CellValue {
	return rb.side
}

func (rb *RandomBot) Name() string {
	return "randombot"
}
