// Package bestfirst picks moves with a depth-bounded best-first search.
// The frontier is a priority queue ordered by an additive combination of
// ply count and the raw positional score of the successor board; the
// lowest-scored node is always expanded next. This is deliberately not a
// minimax: each ply simply generates the moving side's successors and
// ranks them all on the same scale.
package bestfirst

import (
	"container/heap"

	"github.com/rs/zerolog/log"

	"github.com/haya28/othello/board"
	"github.com/haya28/othello/equity"
	"github.com/haya28/othello/move"
)

const DefaultMaxDepth = 4

// Solver searches for a move for one fixed side. It is not safe for
// concurrent GetMove calls; the stats fields are reset per search.
type Solver struct {
	side     board.CellValue
	maxDepth int
	calc     equity.Calculator

	expansions int
	dedups     int
}

// NewSolver creates a solver playing the given side, searching maxDepth
// plies ahead, scoring boards with calc.
func NewSolver(side board.CellValue, maxDepth int, calc equity.Calculator) *Solver {
	return &Solver{side: side, maxDepth: maxDepth, calc: calc}
}

func (s *Solver) Side() board.CellValue {
	return s.side
}

// GetMove returns the recommended move for the solver's side on b, or nil
// when the side should pass. It never returns an error; an exhausted
// frontier and a cutoff with no recorded move both mean "no move".
func (s *Solver) GetMove(b *board.Board) *move.Move {
	frontier := newFrontier()
	heap.Push(frontier, &searchNode{fscore: 0, depth: 0, b: b})
	explored := map[[board.Dim * board.Dim]byte]bool{}

	s.expansions = 0
	s.dedups = 0
	for frontier.Len() > 0 {
		node := heap.Pop(frontier).(*searchNode)

		if node.depth >= s.maxDepth {
			log.Debug().Msgf("depth cutoff at %d after %d expansions; first move %v",
				node.depth, s.expansions, node.firstMove)
			return node.firstMove
		}

		// The explored set is keyed on the position alone, not on depth
		// or whose turn it is; a layout reached twice is expanded once.
		fp := node.b.Fingerprint()
		if explored[fp] {
			s.dedups++
			continue
		}
		explored[fp] = true
		s.expansions++

		// Side to move at this ply follows from depth parity.
		mover := s.side
		if node.depth%2 != 0 {
			mover = s.side.Opponent()
		}

		for _, m := range node.b.ValidMoves(mover) {
			succ := node.b.MakeMove(m.Row(), m.Col(), mover)
			if succ == nil {
				continue
			}
			firstMove := node.firstMove
			if firstMove == nil {
				firstMove = m
			}
			h := s.calc.Evaluate(succ)
			if s.side == board.White {
				h = -h
			}
			heap.Push(frontier, &searchNode{
				fscore:    node.depth + 1 + h,
				depth:     node.depth + 1,
				b:         succ,
				firstMove: firstMove,
			})
		}
	}
	log.Debug().Msgf("frontier exhausted after %d expansions; no move", s.expansions)
	return nil
}
