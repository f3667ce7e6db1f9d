package equity

import "github.com/haya28/othello/board"

// Calculator computes a scalar positional score for a board. Positive
// favors Black, negative favors White.
type Calculator interface {
	Evaluate(b *board.Board) int
}
