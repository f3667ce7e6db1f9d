package game

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/haya28/othello/board"
	"github.com/haya28/othello/move"
)

// ToDisplayText turns the current state of the game into a displayable
// string: the board, the disc counts, and whose turn it is (or the
// result, once the game is over).
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString(g.b.ToDisplayText())
	black, white := g.Scores()
	sb.WriteString(fmt.Sprintf("● Black %d - %d White ○\n", black, white))
	if g.state == statePlaying {
		sb.WriteString(fmt.Sprintf("%v to move\n", g.sideToMove))
	} else {
		sb.WriteString(g.resultText() + "\n")
	}
	return sb.String()
}

func (g *Game) resultText() string {
	winner := g.Winner()
	if winner == board.Empty {
		return "Game over: draw"
	}
	return fmt.Sprintf("Game over: %v wins", winner)
}

// HistoryText renders the move history as a single space-separated line,
// e.g. "(2, 3) (2, 2) (pass) ...". It doubles as the canonical move-list
// encoding the game store persists.
func (g *Game) HistoryText() string {
	return strings.Join(lo.Map(g.history, func(m *move.Move, _ int) string {
		return m.String()
	}), " ")
}
