package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestStartingPosition(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	black, white := b.Scores()
	is.Equal(black, 2)
	is.Equal(white, 2)
	is.Equal(b.Get(3, 3), Black)
	is.Equal(b.Get(3, 4), White)
	is.Equal(b.Get(4, 3), White)
	is.Equal(b.Get(4, 4), Black)

	// Each side has exactly 4 opening moves.
	is.Equal(len(b.ValidMoves(Black)), 4)
	is.Equal(len(b.ValidMoves(White)), 4)
}

func TestOpeningMovesRowMajor(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	moves := b.ValidMoves(Black)
	coords := [][2]int{}
	for _, m := range moves {
		coords = append(coords, [2]int{m.Row(), m.Col()})
	}
	is.Equal(coords, [][2]int{{2, 4}, {3, 5}, {4, 2}, {5, 3}})
}

func TestValidMoveRequiresCapture(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	// An empty cell with no capturing direction is not a legal move.
	is.Equal(b.IsValidMove(0, 0, Black), false)
	// An occupied cell is never legal.
	is.Equal(b.IsValidMove(3, 3, Black), false)
	is.Equal(b.IsValidMove(3, 3, White), false)
}

func TestValidMoveMatchesMakeMove(t *testing.T) {
	is := is.New(t)
	boards := []*Board{NewBoard()}
	// Add a mid-game position too.
	mid := NewBoard().MakeMove(2, 4, Black).MakeMove(2, 3, White)
	is.True(mid != nil)
	boards = append(boards, mid)

	for _, b := range boards {
		for _, player := range []CellValue{Black, White} {
			for i := 0; i < Dim; i++ {
				for j := 0; j < Dim; j++ {
					nb := b.MakeMove(i, j, player)
					is.Equal(b.IsValidMove(i, j, player), nb != nil)
					if nb == nil {
						continue
					}
					is.Equal(nb.Get(i, j), player)
					// At least one cell besides the target changed.
					flips := 0
					for r := 0; r < Dim; r++ {
						for c := 0; c < Dim; c++ {
							if (r != i || c != j) && nb.Get(r, c) != b.Get(r, c) {
								flips++
								// A flip always converts an opponent disc.
								is.Equal(b.Get(r, c), player.Opponent())
								is.Equal(nb.Get(r, c), player)
							}
						}
					}
					is.True(flips >= 1)
				}
			}
		}
	}
}

func TestMakeMoveDoesNotMutateReceiver(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	before := b.Fingerprint()
	nb := b.MakeMove(2, 4, Black)
	is.True(nb != nil)
	is.Equal(b.Fingerprint(), before)
	is.True(nb.Fingerprint() != before)
}

func TestFlipIsBoundedWithinDirection(t *testing.T) {
	is := is.New(t)
	b, err := SetFromPlaintext([]string{
		"XOOO....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		".....OX.",
	})
	is.NoErr(err)

	nb := b.MakeMove(0, 4, Black)
	is.True(nb != nil)
	// The whole run between the new disc and the bounding disc flips.
	is.Equal(nb.Get(0, 1), Black)
	is.Equal(nb.Get(0, 2), Black)
	is.Equal(nb.Get(0, 3), Black)
	// Nothing beyond the boundary is touched.
	is.Equal(nb.Get(0, 5), Empty)
	is.Equal(nb.Get(7, 5), White)
	is.Equal(nb.Get(7, 6), Black)
}

func TestFlipStopsAtEmptyGap(t *testing.T) {
	is := is.New(t)
	// A run with an empty gap before the bounding disc captures nothing
	// in that direction.
	b, err := SetFromPlaintext([]string{
		".O.X....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	})
	is.NoErr(err)
	is.Equal(b.IsValidMove(0, 0, Black), false)
}

func TestDirectionsFlipIndependently(t *testing.T) {
	is := is.New(t)
	// Placing at the junction captures along both lines; each scan sees
	// the original grid regardless of flips in the other direction.
	b, err := SetFromPlaintext([]string{
		"X.......",
		"O.......",
		"O.......",
		".OOX....",
		"........",
		"........",
		"........",
		"........",
	})
	is.NoErr(err)
	nb := b.MakeMove(3, 0, Black)
	is.True(nb != nil)
	is.Equal(nb.Get(1, 0), Black)
	is.Equal(nb.Get(2, 0), Black)
	is.Equal(nb.Get(3, 1), Black)
	is.Equal(nb.Get(3, 2), Black)
}

func TestFingerprintDistinguishesPositions(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	is.Equal(b.Fingerprint(), NewBoard().Fingerprint())
	nb := b.MakeMove(2, 4, Black)
	is.True(b.Fingerprint() != nb.Fingerprint())
}

func TestSetFromPlaintextRejectsBadInput(t *testing.T) {
	is := is.New(t)
	_, err := SetFromPlaintext([]string{"XO"})
	is.True(err != nil)
	_, err = SetFromPlaintext([]string{
		"Z.......", "........", "........", "........",
		"........", "........", "........", "........",
	})
	is.True(err != nil)
}
