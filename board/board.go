package board

import (
	"github.com/haya28/othello/move"
)

// Dim is the board dimension. Othello is always played on 8x8.
const Dim = 8

// CellValue is the contents of a single cell. The signed encoding makes
// positional evaluation a plain weighted sum over cells.
type CellValue int8

const (
	Empty CellValue = 0
	Black CellValue = 1
	White CellValue = -1
)

// Opponent returns the other side. Only meaningful for Black or White.
func (c CellValue) Opponent() CellValue {
	return -c
}

func (c CellValue) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Empty"
}

// directions are the 8 compass offsets used for line scanning.
var directions = [8][2]int{
	{0, 1}, {1, 0}, {0, -1}, {-1, 0},
	{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
}

// A Board is an 8x8 grid of cells. It is a value type: applying a move
// always produces a new Board, so a Board held by a search node is never
// mutated out from under it.
type Board struct {
	cells [Dim][Dim]CellValue
}

// NewBoard creates a board with the standard Othello starting position:
// the four center cells filled in the official diagonal pattern.
func NewBoard() *Board {
	b := &Board{}
	b.cells[3][3] = Black
	b.cells[3][4] = White
	b.cells[4][3] = White
	b.cells[4][4] = Black
	return b
}

// WrapGrid creates a board around an already-computed grid. Used when
// producing successor positions and in tests.
func WrapGrid(cells [Dim][Dim]CellValue) *Board {
	return &Board{cells: cells}
}

// Get returns the cell value at the given coordinates.
func (b *Board) Get(row, col int) CellValue {
	return b.cells[row][col]
}

func posExists(row, col int) bool {
	return row >= 0 && row < Dim && col >= 0 && col < Dim
}

// wouldFlip scans outward from (row, col) along one direction and reports
// whether placing player's disc there would capture at least one opponent
// disc in that direction: a contiguous run of opponent discs terminated by
// one of the player's own before the edge or an empty cell.
func (b *Board) wouldFlip(row, col, drow, dcol int, player CellValue) bool {
	r, c := row+drow, col+dcol
	seen := 0
	for posExists(r, c) {
		switch b.cells[r][c] {
		case Empty:
			return false
		case player:
			return seen > 0
		}
		seen++
		r, c = r+drow, c+dcol
	}
	return false
}

// IsValidMove reports whether player may place a disc at (row, col): the
// cell must be empty and at least one of the 8 directions must capture.
func (b *Board) IsValidMove(row, col int, player CellValue) bool {
	if b.cells[row][col] != Empty {
		return false
	}
	for _, d := range directions {
		if b.wouldFlip(row, col, d[0], d[1], player) {
			return true
		}
	}
	return false
}

// ValidMoves returns every legal move for player, enumerated in row-major
// order. The order is deterministic; the search engine relies on it.
func (b *Board) ValidMoves(player CellValue) []*move.Move {
	var moves []*move.Move
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			if b.IsValidMove(i, j, player) {
				moves = append(moves, move.NewMove(i, j))
			}
		}
	}
	return moves
}

// flipDirection converts the opponent run adjacent to (row, col) along one
// direction, if it is bounded by one of the player's discs. It operates on
// the successor grid, so scans in one direction never see flips made by
// another.
func flipDirection(cells *[Dim][Dim]CellValue, row, col, drow, dcol int, player CellValue) {
	r, c := row+drow, col+dcol
	var run [][2]int
	for posExists(r, c) {
		switch cells[r][c] {
		case Empty:
			return
		case player:
			for _, p := range run {
				cells[p[0]][p[1]] = player
			}
			return
		}
		run = append(run, [2]int{r, c})
		r, c = r+drow, c+dcol
	}
}

// MakeMove applies player's move at (row, col), returning the successor
// board, or nil if the move is illegal. The receiver is never modified.
func (b *Board) MakeMove(row, col int, player CellValue) *Board {
	if !b.IsValidMove(row, col, player) {
		return nil
	}
	cells := b.cells
	cells[row][col] = player
	for _, d := range directions {
		flipDirection(&cells, row, col, d[0], d[1], player)
	}
	return &Board{cells: cells}
}

// Fingerprint serializes the 64 cell values into a comparable byte array,
// the deduplication key used by the search engine's explored set. Note it
// encodes the position only, not whose turn it is.
func (b *Board) Fingerprint() [Dim * Dim]byte {
	var fp [Dim * Dim]byte
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			fp[i*Dim+j] = byte(b.cells[i][j])
		}
	}
	return fp
}

// Scores returns the disc counts for each side.
func (b *Board) Scores() (black, white int) {
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			switch b.cells[i][j] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}
