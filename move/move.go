package move

import (
	"fmt"
	"strconv"
)

// MoveType is a type of move; a disc placement or a pass.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypePass
)

// Move is a single placement on the board, addressed by zero-indexed
// row and column. A pass carries no coordinates.
type Move struct {
	action MoveType
	row    int
	col    int
}

// NewMove creates a placement move at the given coordinates.
func NewMove(row, col int) *Move {
	return &Move{action: MoveTypePlay, row: row, col: col}
}

// NewPass creates a pass move.
func NewPass() *Move {
	return &Move{action: MoveTypePass}
}

func (m *Move) Action() MoveType {
	return m.action
}

func (m *Move) Row() int {
	return m.row
}

func (m *Move) Col() int {
	return m.col
}

func (m *Move) Equals(o *Move) bool {
	return m.action == o.action && m.row == o.row && m.col == o.col
}

func (m *Move) String() string {
	if m.action == MoveTypePass {
		return "(pass)"
	}
	return fmt.Sprintf("(%d, %d)", m.row, m.col)
}

// FromStrings parses a move from two coordinate strings, as read from
// the interactive prompt. Each must be an integer in [0, 7].
func FromStrings(rowStr, colStr string) (*Move, error) {
	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return nil, fmt.Errorf("row is not a number: %v", rowStr)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return nil, fmt.Errorf("column is not a number: %v", colStr)
	}
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return nil, fmt.Errorf("coordinates out of range: (%d, %d)", row, col)
	}
	return NewMove(row, col), nil
}
