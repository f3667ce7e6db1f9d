package board

import (
	"fmt"
	"strings"
)

var cellSymbols = map[CellValue]string{
	Empty: ".",
	Black: "●",
	White: "○",
}

// ToDisplayText turns the board into a displayable string with column
// and row labels.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("\n   ")
	for j := 0; j < Dim; j++ {
		sb.WriteString(fmt.Sprintf("%d ", j))
	}
	sb.WriteString("\n   " + strings.Repeat("-", Dim*2) + "\n")
	for i := 0; i < Dim; i++ {
		sb.WriteString(fmt.Sprintf("%2d|", i))
		for j := 0; j < Dim; j++ {
			sb.WriteString(cellSymbols[b.cells[i][j]] + " ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	return sb.String()
}

// SetFromPlaintext fills a grid from a textual description, one string
// per row, using the same symbols ToDisplayText emits plus 'X'/'O' and
// space as alternates. Only used by tests and debugging helpers.
func SetFromPlaintext(desc []string) (*Board, error) {
	if len(desc) != Dim {
		return nil, fmt.Errorf("expected %d rows, got %d", Dim, len(desc))
	}
	var cells [Dim][Dim]CellValue
	for i, rowDesc := range desc {
		runes := []rune(rowDesc)
		if len(runes) != Dim {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", i, Dim, len(runes))
		}
		for j, r := range runes {
			switch r {
			case '.', ' ':
				cells[i][j] = Empty
			case '●', 'X', 'x':
				cells[i][j] = Black
			case '○', 'O', 'o':
				cells[i][j] = White
			default:
				return nil, fmt.Errorf("row %d col %d: unknown symbol %q", i, j, r)
			}
		}
	}
	return WrapGrid(cells), nil
}
