package mines

import "strings"

// CellSymbol is what a player is allowed to see of a cell.
type CellSymbol rune

const (
	SymbolFlag    CellSymbol = 'F'
	SymbolCovered CellSymbol = '-'
	SymbolMine    CellSymbol = 'M'
	SymbolBlank   CellSymbol = ' '
	// '1' to '8' for an open cell with that many mined neighbours
)

func (s CellSymbol) String() string {
	return string(s)
}

// GridInfo is a row-major snapshot of the player's view of a board.
type GridInfo []CellSymbol

// Rows splits the snapshot into one string per board row.
func (g GridInfo) Rows(width int) []string {
	rows := make([]string, 0, len(g)/width)
	for y := range len(g) / width {
		var b strings.Builder
		for x := range width {
			b.WriteRune(rune(g[y*width+x]))
		}
		rows = append(rows, b.String())
	}
	return rows
}
