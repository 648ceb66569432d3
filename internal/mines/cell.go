package mines

// Cell is a single square of the board.
type Cell struct {
	covered  bool
	mine     bool
	flagged  bool
	adjacent int
}

func newCell() Cell {
	return Cell{covered: true}
}

func (c *Cell) SetMine() {
	c.mine = true
}

func (c *Cell) SetAdjacent(n int) {
	c.adjacent = n
}

// Uncover opens the cell. There is no way back.
func (c *Cell) Uncover() {
	c.covered = false
}

// SetFlag reports whether the stored flag actually changed.
func (c *Cell) SetFlag(v bool) bool {
	if c.flagged == v {
		return false
	}
	c.flagged = v
	return true
}

// IsBlank is true for an open, unflagged, mine-free cell with no mined
// neighbours. Flood fill expands only from blank cells.
func (c Cell) IsBlank() bool {
	return !c.covered && !c.mine && !c.flagged && c.adjacent == 0
}

func (c Cell) Covered() bool { return c.covered }
func (c Cell) Mine() bool    { return c.mine }
func (c Cell) Flagged() bool { return c.flagged }
func (c Cell) Adjacent() int { return c.adjacent }

func (c Cell) Symbol() CellSymbol {
	switch {
	case c.flagged:
		return SymbolFlag
	case c.covered:
		return SymbolCovered
	case c.mine:
		return SymbolMine
	case c.adjacent > 0:
		return CellSymbol('0' + c.adjacent)
	default:
		return SymbolBlank
	}
}
