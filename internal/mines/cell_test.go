package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellSetFlag(t *testing.T) {
	c := newCell()
	assert.True(t, c.SetFlag(true))
	assert.False(t, c.SetFlag(true))
	assert.True(t, c.Flagged())
	assert.True(t, c.SetFlag(false))
	assert.False(t, c.SetFlag(false))
	assert.False(t, c.Flagged())
}

func TestCellIsBlank(t *testing.T) {
	c := newCell()
	assert.False(t, c.IsBlank(), "covered cells are never blank")

	c.Uncover()
	assert.True(t, c.IsBlank())

	c.SetAdjacent(2)
	assert.False(t, c.IsBlank())

	m := newCell()
	m.SetMine()
	m.SetMine()
	m.Uncover()
	assert.True(t, m.Mine())
	assert.False(t, m.IsBlank())
}

func TestCellSymbol(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want CellSymbol
	}{
		{"covered", Cell{covered: true}, SymbolCovered},
		{"flagged", Cell{covered: true, flagged: true}, SymbolFlag},
		{"flagged mine", Cell{covered: true, flagged: true, mine: true}, SymbolFlag},
		{"covered mine", Cell{covered: true, mine: true}, SymbolCovered},
		{"open mine", Cell{mine: true}, SymbolMine},
		{"open count", Cell{adjacent: 3}, CellSymbol('3')},
		{"open blank", Cell{}, SymbolBlank},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.cell.Symbol())
		})
	}
}
