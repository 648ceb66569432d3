package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceMines(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "9x9(10)", params: GameParams{Size: 9, MineCount: 10}},
		{name: "9x9(35)", params: GameParams{Size: 9, MineCount: 35}},
		{name: "9x9(80)", params: GameParams{Size: 9, MineCount: 80}},
		{name: "4x4(1)", params: GameParams{Size: 4, MineCount: 1}},
		{name: "4x4(15)", params: GameParams{Size: 4, MineCount: 15}},
		{name: "10x10(99)", params: GameParams{Size: 10, MineCount: 99}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := seeded()
			for start := range NewGrid(test.params.Size).Points() {
				g, err := NewGame(test.params, r)
				require.NoError(t, err)

				_, err = g.Uncover(start)
				require.NoError(t, err)

				assert.Equal(t, test.params.MineCount, g.grid.Mines(), "mine count @ %s", start)
				assert.False(t, g.grid.At(start).Mine(), "mine under first click @ %s", start)
				assert.Equal(t, Playing, g.Status())
				assertCounts(t, g.grid)
			}
		})
	}
}

func TestLayoutCounts(t *testing.T) {
	g := layoutGame(t, 9, testLayout...)
	assertCounts(t, g.grid)

	assert.Equal(t, 1, g.grid.At(pt(0, 1)).Adjacent())
	assert.Equal(t, 2, g.grid.At(pt(1, 8)).Adjacent())
	assert.Equal(t, 2, g.grid.At(pt(3, 3)).Adjacent())
	assert.Equal(t, 0, g.grid.At(pt(4, 0)).Adjacent())
}

func TestPlacementDoesNotRetry(t *testing.T) {
	// Every cell but the start becomes a mine, which rejection sampling
	// would take a very long time to hit.
	params := GameParams{Size: MaxSize, MineCount: MaxSize*MaxSize - 1}
	g, err := NewGame(params, seeded())
	require.NoError(t, err)

	res, err := g.Uncover(pt(5, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Uncovered)
	assert.Equal(t, 8, g.grid.At(pt(5, 5)).Adjacent())
	assert.Equal(t, params.MineCount, g.grid.Mines())
}

func assertCounts(t *testing.T, g *Grid) {
	t.Helper()
	for p := range g.Points() {
		c := g.At(p)
		if c.Mine() {
			continue
		}
		assert.Equal(t, g.minedNeighbours(p), c.Adjacent(), "adjacent count @ %s", p)
	}
}
