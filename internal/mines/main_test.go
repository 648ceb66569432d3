package mines

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	m.Run()
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func pt(row, col int) Point {
	return Point{Row: row, Col: col}
}

// corners plus a scattering, 10 mines on a 9x9 board
var testLayout = []Point{
	pt(0, 0), pt(0, 8), pt(8, 0), pt(8, 8),
	pt(2, 2), pt(2, 6), pt(6, 2), pt(6, 6),
	pt(4, 4), pt(1, 7),
}

func layoutGame(t *testing.T, size int, mines ...Point) *GameState {
	t.Helper()
	g, err := NewGameFromLayout(GameParams{Size: size, MineCount: len(mines)}, mines)
	require.NoError(t, err)
	return g
}

func countCovered(g *GameState) (n int) {
	for p := range g.grid.Points() {
		if g.grid.At(p).covered {
			n++
		}
	}
	return
}
