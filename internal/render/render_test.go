package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sweeper/internal/mines"
)

func TestFreshBoard(t *testing.T) {
	g, err := mines.NewGame(mines.DefaultParams(), nil)
	require.NoError(t, err)

	want := "" +
		" +---------+\n" +
		" |  M:10   |\n" +
		" +---------+\n" +
		" |ABCDEFGHI|\n" +
		" +---------+\n" +
		"0|---------|\n" +
		"1|---------|\n" +
		"2|---------|\n" +
		"3|---------|\n" +
		"4|---------|\n" +
		"5|---------|\n" +
		"6|---------|\n" +
		"7|---------|\n" +
		"8|---------|\n" +
		" +---------+\n"
	assert.Equal(t, want, String(g))
}

func TestPlayedBoard(t *testing.T) {
	g, err := mines.NewGameFromLayout(
		mines.GameParams{Size: 4, MineCount: 2},
		[]mines.Point{{Row: 3, Col: 3}, {Row: 0, Col: 3}},
	)
	require.NoError(t, err)

	for _, cmd := range []string{"F[D3]", "F[A3]", "F[B3]", "C[A0]"} {
		_, err := g.Execute(cmd)
		require.NoError(t, err)
	}

	want := "" +
		" +----+\n" +
		" |M:-1|\n" +
		" +----+\n" +
		" |ABCD|\n" +
		" +----+\n" +
		"0|  1-|\n" +
		"1|  1-|\n" +
		"2|  1-|\n" +
		"3|FF1F|\n" +
		" +----+\n"
	assert.Equal(t, want, String(g))
}

func TestOverflaggedHeader(t *testing.T) {
	g, err := mines.NewGameFromLayout(
		mines.GameParams{Size: 4, MineCount: 1},
		[]mines.Point{{Row: 0, Col: 0}},
	)
	require.NoError(t, err)

	for _, cmd := range []string{
		"F[B0]", "F[C0]", "F[D0]",
		"F[A1]", "F[B1]", "F[C1]", "F[D1]",
		"F[A2]", "F[B2]", "F[C2]", "F[D2]",
	} {
		_, err := g.Execute(cmd)
		require.NoError(t, err)
	}
	require.Equal(t, -10, g.FlagsRemaining())

	want := "" +
		" +----+\n" +
		" |-10 |\n" +
		" +----+\n" +
		" |ABCD|\n" +
		" +----+\n" +
		"0|-FFF|\n" +
		"1|FFFF|\n" +
		"2|FFFF|\n" +
		"3|----|\n" +
		" +----+\n"
	assert.Equal(t, want, String(g))
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "M:10", header(10, 9))
	assert.Equal(t, "M:-9", header(-9, 4))
	assert.Equal(t, "-10", header(-10, 4))
	assert.Equal(t, "-99", header(-99, 4))
	assert.Equal(t, "M:-10", header(-10, 5))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteError(t *testing.T) {
	g, err := mines.NewGame(mines.DefaultParams(), nil)
	require.NoError(t, err)
	assert.EqualError(t, Write(failingWriter{}, g), "closed")
}

func TestCentre(t *testing.T) {
	assert.Equal(t, "  M:10   ", centre("M:10", 9))
	assert.Equal(t, "   M:07   ", centre("M:07", 10))
	assert.Equal(t, "M:10", centre("M:10", 4))
}
