package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"C[B4]", Command{Move: Uncover, Point: pt(4, 1)}},
		{"F[A0]", Command{Move: Flag, Point: pt(0, 0)}},
		{"U[I8]", Command{Move: Unflag, Point: pt(8, 8)}},
		{"C[E4]", Command{Move: Uncover, Point: pt(4, 4)}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			cmd, err := ParseCommand(test.input, DefaultSize)
			require.NoError(t, err)
			assert.Equal(t, test.want, cmd)
			assert.Equal(t, test.input, cmd.String())
		})
	}
}

func TestParseCommandRejects(t *testing.T) {
	for _, input := range []string{
		"",
		"C",
		"c[B4]",
		"C[b4]",
		"X[B4]",
		"C[4B]",
		"C[B4",
		"C(B4)",
		"C[B44]",
		"xC[B4]",
		"C[B4]x",
		"C[J0]", // column off a 9x9 board
		"C[A9]", // row off a 9x9 board
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCommand(input, DefaultSize)
			assert.ErrorIs(t, err, ErrInvalidCommand)
		})
	}
}

func TestParseCommandBoardSize(t *testing.T) {
	_, err := ParseCommand("C[J9]", 10)
	assert.NoError(t, err)

	_, err = ParseCommand("C[E0]", 4)
	assert.ErrorIs(t, err, ErrInvalidCommand)
}
