// Package render draws a board as the framed text shown in the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/sweeper/internal/mines"
)

// Board is the read-only view a renderer needs.
type Board interface {
	Size() int
	FlagsRemaining() int
	Grid() mines.GridInfo
}

// Write draws b as
//
//	 +---------+
//	 |  M:10   |
//	 +---------+
//	 |ABCDEFGHI|
//	 +---------+
//	0|---------|
//	...
//	 +---------+
func Write(w io.Writer, b Board) error {
	_, err := io.WriteString(w, String(b))
	return err
}

func String(b Board) string {
	size := b.Size()
	border := " +" + strings.Repeat("-", size) + "+\n"

	var sb strings.Builder
	sb.WriteString(border)
	fmt.Fprintf(&sb, " |%s|\n", centre(header(b.FlagsRemaining(), size), size))
	sb.WriteString(border)

	sb.WriteString(" |")
	for col := range size {
		sb.WriteByte(byte('A' + col))
	}
	sb.WriteString("|\n")
	sb.WriteString(border)

	for row, line := range b.Grid().Rows(size) {
		fmt.Fprintf(&sb, "%d|%s|\n", row, line)
	}
	sb.WriteString(border)

	return sb.String()
}

// header drops the "M:" label when the counter would not fit the frame.
// At most 100 flags can be placed, so the bare counter always fits.
func header(flagsRemaining, width int) string {
	h := fmt.Sprintf("M:%02d", flagsRemaining)
	if len(h) > width {
		h = fmt.Sprintf("%02d", flagsRemaining)
	}
	return h
}

func centre(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
