package mines

import (
	"fmt"
	"regexp"
)

type Move uint8

const (
	Flag Move = iota + 1
	Unflag
	Uncover
)

func (m Move) String() string {
	switch m {
	case Flag:
		return "flag"
	case Unflag:
		return "unflag"
	case Uncover:
		return "uncover"
	default:
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
}

// Letter is the single-character command prefix of m.
func (m Move) Letter() byte {
	switch m {
	case Flag:
		return 'F'
	case Unflag:
		return 'U'
	case Uncover:
		return 'C'
	default:
		return '?'
	}
}

type Command struct {
	Move  Move
	Point Point
}

func (c Command) String() string {
	return fmt.Sprintf("%c[%s]", c.Move.Letter(), c.Point)
}

var commandRe = regexp.MustCompile(`^([FUC])\[([A-Z])([0-9])\]$`)

// ParseCommand reads commands such as "C[B4]": a move letter, then the
// column letter and the row digit in brackets. Points outside a board of
// the given size are rejected.
func ParseCommand(s string, size int) (Command, error) {
	m := commandRe.FindStringSubmatch(s)
	if m == nil {
		return Command{}, fmt.Errorf("%w: %q", ErrInvalidCommand, s)
	}

	var move Move
	switch m[1] {
	case "F":
		move = Flag
	case "U":
		move = Unflag
	case "C":
		move = Uncover
	}

	p := Point{Row: int(m[3][0] - '0'), Col: int(m[2][0] - 'A')}
	if p.Row >= size || p.Col >= size {
		return Command{}, fmt.Errorf("%w: %q is off the board", ErrInvalidCommand, s)
	}

	return Command{Move: move, Point: p}, nil
}
