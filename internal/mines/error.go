package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCommand       = errors.New("invalid command")
	ErrIllegalFlagTarget    = errors.New("cannot flag an uncovered cell")
	ErrIllegalUncoverTarget = errors.New("cannot uncover this cell")
	ErrGameOver             = errors.New("game is over")
	ErrInvalidLayout        = errors.New("invalid mine layout")
)

// ConfigurationError rejects board parameters before any game starts.
type ConfigurationError struct {
	Size      int
	MineCount int
}

// [ConfigurationError] implements [error]
func (e *ConfigurationError) Error() string {
	switch {
	case e.Size < MinSize || e.Size > MaxSize:
		return fmt.Sprintf("board size must be between %d and %d, got %d", MinSize, MaxSize, e.Size)
	case e.MineCount < 1:
		return fmt.Sprintf("cannot create a board with %d mines", e.MineCount)
	case e.MineCount >= e.Size*e.Size:
		return fmt.Sprintf("not enough space for %d mines (%d >= %d * %d)",
			e.MineCount, e.MineCount, e.Size, e.Size)
	default:
		return "invalid board configuration"
	}
}
