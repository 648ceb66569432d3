package mines

import "fmt"

const (
	DefaultSize      = 9
	DefaultMineCount = 10

	// The command grammar addresses rows with a single digit, and the
	// board header needs room for the flag counter.
	MinSize = 4
	MaxSize = 10
)

type GameParams struct {
	Size      int `schema:"size"`
	MineCount int `schema:"mine_count"`
}

func DefaultParams() GameParams {
	return GameParams{Size: DefaultSize, MineCount: DefaultMineCount}
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Size, p.Size, p.MineCount)
}

// Validate returns a *ConfigurationError for boards that cannot be played.
func (p GameParams) Validate() error {
	if p.Size < MinSize || p.Size > MaxSize ||
		p.MineCount < 1 || p.MineCount >= p.Size*p.Size {
		return &ConfigurationError{Size: p.Size, MineCount: p.MineCount}
	}
	return nil
}
