package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vancomm/sweeper/internal/mines"
)

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return v, nil
}

// NewGameParams reads the board size and mine count, defaulting to the
// classic 9x9 board with 10 mines.
func NewGameParams() (*mines.GameParams, error) {
	size, err := lookupInt("SWEEPER_SIZE", mines.DefaultSize)
	if err != nil {
		return nil, err
	}

	mineCount, err := lookupInt("SWEEPER_MINES", mines.DefaultMineCount)
	if err != nil {
		return nil, err
	}

	params := &mines.GameParams{Size: size, MineCount: mineCount}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return params, nil
}
