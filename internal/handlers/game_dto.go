package handlers

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/sweeper/internal/mines"
)

// ParseGameParams overlays the size and mine_count query parameters on
// defaults and validates the result.
func ParseGameParams(src map[string][]string, defaults mines.GameParams) (mines.GameParams, error) {
	params := defaults
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&params, src); err != nil {
		return mines.GameParams{}, err
	}
	if err := params.Validate(); err != nil {
		return mines.GameParams{}, err
	}
	return params, nil
}

type GameDTO struct {
	GameID         string   `json:"game_id"`
	Size           int      `json:"size"`
	MineCount      int      `json:"mine_count"`
	FlagsRemaining int      `json:"flags_remaining"`
	Status         string   `json:"status"`
	Grid           []string `json:"grid"`
	Error          string   `json:"error,omitempty"`
}

func NewGameDTO(gameID string, g *mines.GameState, err error) *GameDTO {
	dto := &GameDTO{
		GameID:         gameID,
		Size:           g.Size(),
		MineCount:      g.MineCount(),
		FlagsRemaining: g.FlagsRemaining(),
		Status:         g.Status().String(),
		Grid:           g.Grid().Rows(g.Size()),
	}
	if err != nil {
		dto.Error = err.Error()
	}
	return dto
}
