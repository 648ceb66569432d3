package mines

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
)

var Log *slog.Logger = slog.Default()

// GameState is one game from the first command to a win or a loss.
// It is not safe for concurrent use; every game has a single owner.
type GameState struct {
	params         GameParams
	grid           *Grid
	flagsRemaining int
	minesPlaced    bool
	status         Status
	rnd            *rand.Rand
}

// Result describes what a single command did.
type Result struct {
	Command        Command
	Changed        bool
	Uncovered      int
	FlagsRemaining int
	Status         Status
}

// NewGame starts an empty board. Mines are laid on the first uncover so
// that the first opened cell is always safe.
func NewGame(params GameParams, r *rand.Rand) (*GameState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &GameState{
		params:         params,
		grid:           NewGrid(params.Size),
		flagsRemaining: params.MineCount,
		rnd:            r,
	}, nil
}

// NewGameFromLayout starts a game whose mines are already in place.
func NewGameFromLayout(params GameParams, mines []Point) (*GameState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(mines) != params.MineCount {
		return nil, fmt.Errorf("%w: %d mines given for %s", ErrInvalidLayout, len(mines), params)
	}
	grid := NewGrid(params.Size)
	for _, p := range mines {
		if !grid.InBounds(p) {
			return nil, fmt.Errorf("%w: mine %v is off the board", ErrInvalidLayout, p)
		}
		if grid.At(p).mine {
			return nil, fmt.Errorf("%w: duplicate mine at %s", ErrInvalidLayout, p)
		}
		grid.addMine(p)
	}
	return &GameState{
		params:         params,
		grid:           grid,
		flagsRemaining: params.MineCount,
		minesPlaced:    true,
	}, nil
}

// Apply runs cmd against the board. Gameplay errors leave the game as it
// was; winning and losing are reported through Result.Status instead.
func (s *GameState) Apply(cmd Command) (Result, error) {
	res := Result{Command: cmd, FlagsRemaining: s.flagsRemaining, Status: s.status}
	if s.status.Terminal() {
		return res, ErrGameOver
	}
	if !s.grid.InBounds(cmd.Point) {
		return res, fmt.Errorf("%w: %v is off the board", ErrInvalidCommand, cmd.Point)
	}

	var err error
	switch cmd.Move {
	case Flag:
		res.Changed, err = s.flag(cmd.Point)
	case Unflag:
		res.Changed = s.unflag(cmd.Point)
	case Uncover:
		res.Uncovered, err = s.uncover(cmd.Point)
		res.Changed = res.Uncovered > 0
	default:
		err = fmt.Errorf("%w: unknown move %v", ErrInvalidCommand, cmd.Move)
	}

	if s.status == Playing {
		s.checkWin()
	}
	res.FlagsRemaining = s.flagsRemaining
	res.Status = s.status
	return res, err
}

// Execute parses a textual command such as "F[C3]" and applies it.
func (s *GameState) Execute(text string) (Result, error) {
	cmd, err := ParseCommand(strings.TrimSpace(text), s.params.Size)
	if err != nil {
		return Result{FlagsRemaining: s.flagsRemaining, Status: s.status}, err
	}
	return s.Apply(cmd)
}

func (s *GameState) Flag(p Point) (Result, error) {
	return s.Apply(Command{Move: Flag, Point: p})
}

func (s *GameState) Unflag(p Point) (Result, error) {
	return s.Apply(Command{Move: Unflag, Point: p})
}

func (s *GameState) Uncover(p Point) (Result, error) {
	return s.Apply(Command{Move: Uncover, Point: p})
}

func (s *GameState) flag(p Point) (bool, error) {
	c := s.grid.At(p)
	if !c.covered {
		return false, ErrIllegalFlagTarget
	}
	if !c.SetFlag(true) {
		return false, nil
	}
	s.flagsRemaining--
	return true, nil
}

func (s *GameState) unflag(p Point) bool {
	if !s.grid.At(p).SetFlag(false) {
		return false
	}
	s.flagsRemaining++
	return true
}

func (s *GameState) uncover(p Point) (int, error) {
	c := s.grid.At(p)
	if c.flagged || !c.covered {
		return 0, ErrIllegalUncoverTarget
	}

	if !s.minesPlaced {
		s.grid.placeMines(p, s.params.MineCount, s.rnd)
		s.minesPlaced = true
		Log.Debug("mines placed", slog.String("params", s.params.String()), slog.String("start", p.String()))
	}

	if c.mine {
		c.Uncover()
		s.status = Lost
		return 1, nil
	}
	return s.grid.floodReveal(p), nil
}

// checkWin ends the game once the flags sit exactly on the mines. Whether
// the safe cells were opened does not matter.
func (s *GameState) checkWin() {
	if s.flagsRemaining != 0 {
		return
	}
	for _, c := range s.grid.cells {
		if c.flagged != c.mine {
			return
		}
	}
	s.status = Won
}

func (s *GameState) Params() GameParams  { return s.params }
func (s *GameState) Size() int           { return s.params.Size }
func (s *GameState) MineCount() int      { return s.params.MineCount }
func (s *GameState) FlagsRemaining() int { return s.flagsRemaining }
func (s *GameState) MinesPlaced() bool   { return s.minesPlaced }
func (s *GameState) Status() Status      { return s.status }

// Cell returns a copy of the cell at p.
func (s *GameState) Cell(p Point) (Cell, bool) {
	if !s.grid.InBounds(p) {
		return Cell{}, false
	}
	return *s.grid.At(p), true
}

// Grid returns what the player currently sees.
func (s *GameState) Grid() GridInfo {
	info := make(GridInfo, len(s.grid.cells))
	for i, c := range s.grid.cells {
		info[i] = c.Symbol()
	}
	return info
}
