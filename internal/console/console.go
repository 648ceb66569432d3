// Package console runs games interactively over a line-oriented reader and
// writer, normally a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vancomm/sweeper/internal/journal"
	"github.com/vancomm/sweeper/internal/mines"
	"github.com/vancomm/sweeper/internal/render"
)

const prompt = "Enter Command:\nF - Flag\nU - Unflag\nC - Uncover\n>>> "

type Session struct {
	in      io.Reader
	out     io.Writer
	newGame func() (*mines.GameState, error)
	journal *journal.Journal
	logger  *slog.Logger
}

// NewSession plays games created by newGame, one after another, until the
// input runs out. A nil journal records nothing.
func NewSession(
	in io.Reader,
	out io.Writer,
	newGame func() (*mines.GameState, error),
	j *journal.Journal,
	logger *slog.Logger,
) *Session {
	if j == nil {
		j = journal.Discard()
	}
	return &Session{
		in:      in,
		out:     out,
		newGame: newGame,
		journal: j,
		logger:  logger,
	}
}

// lines feeds s.in to the returned channel one line at a time. The channel
// is closed at end of input, after which errc holds the scanner's error.
func (s *Session) lines(ctx context.Context) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case out <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()
	return out, errc
}

// Run returns nil when the input is exhausted and the context's error once
// it is cancelled, even while waiting for input.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	input, inputErr := s.lines(ctx)

	next := func() (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case line, ok := <-input:
			if !ok {
				if err := <-inputErr; err != nil {
					return "", err
				}
				return "", io.EOF
			}
			return line, nil
		}
	}

	for {
		game, err := s.newGame()
		if err != nil {
			return fmt.Errorf("unable to start a game: %w", err)
		}
		id := journal.NewGameID()
		s.journal.Started(id, game.Params())
		s.logger.Debug("game started", slog.String("id", id), slog.String("params", game.Params().String()))

		for game.Status() == mines.Playing {
			if err := render.Write(s.out, game); err != nil {
				s.journal.Abandoned(id)
				return err
			}
			fmt.Fprint(s.out, prompt)

			line, err := next()
			if err != nil {
				s.journal.Abandoned(id)
				return ignoreEOF(err)
			}
			res, err := game.Execute(line)
			s.journal.Record(id, line, res, err)
			if err != nil {
				fmt.Fprintln(s.out, message(err))
			}
		}

		s.journal.Finished(id, game.Status())
		s.logger.Debug("game over", slog.String("id", id), slog.String("status", game.Status().String()))

		switch game.Status() {
		case mines.Won:
			if err := render.Write(s.out, game); err != nil {
				return err
			}
			fmt.Fprintln(s.out, "You Win! Congratulations!")
		case mines.Lost:
			fmt.Fprintln(s.out, "You Lose! You clicked on a mine!")
		}
		fmt.Fprintln(s.out, "<Press enter to play again>")
		if _, err := next(); err != nil {
			return ignoreEOF(err)
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func message(err error) string {
	switch {
	case errors.Is(err, mines.ErrInvalidCommand):
		return "Invalid Command"
	case errors.Is(err, mines.ErrIllegalFlagTarget):
		return "Cannot flag an uncovered cell"
	case errors.Is(err, mines.ErrIllegalUncoverTarget):
		return "Cannot uncover this cell"
	default:
		return err.Error()
	}
}
