// Package journal keeps an append-only record of every move played, one
// JSON object per line, in a size-rotated file.
package journal

import (
	"fmt"
	"io"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/sweeper/internal/mines"
)

type Journal struct {
	log *logrus.Logger
}

// New opens a journal writing to path. Files roll over at 10 MB and the
// last 5 are kept for 30 days.
func New(path string) (*Journal, error) {
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     30,
		Level:      logrus.InfoLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open journal %s: %w", path, err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.InfoLevel)
	log.AddHook(hook)

	return &Journal{log: log}, nil
}

// Discard returns a journal that drops everything.
func Discard() *Journal {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Journal{log: log}
}

func NewGameID() string {
	return xid.New().String()
}

func (j *Journal) Started(gameID string, params mines.GameParams) {
	j.log.WithFields(logrus.Fields{
		"game_id":    gameID,
		"size":       params.Size,
		"mine_count": params.MineCount,
	}).Info("game started")
}

// Record logs one command. input is what the player typed; it is kept
// even when it never parsed into a command.
func (j *Journal) Record(gameID, input string, res mines.Result, err error) {
	entry := j.log.WithFields(logrus.Fields{
		"game_id":         gameID,
		"input":           input,
		"changed":         res.Changed,
		"uncovered":       res.Uncovered,
		"flags_remaining": res.FlagsRemaining,
		"status":          res.Status.String(),
	})
	if res.Command.Move != 0 {
		entry = entry.WithField("command", res.Command.String())
	}
	if err != nil {
		entry.WithError(err).Warn("command rejected")
		return
	}
	entry.Info("command applied")
}

func (j *Journal) Finished(gameID string, status mines.Status) {
	j.log.WithFields(logrus.Fields{
		"game_id": gameID,
		"status":  status.String(),
	}).Info("game over")
}

// Abandoned closes a game that was left before it was won or lost.
func (j *Journal) Abandoned(gameID string) {
	j.log.WithFields(logrus.Fields{
		"game_id": gameID,
		"status":  mines.Playing.String(),
	}).Info("game abandoned")
}
