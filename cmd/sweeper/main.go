package main

import (
	"context"
	"flag"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/console"
	"github.com/vancomm/sweeper/internal/journal"
	"github.com/vancomm/sweeper/internal/logging"
	"github.com/vancomm/sweeper/internal/mines"
)

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	logger := logging.New(os.Stderr, config.Development())
	mines.Log = logger

	defaults, err := config.NewGameParams()
	if err != nil {
		logger.Error("invalid game configuration", "error", err)
		os.Exit(1)
	}

	var (
		size        = flag.Int("size", defaults.Size, "board size")
		mineCount   = flag.Int("mines", defaults.MineCount, "number of mines")
		journalPath = flag.String("journal", config.JournalPath(), "move journal file (disabled when empty)")
		seed        = flag.Uint64("seed", 0, "random seed (0 picks one)")
	)
	flag.Parse()

	params := mines.GameParams{Size: *size, MineCount: *mineCount}
	if err := params.Validate(); err != nil {
		logger.Error("invalid game configuration", "error", err)
		os.Exit(1)
	}

	var j *journal.Journal
	if *journalPath != "" {
		if j, err = journal.New(*journalPath); err != nil {
			logger.Error("failed to open journal", "error", err)
			os.Exit(1)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rnd := createRand(*seed)
	newGame := func() (*mines.GameState, error) {
		return mines.NewGame(params, rnd)
	}

	session := console.NewSession(os.Stdin, os.Stdout, newGame, j, logger)
	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("session ended", "error", err)
		os.Exit(1)
	}
}
