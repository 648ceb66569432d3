package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vancomm/sweeper/internal/app"
	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/journal"
	"github.com/vancomm/sweeper/internal/logging"
	"github.com/vancomm/sweeper/internal/mines"
)

func main() {
	logger := logging.New(os.Stderr, config.Development())
	mines.Log = logger

	params, err := config.NewGameParams()
	if err != nil {
		logger.Error("invalid game configuration", slog.Any("error", err))
		os.Exit(1)
	}

	j := journal.Discard()
	if path := config.JournalPath(); path != "" {
		if j, err = journal.New(path); err != nil {
			logger.Error("failed to open journal", slog.Any("error", err))
			os.Exit(1)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	addr := config.Addr()
	logger.Info("starting up",
		slog.String("addr", addr),
		slog.String("params", params.String()),
	)

	if err := app.New(logger, *params, j).Start(ctx, addr); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
