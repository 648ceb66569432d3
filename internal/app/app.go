package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/journal"
	"github.com/vancomm/sweeper/internal/middleware"
	"github.com/vancomm/sweeper/internal/mines"
)

type App struct {
	logger  *slog.Logger
	router  *http.ServeMux
	params  mines.GameParams
	journal *journal.Journal
	ws      *config.WebSocket
}

func New(logger *slog.Logger, params mines.GameParams, j *journal.Journal) *App {
	return &App{
		logger:  logger,
		router:  http.NewServeMux(),
		params:  params,
		journal: j,
	}
}

// Handler builds the routes and middleware chain.
func (a *App) Handler() (http.Handler, error) {
	ws, err := config.NewWebSocket()
	if err != nil {
		return nil, err
	}
	a.ws = ws

	a.loadRoutes()

	return middleware.Wrap(
		a.router,
		middleware.Logging(a.logger),
		middleware.Cors(config.AllowedOrigins()...),
	), nil
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Start(ctx context.Context, addr string) error {
	handler, err := a.Handler()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening", slog.String("addr", addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
