package app

import (
	"github.com/vancomm/sweeper/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.logger, a.ws, a.params, a.journal)

	a.router.HandleFunc("GET /healthz", handlers.Health)
	a.router.HandleFunc("GET /game/connect", game.ConnectWS)
}
