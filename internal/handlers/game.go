package handlers

import (
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/journal"
	"github.com/vancomm/sweeper/internal/mines"
)

type GameHandler struct {
	logger  *slog.Logger
	ws      *config.WebSocket
	params  mines.GameParams
	journal *journal.Journal
}

func NewGameHandler(
	logger *slog.Logger,
	ws *config.WebSocket,
	params mines.GameParams,
	j *journal.Journal,
) *GameHandler {
	if j == nil {
		j = journal.Discard()
	}
	return &GameHandler{
		logger:  logger,
		ws:      ws,
		params:  params,
		journal: j,
	}
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// play is the game owned by one websocket connection.
type play struct {
	id   string
	game *mines.GameState
}

func (g GameHandler) newPlay(params mines.GameParams) (*play, error) {
	game, err := mines.NewGame(params, createRand())
	if err != nil {
		return nil, err
	}
	p := &play{id: journal.NewGameID(), game: game}
	g.journal.Started(p.id, params)
	return p, nil
}

// run applies newline separated commands until one fails or the game ends.
func (g GameHandler) run(p *play, text string) error {
	for _, line := range byPiece(text, "\n") {
		res, err := p.game.Execute(line)
		g.journal.Record(p.id, line, res, err)
		if err != nil {
			return err
		}
		if res.Status.Terminal() {
			g.journal.Finished(p.id, res.Status)
			g.logger.Debug("game over", slog.String("id", p.id), slog.String("status", res.Status.String()))
			return nil
		}
	}
	return nil
}

// abandon journals the end of a game that was left unfinished.
func (g GameHandler) abandon(p *play) {
	if p == nil || p.game.Status().Terminal() {
		return
	}
	g.journal.Abandoned(p.id)
	g.logger.Debug("game abandoned", slog.String("id", p.id))
}

// ConnectWS plays one game at a time over a websocket. Every text frame is
// either "new" or one or more commands, and is answered with the board.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	params, err := ParseGameParams(r.URL.Query(), g.params)
	if err != nil {
		sendJSONOrLog(w, g.logger, http.StatusBadRequest, wrapError(err))
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade connection", slog.Any("error", err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(g.ws.ReadLimit)

	p, err := g.newPlay(params)
	if err != nil {
		g.logger.Error("unable to start a game", slog.Any("error", err))
		return
	}
	defer func() { g.abandon(p) }()
	if err := conn.WriteJSON(NewGameDTO(p.id, p.game, nil)); err != nil {
		g.logger.Warn("unable to write to websocket", slog.Any("error", err))
		return
	}

	for {
		conn.SetReadDeadline(time.Now().Add(g.ws.IdleTime))
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.logger.Warn("unable to read from websocket", slog.Any("error", err))
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		text := strings.TrimSpace(string(message))
		var cmdErr error
		if text == "new" {
			g.abandon(p)
			if p, err = g.newPlay(params); err != nil {
				g.logger.Error("unable to start a game", slog.Any("error", err))
				return
			}
		} else {
			cmdErr = g.run(p, text)
		}

		if err := conn.WriteJSON(NewGameDTO(p.id, p.game, cmdErr)); err != nil {
			g.logger.Warn("unable to write to websocket", slog.Any("error", err))
			return
		}
	}
}
