package config

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader  websocket.Upgrader
	ReadLimit int64
	IdleTime  time.Duration
}

func NewWebSocket() (*WebSocket, error) {
	idle := 10 * time.Minute
	if s, ok := os.LookupEnv("SWEEPER_WS_IDLE"); ok {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("unable to parse SWEEPER_WS_IDLE: %w", err)
		}
		idle = d
	}

	ws := &WebSocket{
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		ReadLimit: 4096,
		IdleTime:  idle,
	}

	return ws, nil
}
