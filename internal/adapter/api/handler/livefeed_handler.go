package handler

import (
	"net/http"

	"github.com/google/uuid"
	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"jaybesin/internal/infrastructure/websocket"
	"jaybesin/internal/usecase"
	"jaybesin/pkg/errors"
)

// LiveFeedHandler upgrades dashboard connections onto the live feed.
type LiveFeedHandler struct {
	hub      *websocket.Hub
	liveFeed *usecase.LiveFeedUseCase
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Restrict this in production
	},
}

func NewLiveFeedHandler(hub *websocket.Hub, liveFeed *usecase.LiveFeedUseCase) *LiveFeedHandler {
	return &LiveFeedHandler{
		hub:      hub,
		liveFeed: liveFeed,
	}
}

// HandleLiveFeed upgrades the connection, primes the client with the
// current snapshot of every collection, then streams further events.
func (h *LiveFeedHandler) HandleLiveFeed(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return errors.Unauthorized("Authentication required", nil)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &websocket.Client{
		ID:   uid + ":" + uuid.NewString(),
		Conn: conn,
		Send: make(chan []byte, 64),
	}

	// Queue the current snapshots before the client is registered so the
	// prime always precedes any broadcast it would receive.
	for _, event := range h.liveFeed.Events() {
		client.Send <- event
	}

	h.hub.Register <- client

	go client.ReadPump(h.hub)
	go client.WritePump()

	return nil
}
