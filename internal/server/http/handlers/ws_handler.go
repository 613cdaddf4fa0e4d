package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Parallaxx203/audifyx-backend/internal/realtime"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
)

// WSHandler bridges hub subscriptions onto websocket connections.
type WSHandler struct {
	facade   MessageFacade
	hub      *realtime.Hub
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates WSHandler instance.
func NewWSHandler(facade MessageFacade, hub *realtime.Hub, logger *slog.Logger) *WSHandler {
	return &WSHandler{
		facade: facade,
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Connect handles GET /api/ws?topics=dm:1:2,group:5. Topics the caller may
// not read are rejected before the upgrade.
func (h *WSHandler) Connect(c *gin.Context) {
	userID := CurrentUserID(c)

	topics := splitTopics(c.Query("topics"))
	if len(topics) == 0 {
		c.Status(http.StatusBadRequest)
		return
	}
	for _, topic := range topics {
		if !h.facade.CanSubscribe(c.Request.Context(), userID, topic) {
			c.Status(http.StatusForbidden)
			return
		}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	subs := make([]*realtime.Subscription, 0, len(topics))
	for _, topic := range topics {
		subs = append(subs, h.hub.Subscribe(topic))
	}

	events := make(chan realtime.Event, len(subs)*4)
	done := make(chan struct{})
	for _, sub := range subs {
		go func(sub *realtime.Subscription) {
			for ev := range sub.Events {
				select {
				case events <- ev:
				case <-done:
					return
				}
			}
		}(sub)
	}

	go h.readLoop(conn, done)
	h.writeLoop(conn, events, done)

	for _, sub := range subs {
		h.hub.Unsubscribe(sub)
	}
}

// readLoop drains client frames so pong handlers run, closing done when the
// peer goes away.
func (h *WSHandler) readLoop(conn *websocket.Conn, done chan struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *WSHandler) writeLoop(conn *websocket.Conn, events <-chan realtime.Event, done <-chan struct{}) {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case ev := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func splitTopics(raw string) []string {
	parts := strings.Split(raw, ",")
	topics := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			topics = append(topics, p)
		}
	}
	return topics
}
