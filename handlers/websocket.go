package handlers

import (
	"net/http"

	"starwars-server/logger"
	"starwars-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// WSHandler serves the catalog change feed
type WSHandler struct {
	mgr *ws.Manager
	log zerolog.Logger
}

func NewWSHandler(mgr *ws.Manager, log zerolog.Logger) *WSHandler {
	return &WSHandler{mgr: mgr, log: logger.Component(log, "ws_handler")}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleEvents upgrades to websocket and streams catalog events
// GET /ws/events
func (h *WSHandler) HandleEvents(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	id := h.mgr.Register(conn)
	h.log.Info().Str("subscriber", id).Msg("subscriber connected")

	defer func() {
		h.mgr.Unregister(id)
		h.log.Info().Str("subscriber", id).Msg("subscriber disconnected")
	}()

	// The feed is one way; reading only detects the client going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug().Err(err).Str("subscriber", id).Msg("read error")
			}
			return
		}
	}
}

// GetSubscribers GET /ws/subscribers
func (h *WSHandler) GetSubscribers(c *gin.Context) {
	subs := h.mgr.List()
	c.JSON(http.StatusOK, gin.H{"subscribers": subs, "count": len(subs)})
}
