package handlers

import (
	"net/http"

	"distracto-server/logger"
	"distracto-server/middleware"
	"distracto-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	manager *ws.Manager
	log     *logger.Logger
}

func NewWSHandler(manager *ws.Manager, log *logger.Logger) *WSHandler {
	return &WSHandler{manager: manager, log: log.With("handler", "ws")}
}

// Handle upgrades GET /ws and parks the connection in the caller's room until
// it drops. Inbound frames are discarded; the channel is push-only.
func (h *WSHandler) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error("websocket upgrade failed", "error", err)
		return
	}

	userID := middleware.UserID(c)
	h.manager.Join(userID, conn)
	h.log.Info("websocket connected", "userId", userID)

	defer func() {
		h.manager.Leave(userID, conn)
		h.log.Info("websocket disconnected", "userId", userID)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
