package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// RealmChecker reports whether a realm exists.
type RealmChecker func(realm string) bool

// Handler for WebSocket connections
type Handler struct {
	hub      *Hub
	exists   RealmChecker
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler. allowedOrigins lists cross-origin pages
// that may connect.
func NewHandler(hub *Hub, exists RealmChecker, allowedOrigins []string, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:      hub,
		exists:   exists,
		upgrader: newUpgrader(allowedOrigins),
		logger:   logger,
	}
}

// HandleConnection godoc
// @Summary Watch a page for live changes
// @Description Upgrades the connection to a WebSocket that receives content change and editing notifications for one realm
// @Tags pages, websocket
// @Produce json
// @Param realm path string true "Realm name"
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 404 {object} dto.APIResponse "Unknown realm"
// @Router /pages/{realm}/live [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	realm := c.Param("realm")
	if !h.exists(realm) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   gin.H{"code": "RES_001", "message": "Realm not found"},
		})
		return
	}

	// Username is set by the optional auth middleware; anonymous viewers only listen
	username := c.GetString("username")

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("realm", realm).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:      h.hub,
		conn:     conn,
		send:     make(chan []byte, 256),
		username: username,
		realm:    realm,
		logger:   h.logger,
	}
	if !h.hub.add(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("realm", realm).
		Str("username", username).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}
