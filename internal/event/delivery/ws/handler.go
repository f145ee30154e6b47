package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"dashboard-srv/internal/event"
	"dashboard-srv/internal/event/usecase"
	"dashboard-srv/pkg/log"
	"dashboard-srv/pkg/response"
	"dashboard-srv/pkg/scope"
)

// Config holds WebSocket timing and buffer configuration.
type Config struct {
	PingInterval    time.Duration
	PongWait        time.Duration
	WriteWait       time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
}

// Handler upgrades HTTP requests to WebSocket connections registered
// with the event hub.
type Handler struct {
	hub    *usecase.Hub
	jwtMgr scope.Manager
	logger log.Logger
	cfg    Config
}

func New(hub *usecase.Hub, jwtMgr scope.Manager, logger log.Logger, cfg Config) *Handler {
	return &Handler{
		hub:    hub,
		jwtMgr: jwtMgr,
		logger: logger,
		cfg:    cfg,
	}
}

// RegisterRoutes registers the WebSocket endpoint.
// Auth is enforced inside the handler because the browser WebSocket API
// cannot set an Authorization header; the token arrives as a query param.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/ws", h.HandleWebSocket)
}

// HandleWebSocket upgrades the HTTP connection to a WebSocket connection.
// @Summary Connect to the event stream
// @Description Upgrade HTTP to WebSocket to receive state-change events for the authenticated user's dashboard session.
// @Tags Events
// @Param token query string true "JWT Token"
// @Success 101 {string} string "Switching Protocols"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 503 {object} response.Resp "Maximum connections reached"
// @Router /ws [get]
func (h *Handler) HandleWebSocket(c *gin.Context) {
	ctx := c.Request.Context()

	token := c.Query("token")
	if token == "" {
		h.logger.Warn(ctx, "WebSocket connection rejected: missing token")
		response.Error(c, h.mapError(event.ErrMissingToken), nil)
		return
	}

	payload, err := h.jwtMgr.Verify(token)
	if err != nil {
		h.logger.Warnf(ctx, "WebSocket connection rejected: %v", err)
		response.Error(c, h.mapError(event.ErrInvalidToken), nil)
		return
	}
	sc := scope.NewScope(payload)

	upgrader := websocket.Upgrader{
		ReadBufferSize:  h.cfg.ReadBufferSize,
		WriteBufferSize: h.cfg.WriteBufferSize,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorf(ctx, "WebSocket upgrade failed: %v", err)
		return
	}

	connection := usecase.NewConnection(h.hub, conn, sc.UserID, usecase.ConnConfig{
		PongWait:       h.cfg.PongWait,
		PingPeriod:     h.cfg.PingInterval,
		WriteWait:      h.cfg.WriteWait,
		MaxMessageSize: h.cfg.MaxMessageSize,
	}, h.logger)

	if err := h.hub.Register(connection); err != nil {
		h.logger.Errorf(ctx, "WebSocket register failed: %v", err)
		conn.Close()
		return
	}
	connection.Start()

	h.logger.Infof(ctx, "WebSocket connection established for user: %s", sc.UserID)
}
