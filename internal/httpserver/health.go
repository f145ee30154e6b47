package httpserver

import (
	"github.com/gin-gonic/gin"

	"dashboard-srv/pkg/errors"
	"dashboard-srv/pkg/response"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the dashboard service is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func (s *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	redisStatus := "disabled"
	if s.redis != nil {
		if err := s.redis.Ping(ctx); err != nil {
			response.HttpError(c, errors.NewHTTPError(50300, "Redis connection failed", 503))
			return
		}
		redisStatus = "connected"
	}

	connections, users := s.hub.Stats()
	sessionStats := s.sessions.Stats()

	response.OK(c, gin.H{
		"status":             "healthy",
		"service":            "dashboard-srv",
		"version":            "1.0.0",
		"active_connections": connections,
		"connected_users":    users,
		"active_sessions":    sessionStats.ActiveSessions,
		"redis":              redisStatus,
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the dashboard service is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} map[string]interface{} "Service is not ready"
// @Router /ready [get]
func (s *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if s.redis != nil {
		if err := s.redis.Ping(ctx); err != nil {
			response.HttpError(c, errors.NewHTTPError(50300, "Redis connection not available", 503))
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "dashboard-srv",
		"version": "1.0.0",
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the dashboard service is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (s *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "dashboard-srv",
		"version": "1.0.0",
	})
}
