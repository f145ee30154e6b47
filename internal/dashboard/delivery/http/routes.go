package http

import (
	"github.com/gin-gonic/gin"

	"dashboard-srv/internal/middleware"
)

// RegisterRoutes registers the dashboard session routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	db := r.Group("/dashboard")
	db.Use(mw.Auth())
	{
		db.GET("", h.Snapshot)
		db.POST("/reset-data", h.ResetData)
		db.DELETE("/session", h.DropSession)
		db.GET("/stats", h.Stats)
	}
}
