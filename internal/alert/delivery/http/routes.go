package http

import (
	"github.com/gin-gonic/gin"

	"dashboard-srv/internal/middleware"
)

// RegisterRoutes registers the alert store routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	alerts := r.Group("/alerts")
	alerts.Use(mw.Auth())
	{
		alerts.GET("", h.List)
		alerts.GET("/summary", h.Summary)
		alerts.POST("", h.Add)
		alerts.POST("/clear", h.Clear)
		alerts.POST("/reset", h.Reset)
		alerts.POST("/:id/dismiss", h.Dismiss)
		alerts.DELETE("/:id", h.Remove)
	}
}
