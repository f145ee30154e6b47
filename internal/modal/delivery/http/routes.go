package http

import (
	"github.com/gin-gonic/gin"

	"dashboard-srv/internal/middleware"
)

// RegisterRoutes registers the modal registry routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	modals := r.Group("/modals")
	modals.Use(mw.Auth())
	{
		modals.GET("", h.State)
		modals.POST("/close-all", h.CloseAll)
		modals.POST("/:id/open", h.Open)
		modals.POST("/:id/close", h.Close)
		modals.POST("/:id/toggle", h.Toggle)
	}
}
