package http

import (
	"github.com/gin-gonic/gin"

	"dashboard-srv/internal/middleware"
)

// RegisterRoutes registers the note store routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	notes := r.Group("/notes")
	notes.Use(mw.Auth())
	{
		notes.GET("", h.List)
		notes.POST("", h.Add)
		notes.POST("/validate", h.Validate)
		notes.POST("/clear", h.Clear)
		notes.POST("/reset", h.Reset)
		notes.GET("/:id", h.Get)
		notes.PUT("/:id", h.Update)
		notes.DELETE("/:id", h.Delete)
	}
}
