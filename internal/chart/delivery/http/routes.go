package http

import (
	"github.com/gin-gonic/gin"

	"dashboard-srv/internal/middleware"
)

// RegisterRoutes registers the chart coordinator routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	charts := r.Group("/charts")
	charts.Use(mw.Auth())
	{
		charts.GET("", h.State)
		charts.PUT("/periods", h.SetAllPeriods)
		charts.POST("/reset", h.Reset)
		charts.GET("/:id/data", h.Data)
		charts.PUT("/:id/period", h.SetPeriod)
	}
}
