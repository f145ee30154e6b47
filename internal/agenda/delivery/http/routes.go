package http

import (
	"github.com/gin-gonic/gin"

	"dashboard-srv/internal/middleware"
)

// RegisterRoutes registers the meeting and activity feed routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	meetings := r.Group("/meetings")
	meetings.Use(mw.Auth())
	{
		meetings.GET("", h.ListMeetings)
		meetings.POST("", h.AddMeeting)
		meetings.PATCH("/:id", h.UpdateMeeting)
		meetings.DELETE("/:id", h.RemoveMeeting)
	}

	activities := r.Group("/activities")
	activities.Use(mw.Auth())
	{
		activities.GET("", h.ListActivities)
		activities.POST("", h.AddActivity)
		activities.DELETE("/:id", h.RemoveActivity)
	}

	agenda := r.Group("/agenda")
	agenda.Use(mw.Auth())
	{
		agenda.POST("/reset", h.Reset)
	}
}
