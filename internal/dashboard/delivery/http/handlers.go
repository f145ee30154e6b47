package http

import (
	"github.com/gin-gonic/gin"

	"dashboard-srv/pkg/response"
)

// Snapshot returns the whole session state in one response so a fresh
// client can render without five round trips.
// @Summary Dashboard snapshot
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Resp{data=snapshotResp}
// @Failure 401 {object} response.Resp
// @Router /dashboard [get]
func (h *Handler) Snapshot(c *gin.Context) {
	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, newSnapshotResp(s))
}

// ResetData restores the session's agenda and chart periods to their
// seeds.
// @Summary Reset dashboard data
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /dashboard/reset-data [post]
func (h *Handler) ResetData(c *gin.Context) {
	ctx := c.Request.Context()

	_, sc, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.sessions.ResetData(ctx, sc); err != nil {
		response.Error(c, err, h.discord)
		return
	}
	response.OK(c, nil)
}

// DropSession discards the caller's session entirely.
// @Summary Drop dashboard session
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /dashboard/session [delete]
func (h *Handler) DropSession(c *gin.Context) {
	ctx := c.Request.Context()

	_, sc, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	h.sessions.Drop(ctx, sc.UserID)
	response.OK(c, nil)
}

// Stats returns registry counters. Admin only.
// @Summary Session registry stats
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Resp{data=dashboard.Stats}
// @Failure 401 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /dashboard/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	_, sc, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	if !sc.IsAdmin() {
		response.Forbidden(c)
		return
	}

	response.OK(c, h.sessions.Stats())
}
