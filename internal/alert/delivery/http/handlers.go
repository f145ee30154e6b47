package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"dashboard-srv/internal/alert"
	"dashboard-srv/pkg/response"
)

// List returns the session's alerts, optionally filtered, paginated.
// @Summary List alerts
// @Tags Alert
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param type query string false "Filter by type (info|warning|error|success)"
// @Param active_only query bool false "Exclude dismissed alerts"
// @Success 200 {object} response.Resp{data=listResp}
// @Failure 401 {object} response.Resp
// @Router /alerts [get]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Warnf(ctx, "alert.http.List.ShouldBindQuery: %v", err)
		response.Error(c, errInvalidQuery, h.discord)
		return
	}
	req.Adjust()

	var alerts []alert.Alert
	switch {
	case req.Type != "":
		alerts = s.Alerts.ByType(alert.Type(req.Type))
	case req.ActiveOnly:
		alerts = s.Alerts.Active()
	default:
		alerts = s.Alerts.List()
	}
	if req.Type != "" && req.ActiveOnly {
		filtered := alerts[:0]
		for _, a := range alerts {
			if !a.Dismissed {
				filtered = append(filtered, a)
			}
		}
		alerts = filtered
	}

	from, to := req.Slice(len(alerts))
	response.OK(c, newListResp(alerts[from:to], req.PaginateQuery, len(alerts)))
}

// Summary returns alert counters and predicates.
// @Summary Alert summary
// @Tags Alert
// @Produce json
// @Success 200 {object} response.Resp{data=summaryResp}
// @Failure 401 {object} response.Resp
// @Router /alerts/summary [get]
func (h *Handler) Summary(c *gin.Context) {
	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, summaryResp{
		Count:       s.Alerts.Count(),
		ActiveCount: s.Alerts.ActiveCount(),
		HasWarnings: s.Alerts.HasWarnings(),
		HasErrors:   s.Alerts.HasErrors(),
	})
}

// Add creates an alert.
// @Summary Add alert
// @Tags Alert
// @Accept json
// @Produce json
// @Param body body createReq true "Alert"
// @Success 200 {object} response.Resp{data=alert.Alert}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /alerts [post]
func (h *Handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnf(ctx, "alert.http.Add.ShouldBindJSON: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	added, err := s.Alerts.Add(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, added)
}

// Dismiss flags an alert as dismissed. Unknown ids are tolerated.
// @Summary Dismiss alert
// @Tags Alert
// @Produce json
// @Param id path int true "Alert ID"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /alerts/{id}/dismiss [post]
func (h *Handler) Dismiss(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, errInvalidID, h.discord)
		return
	}

	s.Alerts.Dismiss(ctx, id)
	response.OK(c, nil)
}

// Remove deletes an alert. Unknown ids are tolerated.
// @Summary Remove alert
// @Tags Alert
// @Produce json
// @Param id path int true "Alert ID"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /alerts/{id} [delete]
func (h *Handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, errInvalidID, h.discord)
		return
	}

	s.Alerts.Remove(ctx, id)
	response.OK(c, nil)
}

// Clear empties the alert collection.
// @Summary Clear alerts
// @Tags Alert
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /alerts/clear [post]
func (h *Handler) Clear(c *gin.Context) {
	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	s.Alerts.Clear(c.Request.Context())
	response.OK(c, nil)
}

// Reset restores the seeded alerts.
// @Summary Reset alerts
// @Tags Alert
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /alerts/reset [post]
func (h *Handler) Reset(c *gin.Context) {
	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	s.Alerts.Reset(c.Request.Context())
	response.OK(c, nil)
}
