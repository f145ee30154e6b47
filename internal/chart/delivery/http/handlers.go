package http

import (
	"github.com/gin-gonic/gin"

	"dashboard-srv/internal/chart"
	"dashboard-srv/pkg/response"
)

type periodReq struct {
	Period string `json:"period" binding:"required"`
}

// State returns the period selectors and the sync predicate.
// @Summary Chart state
// @Tags Chart
// @Produce json
// @Success 200 {object} response.Resp{data=chart.State}
// @Failure 401 {object} response.Resp
// @Router /charts [get]
func (h *Handler) State(c *gin.Context) {
	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, s.Charts.State())
}

// Data returns the dataset of one chart for its current period.
// @Summary Chart data
// @Tags Chart
// @Produce json
// @Param id path string true "Chart ID (activity|conversion|source)"
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /charts/{id}/data [get]
func (h *Handler) Data(c *gin.Context) {
	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	switch chart.ID(c.Param("id")) {
	case chart.ChartActivity:
		response.OK(c, s.Charts.ActivityData())
	case chart.ChartConversion:
		response.OK(c, s.Charts.ConversionData())
	case chart.ChartSource:
		response.OK(c, s.Charts.SourceData())
	default:
		response.Error(c, errUnknownChart, h.discord)
	}
}

// SetPeriod sets the period of one chart. Unknown chart ids are a no-op
// by design so generic dispatch stays branch free on the client.
// @Summary Set chart period
// @Tags Chart
// @Accept json
// @Produce json
// @Param id path string true "Chart ID (activity|conversion|source)"
// @Param body body periodReq true "Period (week|month|year)"
// @Success 200 {object} response.Resp{data=chart.State}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /charts/{id}/period [put]
func (h *Handler) SetPeriod(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	var req periodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnf(ctx, "chart.http.SetPeriod.ShouldBindJSON: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	set := s.Charts.PeriodSetter(chart.ID(c.Param("id")))
	if err := set(ctx, chart.Period(req.Period)); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, s.Charts.State())
}

// SetAllPeriods applies one period to every chart.
// @Summary Set all chart periods
// @Tags Chart
// @Accept json
// @Produce json
// @Param body body periodReq true "Period (week|month|year)"
// @Success 200 {object} response.Resp{data=chart.State}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /charts/periods [put]
func (h *Handler) SetAllPeriods(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	var req periodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnf(ctx, "chart.http.SetAllPeriods.ShouldBindJSON: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	if err := s.Charts.SetAllPeriods(ctx, chart.Period(req.Period)); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, s.Charts.State())
}

// Reset restores every chart to the default period.
// @Summary Reset chart periods
// @Tags Chart
// @Produce json
// @Success 200 {object} response.Resp{data=chart.State}
// @Failure 401 {object} response.Resp
// @Router /charts/reset [post]
func (h *Handler) Reset(c *gin.Context) {
	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	s.Charts.ResetPeriods(c.Request.Context())
	response.OK(c, s.Charts.State())
}
