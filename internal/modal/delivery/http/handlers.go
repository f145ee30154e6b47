package http

import (
	"github.com/gin-gonic/gin"

	"dashboard-srv/pkg/response"
)

// Open opens a modal.
// @Summary Open modal
// @Description Open a modal by id. In exclusive mode any other open modal is closed first.
// @Tags Modal
// @Accept json
// @Produce json
// @Param id path string true "Modal ID"
// @Param body body openReq false "Open options"
// @Success 200 {object} response.Resp{data=stateResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /modals/{id}/open [post]
func (h *Handler) Open(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	var req openReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnf(ctx, "modal.http.Open.ShouldBindJSON: %v", err)
			response.Error(c, errInvalidBody, h.discord)
			return
		}
	}

	if err := s.Modals.Open(ctx, req.toInput(c.Param("id"))); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, newStateResp(s.Modals.State()))
}

// Close closes a modal. Unknown ids are tolerated silently.
// @Summary Close modal
// @Tags Modal
// @Produce json
// @Param id path string true "Modal ID"
// @Success 200 {object} response.Resp{data=stateResp}
// @Failure 401 {object} response.Resp
// @Router /modals/{id}/close [post]
func (h *Handler) Close(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	s.Modals.Close(ctx, c.Param("id"))
	response.OK(c, newStateResp(s.Modals.State()))
}

// Toggle toggles a modal.
// @Summary Toggle modal
// @Tags Modal
// @Accept json
// @Produce json
// @Param id path string true "Modal ID"
// @Param body body openReq false "Open options applied when toggling open"
// @Success 200 {object} response.Resp{data=stateResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /modals/{id}/toggle [post]
func (h *Handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	var req openReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnf(ctx, "modal.http.Toggle.ShouldBindJSON: %v", err)
			response.Error(c, errInvalidBody, h.discord)
			return
		}
	}

	if err := s.Modals.Toggle(ctx, req.toInput(c.Param("id"))); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, newStateResp(s.Modals.State()))
}

// CloseAll closes every open modal.
// @Summary Close all modals
// @Tags Modal
// @Produce json
// @Success 200 {object} response.Resp{data=stateResp}
// @Failure 401 {object} response.Resp
// @Router /modals/close-all [post]
func (h *Handler) CloseAll(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	s.Modals.CloseAll(ctx)
	response.OK(c, newStateResp(s.Modals.State()))
}

// State returns the modal registry snapshot.
// @Summary Modal state
// @Tags Modal
// @Produce json
// @Success 200 {object} response.Resp{data=stateResp}
// @Failure 401 {object} response.Resp
// @Router /modals [get]
func (h *Handler) State(c *gin.Context) {
	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, newStateResp(s.Modals.State()))
}
