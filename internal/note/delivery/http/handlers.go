package http

import (
	"github.com/gin-gonic/gin"

	"dashboard-srv/internal/note"
	"dashboard-srv/pkg/paginator"
	"dashboard-srv/pkg/response"
)

// List returns the session's notes, newest first, paginated.
// @Summary List notes
// @Tags Note
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param search query string false "Case-insensitive substring filter"
// @Success 200 {object} response.Resp{data=listResp}
// @Failure 401 {object} response.Resp
// @Router /notes [get]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Warnf(ctx, "note.http.List.ShouldBindQuery: %v", err)
		response.Error(c, errInvalidQuery, h.discord)
		return
	}
	req.Adjust()

	var notes []note.Note
	if req.Search != "" {
		notes = s.Notes.Search(req.Search)
	} else {
		notes = s.Notes.List()
	}

	from, to := req.Slice(len(notes))
	response.OK(c, listResp{
		Notes:             notes[from:to],
		Count:             s.Notes.Count(),
		AtLimit:           s.Notes.AtLimit(),
		RemainingCapacity: s.Notes.RemainingCapacity(),
		Paginator:         paginator.New(req.PaginateQuery, len(notes), to-from).ToResponse(),
	})
}

// Get returns one note by id.
// @Summary Get note
// @Tags Note
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} response.Resp{data=note.Note}
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /notes/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	n, ok := s.Notes.GetByID(c.Param("id"))
	if !ok {
		response.Error(c, h.mapError(note.ErrNoteNotFound), h.discord)
		return
	}
	response.OK(c, n)
}

// Add creates a note.
// @Summary Add note
// @Tags Note
// @Accept json
// @Produce json
// @Param body body contentReq true "Note content"
// @Success 200 {object} response.Resp{data=note.Note}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /notes [post]
func (h *Handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	var req contentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnf(ctx, "note.http.Add.ShouldBindJSON: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	added, err := s.Notes.Add(ctx, req.Content)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, added)
}

// Validate runs the pre-flight content check without mutating anything.
// @Summary Validate note content
// @Tags Note
// @Accept json
// @Produce json
// @Param body body contentReq true "Note content"
// @Success 200 {object} response.Resp{data=validateResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /notes/validate [post]
func (h *Handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	var req contentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnf(ctx, "note.http.Validate.ShouldBindJSON: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	if err := s.Notes.Validate(req.Content); err != nil {
		response.OK(c, validateResp{Valid: false, Reason: err.Error()})
		return
	}
	response.OK(c, validateResp{Valid: true})
}

// Update replaces a note's content.
// @Summary Update note
// @Tags Note
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param body body contentReq true "New content"
// @Success 200 {object} response.Resp{data=note.Note}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /notes/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	var req contentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnf(ctx, "note.http.Update.ShouldBindJSON: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	updated, err := s.Notes.Update(ctx, c.Param("id"), req.Content)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, updated)
}

// Delete removes a note. Unknown ids are tolerated.
// @Summary Delete note
// @Tags Note
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /notes/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	s.Notes.Delete(c.Request.Context(), c.Param("id"))
	response.OK(c, nil)
}

// Clear empties the note collection.
// @Summary Clear notes
// @Tags Note
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /notes/clear [post]
func (h *Handler) Clear(c *gin.Context) {
	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	s.Notes.Clear(c.Request.Context())
	response.OK(c, nil)
}

// Reset restores the seeded notes.
// @Summary Reset notes
// @Tags Note
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /notes/reset [post]
func (h *Handler) Reset(c *gin.Context) {
	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	s.Notes.Reset(c.Request.Context())
	response.OK(c, nil)
}
