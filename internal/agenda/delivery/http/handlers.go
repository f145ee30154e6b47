package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"dashboard-srv/internal/agenda"
	"dashboard-srv/pkg/paginator"
	"dashboard-srv/pkg/response"
)

// ListMeetings returns the session's meetings, paginated.
// @Summary List meetings
// @Tags Agenda
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param view query string false "View (all|upcoming|past)"
// @Success 200 {object} response.Resp{data=listMeetingsResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /meetings [get]
func (h *Handler) ListMeetings(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	var req listMeetingsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Warnf(ctx, "agenda.http.ListMeetings.ShouldBindQuery: %v", err)
		response.Error(c, errInvalidQuery, h.discord)
		return
	}
	req.Adjust()

	var meetings []agenda.Meeting
	switch req.View {
	case "", "all":
		meetings = s.Agenda.Meetings()
	case "upcoming":
		meetings = s.Agenda.UpcomingMeetings(time.Now())
	case "past":
		meetings = s.Agenda.PastMeetings(time.Now())
	default:
		response.Error(c, errInvalidView, h.discord)
		return
	}

	from, to := req.Slice(len(meetings))
	response.OK(c, listMeetingsResp{
		Meetings:  meetings[from:to],
		Paginator: paginator.New(req.PaginateQuery, len(meetings), to-from).ToResponse(),
	})
}

// AddMeeting schedules a meeting.
// @Summary Add meeting
// @Tags Agenda
// @Accept json
// @Produce json
// @Param body body createMeetingReq true "Meeting"
// @Success 200 {object} response.Resp{data=agenda.Meeting}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /meetings [post]
func (h *Handler) AddMeeting(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	var req createMeetingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnf(ctx, "agenda.http.AddMeeting.ShouldBindJSON: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	added, err := s.Agenda.AddMeeting(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, added)
}

// UpdateMeeting patches a meeting.
// @Summary Update meeting
// @Tags Agenda
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param body body updateMeetingReq true "Fields to replace"
// @Success 200 {object} response.Resp{data=agenda.Meeting}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /meetings/{id} [patch]
func (h *Handler) UpdateMeeting(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	var req updateMeetingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnf(ctx, "agenda.http.UpdateMeeting.ShouldBindJSON: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	updated, err := s.Agenda.UpdateMeeting(ctx, c.Param("id"), req.toPatch())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, updated)
}

// RemoveMeeting deletes a meeting. Unknown ids are tolerated.
// @Summary Remove meeting
// @Tags Agenda
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /meetings/{id} [delete]
func (h *Handler) RemoveMeeting(c *gin.Context) {
	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	s.Agenda.RemoveMeeting(c.Request.Context(), c.Param("id"))
	response.OK(c, nil)
}

// ListActivities returns the activity feed, newest first, paginated.
// @Summary List activities
// @Tags Agenda
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param type query string false "Filter by activity type"
// @Param priority query string false "Filter by priority (low|medium|high)"
// @Param recent query int false "Cap to the newest N entries"
// @Success 200 {object} response.Resp{data=listActivitiesResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /activities [get]
func (h *Handler) ListActivities(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	var req listActivitiesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Warnf(ctx, "agenda.http.ListActivities.ShouldBindQuery: %v", err)
		response.Error(c, errInvalidQuery, h.discord)
		return
	}
	req.Adjust()

	var activities []agenda.Activity
	switch {
	case req.Type != "":
		activities = s.Agenda.ActivitiesByType(req.Type)
	case req.Priority != "":
		activities = s.Agenda.ActivitiesByPriority(agenda.Priority(req.Priority))
	case req.Recent > 0:
		activities = s.Agenda.RecentActivities(req.Recent)
	default:
		activities = s.Agenda.Activities()
	}

	from, to := req.Slice(len(activities))
	response.OK(c, listActivitiesResp{
		Activities: activities[from:to],
		Paginator:  paginator.New(req.PaginateQuery, len(activities), to-from).ToResponse(),
	})
}

// AddActivity records an activity feed entry.
// @Summary Add activity
// @Tags Agenda
// @Accept json
// @Produce json
// @Param body body createActivityReq true "Activity"
// @Success 200 {object} response.Resp{data=agenda.Activity}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /activities [post]
func (h *Handler) AddActivity(c *gin.Context) {
	ctx := c.Request.Context()

	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	var req createActivityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnf(ctx, "agenda.http.AddActivity.ShouldBindJSON: %v", err)
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	added, err := s.Agenda.AddActivity(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, added)
}

// RemoveActivity deletes an activity entry. Unknown ids are tolerated.
// @Summary Remove activity
// @Tags Agenda
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /activities/{id} [delete]
func (h *Handler) RemoveActivity(c *gin.Context) {
	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	s.Agenda.RemoveActivity(c.Request.Context(), c.Param("id"))
	response.OK(c, nil)
}

// Reset restores meetings and activities to their seeds.
// @Summary Reset agenda
// @Tags Agenda
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /agenda/reset [post]
func (h *Handler) Reset(c *gin.Context) {
	s, _, err := h.session(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	s.Agenda.ResetAll(c.Request.Context())
	response.OK(c, nil)
}
