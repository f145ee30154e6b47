package http

import (
	"time"

	"dashboard-srv/internal/agenda"
	"dashboard-srv/pkg/paginator"
)

type createMeetingReq struct {
	Title       string    `json:"title" binding:"required"`
	Client      string    `json:"client"`
	ClientEmail string    `json:"client_email"`
	Date        time.Time `json:"date" binding:"required"`
	Time        string    `json:"time"`
	Duration    string    `json:"duration"`
	Type        string    `json:"type" binding:"required"`
	Reason      string    `json:"reason"`
}

func (r createMeetingReq) toInput() agenda.CreateMeetingInput {
	return agenda.CreateMeetingInput{
		Title:       r.Title,
		Client:      r.Client,
		ClientEmail: r.ClientEmail,
		Date:        r.Date,
		Time:        r.Time,
		Duration:    r.Duration,
		Type:        agenda.MeetingType(r.Type),
		Reason:      r.Reason,
	}
}

type updateMeetingReq struct {
	Title       *string    `json:"title"`
	Client      *string    `json:"client"`
	ClientEmail *string    `json:"client_email"`
	Date        *time.Time `json:"date"`
	Time        *string    `json:"time"`
	Duration    *string    `json:"duration"`
	Type        *string    `json:"type"`
	Reason      *string    `json:"reason"`
}

func (r updateMeetingReq) toPatch() agenda.MeetingPatch {
	patch := agenda.MeetingPatch{
		Title:       r.Title,
		Client:      r.Client,
		ClientEmail: r.ClientEmail,
		Date:        r.Date,
		Time:        r.Time,
		Duration:    r.Duration,
		Reason:      r.Reason,
	}
	if r.Type != nil {
		t := agenda.MeetingType(*r.Type)
		patch.Type = &t
	}
	return patch
}

type listMeetingsReq struct {
	paginator.PaginateQuery
	// View selects all, upcoming or past meetings.
	View string `form:"view"`
}

type listMeetingsResp struct {
	Meetings  []agenda.Meeting            `json:"meetings"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type createActivityReq struct {
	Type        string    `json:"type"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Entity      string    `json:"entity"`
	Timestamp   time.Time `json:"timestamp"`
	Priority    string    `json:"priority"`
	Amount      float64   `json:"amount"`
}

func (r createActivityReq) toInput() agenda.CreateActivityInput {
	return agenda.CreateActivityInput{
		Type:        r.Type,
		Title:       r.Title,
		Description: r.Description,
		Entity:      r.Entity,
		Timestamp:   r.Timestamp,
		Priority:    agenda.Priority(r.Priority),
		Amount:      r.Amount,
	}
}

type listActivitiesReq struct {
	paginator.PaginateQuery
	Type     string `form:"type"`
	Priority string `form:"priority"`
	// Recent caps the feed to the newest N entries before pagination.
	Recent int `form:"recent"`
}

type listActivitiesResp struct {
	Activities []agenda.Activity           `json:"activities"`
	Paginator  paginator.PaginatorResponse `json:"paginator"`
}
