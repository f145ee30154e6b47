package http

import (
	"dashboard-srv/internal/note"
	"dashboard-srv/pkg/paginator"
)

type contentReq struct {
	Content string `json:"content" binding:"required"`
}

type listReq struct {
	paginator.PaginateQuery
	// Search filters notes by case-insensitive substring when set.
	Search string `form:"search"`
}

type listResp struct {
	Notes             []note.Note                 `json:"notes"`
	Count             int                         `json:"count"`
	AtLimit           bool                        `json:"at_limit"`
	RemainingCapacity int                         `json:"remaining_capacity"`
	Paginator         paginator.PaginatorResponse `json:"paginator"`
}

type validateResp struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}
