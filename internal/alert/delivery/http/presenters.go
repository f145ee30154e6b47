package http

import (
	"dashboard-srv/internal/alert"
	"dashboard-srv/pkg/paginator"
)

type createReq struct {
	Message string `json:"message" binding:"required"`
	Type    string `json:"type"`
	Time    string `json:"time"`
}

func (r createReq) toInput() alert.CreateInput {
	return alert.CreateInput{
		Message: r.Message,
		Type:    alert.Type(r.Type),
		Time:    r.Time,
	}
}

type listReq struct {
	paginator.PaginateQuery
	// Type filters by alert type when set.
	Type string `form:"type"`
	// ActiveOnly drops dismissed alerts from the listing.
	ActiveOnly bool `form:"active_only"`
}

type listResp struct {
	Alerts    []alert.Alert               `json:"alerts"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListResp(window []alert.Alert, q paginator.PaginateQuery, total int) listResp {
	return listResp{
		Alerts:    window,
		Paginator: paginator.New(q, total, len(window)).ToResponse(),
	}
}

type summaryResp struct {
	Count       int  `json:"count"`
	ActiveCount int  `json:"active_count"`
	HasWarnings bool `json:"has_warnings"`
	HasErrors   bool `json:"has_errors"`
}
