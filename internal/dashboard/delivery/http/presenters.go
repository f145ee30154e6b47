package http

import (
	"dashboard-srv/internal/agenda"
	"dashboard-srv/internal/alert"
	"dashboard-srv/internal/chart"
	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/modal"
	"dashboard-srv/internal/note"
)

type chartsResp struct {
	State          chart.State             `json:"state"`
	ActivityData   []chart.ActivityPoint   `json:"activity_data"`
	ConversionData []chart.ConversionPoint `json:"conversion_data"`
	SourceData     []chart.SourcePoint     `json:"source_data"`
}

type snapshotResp struct {
	Modals     modal.State       `json:"modals"`
	Alerts     []alert.Alert     `json:"alerts"`
	Notes      []note.Note       `json:"notes"`
	Charts     chartsResp        `json:"charts"`
	Meetings   []agenda.Meeting  `json:"meetings"`
	Activities []agenda.Activity `json:"activities"`
}

func newSnapshotResp(s *dashboard.Session) snapshotResp {
	return snapshotResp{
		Modals: s.Modals.State(),
		Alerts: s.Alerts.List(),
		Notes:  s.Notes.List(),
		Charts: chartsResp{
			State:          s.Charts.State(),
			ActivityData:   s.Charts.ActivityData(),
			ConversionData: s.Charts.ConversionData(),
			SourceData:     s.Charts.SourceData(),
		},
		Meetings:   s.Agenda.Meetings(),
		Activities: s.Agenda.Activities(),
	}
}
