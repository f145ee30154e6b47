package dashboard

import (
	"time"

	"dashboard-srv/internal/agenda"
	"dashboard-srv/internal/alert"
	"dashboard-srv/internal/chart"
	"dashboard-srv/internal/modal"
	"dashboard-srv/internal/note"
)

// Config bounds the per-user sessions and their stores.
type Config struct {
	MaxAlerts          int
	MaxNotes           int
	MaxNoteLength      int
	ExclusiveModals    bool
	MaxSessions        int
	SessionIdleTimeout time.Duration
}

// Session is the state of one user's dashboard: the five stores sharing
// a single event publisher. All stores are created together, so a
// session handed out by the registry is always fully wired.
type Session struct {
	UserID    string
	CreatedAt time.Time

	Modals modal.UseCase
	Alerts alert.UseCase
	Notes  note.UseCase
	Charts chart.UseCase
	Agenda agenda.UseCase
}

// Stats is a point-in-time view of the registry.
type Stats struct {
	ActiveSessions int `json:"active_sessions"`
	MaxSessions    int `json:"max_sessions"`
}
