package usecase

import (
	"errors"
	"sync"

	"dashboard-srv/internal/agenda"
	"dashboard-srv/internal/event"
	"dashboard-srv/pkg/log"
)

var (
	errLoggerRequired    = errors.New("agenda: logger is required")
	errPublisherRequired = errors.New("agenda: event publisher is required")
)

type store struct {
	l      log.Logger
	pub    event.Publisher
	userID string

	mu             sync.Mutex
	meetings       []agenda.Meeting
	activities     []agenda.Activity
	seedMeetings   []agenda.Meeting
	seedActivities []agenda.Activity
}

// New creates an agenda store seeded with the given meetings and
// activities.
func New(l log.Logger, seedMeetings []agenda.Meeting, seedActivities []agenda.Activity, pub event.Publisher, userID string) (agenda.UseCase, error) {
	if l == nil {
		return nil, errLoggerRequired
	}
	if pub == nil {
		return nil, errPublisherRequired
	}
	s := &store{
		l:              l,
		pub:            pub,
		userID:         userID,
		seedMeetings:   append([]agenda.Meeting(nil), seedMeetings...),
		seedActivities: append([]agenda.Activity(nil), seedActivities...),
	}
	s.meetings = append([]agenda.Meeting(nil), seedMeetings...)
	s.activities = append([]agenda.Activity(nil), seedActivities...)
	return s, nil
}
