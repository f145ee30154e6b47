package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"dashboard-srv/internal/agenda"
	"dashboard-srv/internal/event"
)

// AddMeeting appends the meeting to the schedule.
func (s *store) AddMeeting(ctx context.Context, input agenda.CreateMeetingInput) (agenda.Meeting, error) {
	if strings.TrimSpace(input.Title) == "" {
		return agenda.Meeting{}, agenda.ErrEmptyTitle
	}
	if !input.Type.Valid() {
		return agenda.Meeting{}, agenda.ErrInvalidMeetingType
	}

	m := agenda.Meeting{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Client:      input.Client,
		ClientEmail: input.ClientEmail,
		Date:        input.Date,
		Time:        input.Time,
		Duration:    input.Duration,
		Type:        input.Type,
		Reason:      input.Reason,
	}

	s.mu.Lock()
	s.meetings = append(s.meetings, m)
	s.mu.Unlock()

	s.pub.Publish(ctx, s.userID, event.New(event.DomainAgenda, event.ActionAdded, m))
	return m, nil
}

// RemoveMeeting drops the meeting by id; unknown ids are a no-op.
func (s *store) RemoveMeeting(ctx context.Context, id string) {
	s.mu.Lock()
	removed := false
	for i, m := range s.meetings {
		if m.ID == id {
			s.meetings = append(s.meetings[:i], s.meetings[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.pub.Publish(ctx, s.userID, event.New(event.DomainAgenda, event.ActionRemoved, id))
	}
}

// UpdateMeeting shallow-merges the patch into the matching meeting.
func (s *store) UpdateMeeting(ctx context.Context, id string, patch agenda.MeetingPatch) (agenda.Meeting, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return agenda.Meeting{}, agenda.ErrInvalidMeetingType
	}

	s.mu.Lock()
	var updated agenda.Meeting
	found := false
	for i := range s.meetings {
		if s.meetings[i].ID != id {
			continue
		}
		applyPatch(&s.meetings[i], patch)
		updated = s.meetings[i]
		found = true
		break
	}
	s.mu.Unlock()

	if !found {
		return agenda.Meeting{}, agenda.ErrMeetingNotFound
	}
	s.pub.Publish(ctx, s.userID, event.New(event.DomainAgenda, event.ActionUpdated, updated))
	return updated, nil
}

func applyPatch(m *agenda.Meeting, patch agenda.MeetingPatch) {
	if patch.Title != nil {
		m.Title = *patch.Title
	}
	if patch.Client != nil {
		m.Client = *patch.Client
	}
	if patch.ClientEmail != nil {
		m.ClientEmail = *patch.ClientEmail
	}
	if patch.Date != nil {
		m.Date = *patch.Date
	}
	if patch.Time != nil {
		m.Time = *patch.Time
	}
	if patch.Duration != nil {
		m.Duration = *patch.Duration
	}
	if patch.Type != nil {
		m.Type = *patch.Type
	}
	if patch.Reason != nil {
		m.Reason = *patch.Reason
	}
}

// Meetings returns the schedule in insertion order.
func (s *store) Meetings() []agenda.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]agenda.Meeting(nil), s.meetings...)
}

func (s *store) UpcomingMeetings(now time.Time) []agenda.Meeting {
	s.mu.Lock()
	out := make([]agenda.Meeting, 0)
	for _, m := range s.meetings {
		if !m.Date.Before(now) {
			out = append(out, m)
		}
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (s *store) PastMeetings(now time.Time) []agenda.Meeting {
	s.mu.Lock()
	out := make([]agenda.Meeting, 0)
	for _, m := range s.meetings {
		if m.Date.Before(now) {
			out = append(out, m)
		}
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}
