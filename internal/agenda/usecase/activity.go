package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"dashboard-srv/internal/agenda"
	"dashboard-srv/internal/event"
)

// AddActivity prepends the activity so the feed stays newest first.
func (s *store) AddActivity(ctx context.Context, input agenda.CreateActivityInput) (agenda.Activity, error) {
	if strings.TrimSpace(input.Title) == "" {
		return agenda.Activity{}, agenda.ErrEmptyTitle
	}
	priority := input.Priority
	if priority == "" {
		priority = agenda.PriorityMedium
	}
	if !priority.Valid() {
		return agenda.Activity{}, agenda.ErrInvalidPriority
	}

	a := agenda.Activity{
		ID:          uuid.New().String(),
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		Entity:      input.Entity,
		Timestamp:   input.Timestamp,
		Priority:    priority,
		Amount:      input.Amount,
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}

	s.mu.Lock()
	s.activities = append([]agenda.Activity{a}, s.activities...)
	s.mu.Unlock()

	s.pub.Publish(ctx, s.userID, event.New(event.DomainAgenda, event.ActionAdded, a))
	return a, nil
}

// RemoveActivity drops the activity by id; unknown ids are a no-op.
func (s *store) RemoveActivity(ctx context.Context, id string) {
	s.mu.Lock()
	removed := false
	for i, a := range s.activities {
		if a.ID == id {
			s.activities = append(s.activities[:i], s.activities[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.pub.Publish(ctx, s.userID, event.New(event.DomainAgenda, event.ActionRemoved, id))
	}
}

// ResetAll restores meetings and activities to their initial seeds.
func (s *store) ResetAll(ctx context.Context) {
	s.mu.Lock()
	s.meetings = append(s.meetings[:0], s.seedMeetings...)
	s.activities = append(s.activities[:0], s.seedActivities...)
	s.mu.Unlock()

	s.pub.Publish(ctx, s.userID, event.New(event.DomainAgenda, event.ActionReset, nil))
}

// Activities returns the feed, newest first.
func (s *store) Activities() []agenda.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]agenda.Activity(nil), s.activities...)
}

func (s *store) RecentActivities(limit int) []agenda.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	if limit > len(s.activities) {
		limit = len(s.activities)
	}
	return append([]agenda.Activity(nil), s.activities[:limit]...)
}

func (s *store) ActivitiesByType(activityType string) []agenda.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]agenda.Activity, 0)
	for _, a := range s.activities {
		if a.Type == activityType {
			out = append(out, a)
		}
	}
	return out
}

func (s *store) ActivitiesByPriority(p agenda.Priority) []agenda.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]agenda.Activity, 0)
	for _, a := range s.activities {
		if a.Priority == p {
			out = append(out, a)
		}
	}
	return out
}
