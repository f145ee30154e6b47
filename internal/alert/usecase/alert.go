package usecase

import (
	"context"
	"strings"
	"time"

	"dashboard-srv/internal/alert"
	"dashboard-srv/internal/event"
)

const timeFormat = "15:04"

// Add assigns an id (and the current clock time when none is given),
// prepends the alert and evicts from the tail until the bound holds.
func (s *store) Add(ctx context.Context, in alert.CreateInput) (alert.Alert, error) {
	if strings.TrimSpace(in.Message) == "" {
		return alert.Alert{}, alert.ErrEmptyMessage
	}
	if in.Type == "" {
		in.Type = alert.TypeInfo
	}
	if !in.Type.Valid() {
		return alert.Alert{}, alert.ErrInvalidType
	}
	if in.Time == "" {
		in.Time = time.Now().Format(timeFormat)
	}

	s.mu.Lock()
	s.nextID++
	a := alert.Alert{
		ID:      s.nextID,
		Message: in.Message,
		Type:    in.Type,
		Time:    in.Time,
	}
	s.alerts = append([]alert.Alert{a}, s.alerts...)
	if len(s.alerts) > s.cfg.MaxAlerts {
		s.alerts = s.alerts[:s.cfg.MaxAlerts]
	}
	s.mu.Unlock()

	s.pub.Publish(ctx, s.userID, event.New(event.DomainAlert, event.ActionAdded, a))
	return a, nil
}

// Remove deletes the alert by id; unknown ids are a no-op.
func (s *store) Remove(ctx context.Context, id int64) {
	s.mu.Lock()
	removed := false
	for i, a := range s.alerts {
		if a.ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.pub.Publish(ctx, s.userID, event.New(event.DomainAlert, event.ActionRemoved, id))
	}
}

// Dismiss flags the alert as dismissed, hiding it from the active view
// without deleting it.
func (s *store) Dismiss(ctx context.Context, id int64) {
	s.mu.Lock()
	dismissed := false
	for i := range s.alerts {
		if s.alerts[i].ID == id && !s.alerts[i].Dismissed {
			s.alerts[i].Dismissed = true
			dismissed = true
			break
		}
	}
	s.mu.Unlock()

	if dismissed {
		s.pub.Publish(ctx, s.userID, event.New(event.DomainAlert, event.ActionDismissed, id))
	}
}

// Clear empties the collection; the seed is untouched and Reset still works.
func (s *store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.alerts = s.alerts[:0]
	s.mu.Unlock()

	s.pub.Publish(ctx, s.userID, event.New(event.DomainAlert, event.ActionCleared, nil))
}

// Reset restores the collection to its initial seed.
func (s *store) Reset(ctx context.Context) {
	s.mu.Lock()
	s.alerts = append(s.alerts[:0], s.seed...)
	s.mu.Unlock()

	s.pub.Publish(ctx, s.userID, event.New(event.DomainAlert, event.ActionReset, nil))
}

// List returns all alerts, newest first.
func (s *store) List() []alert.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]alert.Alert(nil), s.alerts...)
}

// ByType filters alerts by type without mutating the collection.
func (s *store) ByType(t alert.Type) []alert.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]alert.Alert, 0)
	for _, a := range s.alerts {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

// Active returns the collection minus dismissed alerts.
func (s *store) Active() []alert.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]alert.Alert, 0)
	for _, a := range s.alerts {
		if !a.Dismissed {
			out = append(out, a)
		}
	}
	return out
}

func (s *store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.alerts)
}

func (s *store) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.alerts {
		if !a.Dismissed {
			n++
		}
	}
	return n
}

func (s *store) HasWarnings() bool {
	return s.hasType(alert.TypeWarning)
}

func (s *store) HasErrors() bool {
	return s.hasType(alert.TypeError)
}

func (s *store) hasType(t alert.Type) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.alerts {
		if a.Type == t {
			return true
		}
	}
	return false
}
