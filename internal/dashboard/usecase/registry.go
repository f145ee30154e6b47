package usecase

import (
	"context"
	"time"

	"dashboard-srv/internal/agenda"
	agendaUC "dashboard-srv/internal/agenda/usecase"
	"dashboard-srv/internal/alert"
	alertUC "dashboard-srv/internal/alert/usecase"
	chartUC "dashboard-srv/internal/chart/usecase"
	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/event"
	"dashboard-srv/internal/modal"
	modalUC "dashboard-srv/internal/modal/usecase"
	"dashboard-srv/internal/model"
	"dashboard-srv/internal/note"
	noteUC "dashboard-srv/internal/note/usecase"
)

func (r *registry) Session(ctx context.Context, sc model.Scope) (*dashboard.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.sessions[sc.UserID]; ok {
		e.lastSeen = time.Now()
		return e.session, nil
	}

	if len(r.sessions) >= r.cfg.MaxSessions {
		return nil, dashboard.ErrSessionLimitReached
	}

	s, err := r.build(sc.UserID)
	if err != nil {
		return nil, err
	}
	r.sessions[sc.UserID] = &entry{session: s, lastSeen: time.Now()}
	r.l.Infof(ctx, "dashboard: created session for user %s (%d active)", sc.UserID, len(r.sessions))
	return s, nil
}

// build wires the five stores of a fresh session around the shared
// publisher. Any constructor failure aborts the whole session.
func (r *registry) build(userID string) (*dashboard.Session, error) {
	modals, err := modalUC.New(
		r.l,
		modal.Config{Exclusive: r.cfg.ExclusiveModals, ScrollLock: true},
		modalUC.NewScrollGuard(),
		r.pub,
		userID,
	)
	if err != nil {
		return nil, err
	}

	alerts, err := alertUC.New(r.l, alert.Config{MaxAlerts: r.cfg.MaxAlerts}, alert.Seed(), r.pub, userID)
	if err != nil {
		return nil, err
	}

	notes, err := noteUC.New(
		r.l,
		note.Config{MaxNotes: r.cfg.MaxNotes, MaxNoteLength: r.cfg.MaxNoteLength},
		note.Seed(),
		r.pub,
		userID,
	)
	if err != nil {
		return nil, err
	}

	charts, err := chartUC.New(r.l, r.pub, userID)
	if err != nil {
		return nil, err
	}

	ag, err := agendaUC.New(r.l, agenda.SeedMeetings(), agenda.SeedActivities(), r.pub, userID)
	if err != nil {
		return nil, err
	}

	return &dashboard.Session{
		UserID:    userID,
		CreatedAt: time.Now(),
		Modals:    modals,
		Alerts:    alerts,
		Notes:     notes,
		Charts:    charts,
		Agenda:    ag,
	}, nil
}

func (r *registry) ResetData(ctx context.Context, sc model.Scope) error {
	s, err := r.Session(ctx, sc)
	if err != nil {
		return err
	}
	s.Agenda.ResetAll(ctx)
	s.Charts.ResetPeriods(ctx)
	r.pub.Publish(ctx, sc.UserID, event.New(event.DomainSystem, event.ActionReset, nil))
	return nil
}

func (r *registry) Drop(ctx context.Context, userID string) {
	r.mu.Lock()
	_, ok := r.sessions[userID]
	delete(r.sessions, userID)
	r.mu.Unlock()

	if ok {
		r.l.Infof(ctx, "dashboard: dropped session for user %s", userID)
	}
}

func (r *registry) EvictIdle(ctx context.Context, now time.Time) int {
	cutoff := now.Add(-r.cfg.SessionIdleTimeout)

	r.mu.Lock()
	evicted := 0
	for userID, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, userID)
			evicted++
		}
	}
	r.mu.Unlock()

	if evicted > 0 {
		r.l.Infof(ctx, "dashboard: evicted %d idle sessions", evicted)
	}
	return evicted
}

func (r *registry) ForEachSession(fn func(*dashboard.Session)) {
	r.mu.Lock()
	sessions := make([]*dashboard.Session, 0, len(r.sessions))
	for _, e := range r.sessions {
		sessions = append(sessions, e.session)
	}
	r.mu.Unlock()

	for _, s := range sessions {
		fn(s)
	}
}

func (r *registry) Stats() dashboard.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return dashboard.Stats{
		ActiveSessions: len(r.sessions),
		MaxSessions:    r.cfg.MaxSessions,
	}
}
