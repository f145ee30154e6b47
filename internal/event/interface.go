package event

import "context"

// Publisher delivers state-change events to the clients of a user's session.
// Publish is fire-and-forget: delivery failures are logged, never surfaced
// to the mutating caller.
type Publisher interface {
	Publish(ctx context.Context, userID string, ev Event)
}

// Nop returns a Publisher that drops every event. Used in tests and as a
// default when no fan-out is wired.
func Nop() Publisher {
	return nopPublisher{}
}

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, userID string, ev Event) {}
