package event

import (
	"encoding/json"
	"time"
)

// Domain names the store a state-change event originated from.
type Domain string

const (
	DomainModal  Domain = "modal"
	DomainAlert  Domain = "alert"
	DomainNote   Domain = "note"
	DomainChart  Domain = "chart"
	DomainAgenda Domain = "agenda"
	DomainSystem Domain = "system"
)

// Actions shared across domains.
const (
	ActionOpened         = "opened"
	ActionClosed         = "closed"
	ActionAllClosed      = "all_closed"
	ActionScrollLocked   = "scroll_locked"
	ActionScrollUnlocked = "scroll_unlocked"
	ActionAdded          = "added"
	ActionRemoved        = "removed"
	ActionDismissed      = "dismissed"
	ActionUpdated        = "updated"
	ActionCleared        = "cleared"
	ActionReset          = "reset"
	ActionPeriodChanged  = "period_changed"
)

// Event is a state-change notification pushed to a session's connected clients.
type Event struct {
	Domain    Domain    `json:"domain"`
	Action    string    `json:"action"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// New creates an event stamped with the current time.
func New(domain Domain, action string, payload any) Event {
	return Event{
		Domain:    domain,
		Action:    action,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to its wire format.
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON parses an event from its wire format.
func FromJSON(data []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return Event{}, err
	}
	if e.Domain == "" {
		return Event{}, ErrInvalidEvent
	}
	return e, nil
}
