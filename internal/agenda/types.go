package agenda

import "time"

// MeetingType describes how a meeting is held.
type MeetingType string

const (
	MeetingVideo    MeetingType = "video"
	MeetingPhone    MeetingType = "phone"
	MeetingInPerson MeetingType = "in-person"
)

func (t MeetingType) Valid() bool {
	switch t {
	case MeetingVideo, MeetingPhone, MeetingInPerson:
		return true
	}
	return false
}

// Priority ranks an activity feed entry.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Meeting is one scheduled appointment with a client.
type Meeting struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Client      string      `json:"client"`
	ClientEmail string      `json:"client_email,omitempty"`
	Date        time.Time   `json:"date"`
	Time        string      `json:"time"`
	Duration    string      `json:"duration"`
	Type        MeetingType `json:"type"`
	Reason      string      `json:"reason,omitempty"`
}

// MeetingPatch carries the fields UpdateMeeting may replace. Nil fields
// are left untouched.
type MeetingPatch struct {
	Title       *string      `json:"title,omitempty"`
	Client      *string      `json:"client,omitempty"`
	ClientEmail *string      `json:"client_email,omitempty"`
	Date        *time.Time   `json:"date,omitempty"`
	Time        *string      `json:"time,omitempty"`
	Duration    *string      `json:"duration,omitempty"`
	Type        *MeetingType `json:"type,omitempty"`
	Reason      *string      `json:"reason,omitempty"`
}

// Activity is one entry of the dashboard activity feed.
type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Entity      string    `json:"entity"`
	Timestamp   time.Time `json:"timestamp"`
	Priority    Priority  `json:"priority"`
	Amount      float64   `json:"amount,omitempty"`
}

// CreateMeetingInput carries the caller supplied fields of AddMeeting.
type CreateMeetingInput struct {
	Title       string
	Client      string
	ClientEmail string
	Date        time.Time
	Time        string
	Duration    string
	Type        MeetingType
	Reason      string
}

// CreateActivityInput carries the caller supplied fields of AddActivity.
type CreateActivityInput struct {
	Type        string
	Title       string
	Description string
	Entity      string
	Timestamp   time.Time
	Priority    Priority
	Amount      float64
}
