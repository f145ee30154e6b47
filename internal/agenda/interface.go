package agenda

import (
	"context"
	"time"
)

// UseCase holds the meeting schedule and activity feed of one dashboard
// session. Remove of an unknown id is a silent no-op; UpdateMeeting of
// an unknown id returns ErrMeetingNotFound.
type UseCase interface {
	AddMeeting(ctx context.Context, input CreateMeetingInput) (Meeting, error)
	RemoveMeeting(ctx context.Context, id string)
	UpdateMeeting(ctx context.Context, id string, patch MeetingPatch) (Meeting, error)

	AddActivity(ctx context.Context, input CreateActivityInput) (Activity, error)
	RemoveActivity(ctx context.Context, id string)

	ResetAll(ctx context.Context)

	Meetings() []Meeting
	// UpcomingMeetings returns meetings at or after now, soonest first.
	UpcomingMeetings(now time.Time) []Meeting
	// PastMeetings returns meetings before now, most recent first.
	PastMeetings(now time.Time) []Meeting

	Activities() []Activity
	RecentActivities(limit int) []Activity
	ActivitiesByType(activityType string) []Activity
	ActivitiesByPriority(p Priority) []Activity
}
