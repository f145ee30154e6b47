package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"dashboard-srv/internal/agenda"
	"dashboard-srv/internal/event"
	"dashboard-srv/pkg/log"
)

func newTestStore(t *testing.T) agenda.UseCase {
	t.Helper()
	uc, err := New(log.Noop(), agenda.SeedMeetings(), agenda.SeedActivities(), event.Nop(), "user-test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return uc
}

// seedNow splits the seed meetings: one before, two at or after.
var seedNow = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

func TestAddMeetingAppends(t *testing.T) {
	ctx := context.Background()
	uc := newTestStore(t)

	added, err := uc.AddMeeting(ctx, agenda.CreateMeetingInput{
		Title:  "Renewal sync",
		Client: "Brightline Media",
		Date:   time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC),
		Time:   "11:00",
		Type:   agenda.MeetingVideo,
	})
	if err != nil {
		t.Fatalf("AddMeeting() error = %v", err)
	}
	if added.ID == "" {
		t.Error("AddMeeting() should assign an id")
	}

	meetings := uc.Meetings()
	if meetings[len(meetings)-1].ID != added.ID {
		t.Error("new meeting should be appended last")
	}
}

func TestAddMeetingValidation(t *testing.T) {
	ctx := context.Background()
	uc := newTestStore(t)

	_, err := uc.AddMeeting(ctx, agenda.CreateMeetingInput{Title: "  ", Type: agenda.MeetingVideo})
	if !errors.Is(err, agenda.ErrEmptyTitle) {
		t.Errorf("AddMeeting() error = %v, want ErrEmptyTitle", err)
	}

	_, err = uc.AddMeeting(ctx, agenda.CreateMeetingInput{Title: "Sync", Type: agenda.MeetingType("hologram")})
	if !errors.Is(err, agenda.ErrInvalidMeetingType) {
		t.Errorf("AddMeeting() error = %v, want ErrInvalidMeetingType", err)
	}
}

func TestUpcomingAndPastMeetings(t *testing.T) {
	uc := newTestStore(t)

	upcoming := uc.UpcomingMeetings(seedNow)
	if len(upcoming) != 2 {
		t.Fatalf("UpcomingMeetings() = %d meetings, want 2", len(upcoming))
	}
	if !upcoming[0].Date.Before(upcoming[1].Date) {
		t.Error("UpcomingMeetings() should be soonest first")
	}

	past := uc.PastMeetings(seedNow)
	if len(past) != 1 {
		t.Fatalf("PastMeetings() = %d meetings, want 1", len(past))
	}
	if past[0].ID != "meeting-seed-1" {
		t.Errorf("PastMeetings()[0].ID = %s, want meeting-seed-1", past[0].ID)
	}
}

func TestUpdateMeetingShallowMerge(t *testing.T) {
	ctx := context.Background()
	uc := newTestStore(t)

	title := "Contract walkthrough (rescheduled)"
	newTime := "16:00"
	updated, err := uc.UpdateMeeting(ctx, "meeting-seed-2", agenda.MeetingPatch{Title: &title, Time: &newTime})
	if err != nil {
		t.Fatalf("UpdateMeeting() error = %v", err)
	}
	if updated.Title != title || updated.Time != newTime {
		t.Errorf("patched fields not applied: %+v", updated)
	}
	if updated.Client != "Brightline Media" {
		t.Errorf("Client = %q, untouched fields must survive the patch", updated.Client)
	}

	_, err = uc.UpdateMeeting(ctx, "nope", agenda.MeetingPatch{Title: &title})
	if !errors.Is(err, agenda.ErrMeetingNotFound) {
		t.Errorf("UpdateMeeting() error = %v, want ErrMeetingNotFound", err)
	}
}

func TestRemoveMeetingUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	uc := newTestStore(t)

	before := len(uc.Meetings())
	uc.RemoveMeeting(ctx, "nope")
	if got := len(uc.Meetings()); got != before {
		t.Errorf("Meetings() = %d after unknown remove, want %d", got, before)
	}

	uc.RemoveMeeting(ctx, "meeting-seed-3")
	if got := len(uc.Meetings()); got != before-1 {
		t.Errorf("Meetings() = %d after remove, want %d", got, before-1)
	}
}

func TestAddActivityPrependsWithDefaults(t *testing.T) {
	ctx := context.Background()
	uc := newTestStore(t)

	added, err := uc.AddActivity(ctx, agenda.CreateActivityInput{
		Type:   "call",
		Title:  "Follow-up call",
		Entity: "Atlas Manufacturing",
	})
	if err != nil {
		t.Fatalf("AddActivity() error = %v", err)
	}
	if added.ID == "" {
		t.Error("AddActivity() should assign an id")
	}
	if added.Timestamp.IsZero() {
		t.Error("AddActivity() should stamp the entry")
	}
	if added.Priority != agenda.PriorityMedium {
		t.Errorf("Priority = %s, want medium default", added.Priority)
	}

	if feed := uc.Activities(); feed[0].ID != added.ID {
		t.Error("new activity should be first in the feed")
	}
}

func TestActivityQueries(t *testing.T) {
	uc := newTestStore(t)

	recent := uc.RecentActivities(2)
	if len(recent) != 2 {
		t.Fatalf("RecentActivities(2) = %d entries, want 2", len(recent))
	}
	if recent[0].ID != "activity-seed-3" {
		t.Errorf("RecentActivities(2)[0].ID = %s, want activity-seed-3", recent[0].ID)
	}
	if got := uc.RecentActivities(100); len(got) != 3 {
		t.Errorf("RecentActivities(100) = %d entries, want 3", len(got))
	}

	if got := uc.ActivitiesByType("call"); len(got) != 1 || got[0].Type != "call" {
		t.Errorf("ActivitiesByType(call) = %+v", got)
	}
	if got := uc.ActivitiesByPriority(agenda.PriorityHigh); len(got) != 1 || got[0].Priority != agenda.PriorityHigh {
		t.Errorf("ActivitiesByPriority(high) = %+v", got)
	}
}

func TestResetAllRestoresSeeds(t *testing.T) {
	ctx := context.Background()
	uc := newTestStore(t)

	uc.RemoveMeeting(ctx, "meeting-seed-1")
	uc.RemoveActivity(ctx, "activity-seed-2")
	if _, err := uc.AddActivity(ctx, agenda.CreateActivityInput{Type: "note", Title: "extra"}); err != nil {
		t.Fatalf("AddActivity() error = %v", err)
	}

	uc.ResetAll(ctx)

	if got := len(uc.Meetings()); got != len(agenda.SeedMeetings()) {
		t.Errorf("Meetings() = %d after reset, want %d", got, len(agenda.SeedMeetings()))
	}
	feed := uc.Activities()
	if len(feed) != len(agenda.SeedActivities()) {
		t.Fatalf("Activities() = %d after reset, want %d", len(feed), len(agenda.SeedActivities()))
	}
	if feed[0].ID != "activity-seed-3" {
		t.Errorf("Activities()[0].ID = %s after reset, want activity-seed-3", feed[0].ID)
	}
}

func TestNewValidatesDependencies(t *testing.T) {
	if _, err := New(nil, nil, nil, event.Nop(), "u"); err == nil {
		t.Error("New() with nil logger should fail")
	}
	if _, err := New(log.Noop(), nil, nil, nil, "u"); err == nil {
		t.Error("New() with nil publisher should fail")
	}
}
