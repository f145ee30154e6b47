package agenda

import "time"

// SeedMeetings returns the meetings a fresh session starts with. Dates
// straddle the seed reference so both upcoming and past views have
// content out of the box.
func SeedMeetings() []Meeting {
	return []Meeting{
		{
			ID:          "meeting-seed-1",
			Title:       "Quarterly business review",
			Client:      "Henderson Logistics",
			ClientEmail: "ops@hendersonlogistics.example",
			Date:        time.Date(2024, time.February, 26, 0, 0, 0, 0, time.UTC),
			Time:        "10:00",
			Duration:    "1h",
			Type:        MeetingVideo,
		},
		{
			ID:          "meeting-seed-2",
			Title:       "Contract walkthrough",
			Client:      "Brightline Media",
			ClientEmail: "sarah@brightline.example",
			Date:        time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC),
			Time:        "14:30",
			Duration:    "45m",
			Type:        MeetingPhone,
			Reason:      "Review redlines before signature",
		},
		{
			ID:       "meeting-seed-3",
			Title:    "On-site kickoff",
			Client:   "Atlas Manufacturing",
			Date:     time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
			Time:     "09:00",
			Duration: "2h",
			Type:     MeetingInPerson,
		},
	}
}

// SeedActivities returns the activity feed a fresh session starts with,
// newest first.
func SeedActivities() []Activity {
	base := time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC)
	return []Activity{
		{
			ID:          "activity-seed-3",
			Type:        "deal",
			Title:       "Deal closed",
			Description: "Annual plan signed after the pricing call",
			Entity:      "Brightline Media",
			Timestamp:   base.Add(3 * time.Hour),
			Priority:    PriorityHigh,
			Amount:      24000,
		},
		{
			ID:          "activity-seed-2",
			Type:        "email",
			Title:       "Proposal sent",
			Description: "Sent the revised proposal with updated terms",
			Entity:      "Atlas Manufacturing",
			Timestamp:   base.Add(time.Hour),
			Priority:    PriorityMedium,
		},
		{
			ID:          "activity-seed-1",
			Type:        "call",
			Title:       "Discovery call",
			Description: "Initial call to scope the rollout",
			Entity:      "Henderson Logistics",
			Timestamp:   base,
			Priority:    PriorityLow,
		},
	}
}
