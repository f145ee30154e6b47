package note

import "time"

// Seed returns the notes a fresh session starts with.
func Seed() []Note {
	base := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	return []Note{
		{ID: "seed-2", Content: "Call the Hendersons about the Q2 renewal before Thursday.", Timestamp: base.Add(45 * time.Minute)},
		{ID: "seed-1", Content: "Demo feedback: shorten the onboarding flow to three steps.", Timestamp: base},
	}
}
