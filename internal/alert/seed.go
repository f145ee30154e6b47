package alert

// Seed returns the alerts a fresh session starts with. Reset restores
// exactly this list.
func Seed() []Alert {
	return []Alert{
		{ID: 5, Message: "Weekly report is ready for review", Type: TypeInfo, Time: "09:41"},
		{ID: 4, Message: "Conversion rate dropped below 20%", Type: TypeWarning, Time: "09:12"},
		{ID: 3, Message: "2 follow-ups scheduled for today", Type: TypeInfo, Time: "08:55"},
		{ID: 2, Message: "Data sync completed successfully", Type: TypeSuccess, Time: "08:30"},
		{ID: 1, Message: "Lead import failed: invalid CSV header", Type: TypeError, Time: "08:02"},
	}
}
