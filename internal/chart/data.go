package chart

// Precomputed datasets for each period. The slices are package level so
// a data accessor hands out a stable reference until its period changes.

// ActivityDataFor returns the activity dataset for a valid period, nil
// otherwise.
func ActivityDataFor(p Period) []ActivityPoint { return activityData[p] }

// ConversionDataFor returns the conversion dataset for a valid period,
// nil otherwise.
func ConversionDataFor(p Period) []ConversionPoint { return conversionData[p] }

// SourceDataFor returns the lead source dataset for a valid period, nil
// otherwise.
func SourceDataFor(p Period) []SourcePoint { return sourceData[p] }

var activityData = map[Period][]ActivityPoint{
	PeriodWeek: {
		{Label: "Mon", Calls: 12, Emails: 28, Meetings: 3},
		{Label: "Tue", Calls: 18, Emails: 34, Meetings: 5},
		{Label: "Wed", Calls: 15, Emails: 41, Meetings: 4},
		{Label: "Thu", Calls: 22, Emails: 30, Meetings: 6},
		{Label: "Fri", Calls: 17, Emails: 25, Meetings: 2},
		{Label: "Sat", Calls: 4, Emails: 8, Meetings: 0},
		{Label: "Sun", Calls: 2, Emails: 5, Meetings: 0},
	},
	PeriodMonth: {
		{Label: "Week 1", Calls: 74, Emails: 152, Meetings: 18},
		{Label: "Week 2", Calls: 88, Emails: 171, Meetings: 22},
		{Label: "Week 3", Calls: 69, Emails: 143, Meetings: 15},
		{Label: "Week 4", Calls: 92, Emails: 188, Meetings: 24},
	},
	PeriodYear: {
		{Label: "Q1", Calls: 910, Emails: 1840, Meetings: 212},
		{Label: "Q2", Calls: 1045, Emails: 2010, Meetings: 245},
		{Label: "Q3", Calls: 880, Emails: 1765, Meetings: 198},
		{Label: "Q4", Calls: 1120, Emails: 2150, Meetings: 260},
	},
}

var conversionData = map[Period][]ConversionPoint{
	PeriodWeek: {
		{Label: "Mon", Rate: 18.2},
		{Label: "Tue", Rate: 21.5},
		{Label: "Wed", Rate: 19.8},
		{Label: "Thu", Rate: 24.1},
		{Label: "Fri", Rate: 22.7},
		{Label: "Sat", Rate: 12.4},
		{Label: "Sun", Rate: 10.9},
	},
	PeriodMonth: {
		{Label: "Week 1", Rate: 19.4},
		{Label: "Week 2", Rate: 21.8},
		{Label: "Week 3", Rate: 18.6},
		{Label: "Week 4", Rate: 23.2},
	},
	PeriodYear: {
		{Label: "Q1", Rate: 19.1},
		{Label: "Q2", Rate: 21.3},
		{Label: "Q3", Rate: 20.2},
		{Label: "Q4", Rate: 22.9},
	},
}

var sourceData = map[Period][]SourcePoint{
	PeriodWeek: {
		{Name: "Referral", Value: 14},
		{Name: "Website", Value: 22},
		{Name: "Cold Outreach", Value: 9},
		{Name: "Events", Value: 5},
	},
	PeriodMonth: {
		{Name: "Referral", Value: 58},
		{Name: "Website", Value: 91},
		{Name: "Cold Outreach", Value: 37},
		{Name: "Events", Value: 21},
	},
	PeriodYear: {
		{Name: "Referral", Value: 680},
		{Name: "Website", Value: 1042},
		{Name: "Cold Outreach", Value: 415},
		{Name: "Events", Value: 247},
	},
}
