package chart

// Period selects which precomputed dataset a chart renders.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// DefaultPeriod is what ResetPeriods restores every chart to.
const DefaultPeriod = PeriodWeek

func (p Period) Valid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// ID names one of the three dashboard charts.
type ID string

const (
	ChartActivity   ID = "activity"
	ChartConversion ID = "conversion"
	ChartSource     ID = "source"
)

// ActivityPoint is one bucket of the outreach activity chart.
type ActivityPoint struct {
	Label    string `json:"label"`
	Calls    int    `json:"calls"`
	Emails   int    `json:"emails"`
	Meetings int    `json:"meetings"`
}

// ConversionPoint is one bucket of the conversion rate chart.
type ConversionPoint struct {
	Label string  `json:"label"`
	Rate  float64 `json:"rate"`
}

// SourcePoint is one slice of the lead source distribution chart.
type SourcePoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// State is a snapshot of the three period selectors.
type State struct {
	ActivityPeriod   Period `json:"activity_period"`
	ConversionPeriod Period `json:"conversion_period"`
	SourcePeriod     Period `json:"source_period"`
	InSync           bool   `json:"in_sync"`
}
