package chart

import "context"

// UseCase coordinates the period selector of each dashboard chart.
// Datasets are fixed lookup tables, so a data accessor returns the same
// slice as long as its period does not change. Callers must treat the
// returned slices as read-only.
type UseCase interface {
	SetActivityPeriod(ctx context.Context, p Period) error
	SetConversionPeriod(ctx context.Context, p Period) error
	SetSourcePeriod(ctx context.Context, p Period) error

	// SetAllPeriods applies p to all three selectors. An invalid p is
	// a full no-op, never a partial write.
	SetAllPeriods(ctx context.Context, p Period) error
	ResetPeriods(ctx context.Context)

	// PeriodSetter returns the setter bound to the named chart. An
	// unknown id yields a callable no-op so dispatch code never needs
	// to branch.
	PeriodSetter(id ID) func(ctx context.Context, p Period) error

	ActivityData() []ActivityPoint
	ConversionData() []ConversionPoint
	SourceData() []SourcePoint

	State() State
	PeriodsInSync() bool
}
