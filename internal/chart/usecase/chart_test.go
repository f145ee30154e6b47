package usecase

import (
	"context"
	"errors"
	"testing"

	"dashboard-srv/internal/chart"
	"dashboard-srv/internal/event"
	"dashboard-srv/pkg/log"
)

func newTestCoordinator(t *testing.T) chart.UseCase {
	t.Helper()
	uc, err := New(log.Noop(), event.Nop(), "user-test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return uc
}

func TestDefaultsToWeek(t *testing.T) {
	uc := newTestCoordinator(t)

	st := uc.State()
	if st.ActivityPeriod != chart.PeriodWeek || st.ConversionPeriod != chart.PeriodWeek || st.SourcePeriod != chart.PeriodWeek {
		t.Errorf("State() = %+v, want all week", st)
	}
	if !uc.PeriodsInSync() {
		t.Error("PeriodsInSync() = false at initialization")
	}
}

func TestSetAllPeriods(t *testing.T) {
	ctx := context.Background()
	uc := newTestCoordinator(t)

	if err := uc.SetAllPeriods(ctx, chart.PeriodYear); err != nil {
		t.Fatalf("SetAllPeriods() error = %v", err)
	}

	st := uc.State()
	if st.ActivityPeriod != chart.PeriodYear || st.ConversionPeriod != chart.PeriodYear || st.SourcePeriod != chart.PeriodYear {
		t.Errorf("State() = %+v, want all year", st)
	}
	if !st.InSync {
		t.Error("InSync = false after SetAllPeriods")
	}
}

func TestSetAllPeriodsInvalidIsFullNoOp(t *testing.T) {
	ctx := context.Background()
	uc := newTestCoordinator(t)

	if err := uc.SetActivityPeriod(ctx, chart.PeriodMonth); err != nil {
		t.Fatalf("SetActivityPeriod() error = %v", err)
	}
	before := uc.State()

	err := uc.SetAllPeriods(ctx, chart.Period("decade"))
	if !errors.Is(err, chart.ErrInvalidPeriod) {
		t.Fatalf("SetAllPeriods() error = %v, want ErrInvalidPeriod", err)
	}
	if got := uc.State(); got != before {
		t.Errorf("State() = %+v after rejected SetAllPeriods, want %+v", got, before)
	}
}

func TestInvalidPeriodRejectedPerChart(t *testing.T) {
	ctx := context.Background()
	uc := newTestCoordinator(t)

	setters := []func(context.Context, chart.Period) error{
		uc.SetActivityPeriod,
		uc.SetConversionPeriod,
		uc.SetSourcePeriod,
	}
	for _, set := range setters {
		if err := set(ctx, chart.Period("")); !errors.Is(err, chart.ErrInvalidPeriod) {
			t.Errorf("setter error = %v, want ErrInvalidPeriod", err)
		}
	}
	if got := uc.State().ActivityPeriod; got != chart.PeriodWeek {
		t.Errorf("ActivityPeriod = %s after rejections, want week", got)
	}
}

func TestPeriodsFallOutOfSync(t *testing.T) {
	ctx := context.Background()
	uc := newTestCoordinator(t)

	if err := uc.SetConversionPeriod(ctx, chart.PeriodMonth); err != nil {
		t.Fatalf("SetConversionPeriod() error = %v", err)
	}
	if uc.PeriodsInSync() {
		t.Error("PeriodsInSync() = true with mixed periods")
	}

	uc.ResetPeriods(ctx)
	if !uc.PeriodsInSync() {
		t.Error("PeriodsInSync() = false after ResetPeriods")
	}
	if got := uc.State().ConversionPeriod; got != chart.PeriodWeek {
		t.Errorf("ConversionPeriod = %s after reset, want week", got)
	}
}

func TestDataIsReferentiallyStable(t *testing.T) {
	ctx := context.Background()
	uc := newTestCoordinator(t)

	a := uc.ActivityData()
	b := uc.ActivityData()
	if len(a) == 0 || len(b) == 0 {
		t.Fatal("ActivityData() returned empty dataset")
	}
	if &a[0] != &b[0] {
		t.Error("ActivityData() should return the same backing array while the period is unchanged")
	}

	if err := uc.SetActivityPeriod(ctx, chart.PeriodYear); err != nil {
		t.Fatalf("SetActivityPeriod() error = %v", err)
	}
	c := uc.ActivityData()
	if len(c) == 0 {
		t.Fatal("ActivityData() returned empty dataset for year")
	}
	if &a[0] == &c[0] {
		t.Error("ActivityData() should return a different backing array after the period changes")
	}
	if c[0].Label != "Q1" {
		t.Errorf("year dataset starts with %q, want Q1", c[0].Label)
	}
}

func TestPeriodSetterDispatch(t *testing.T) {
	ctx := context.Background()
	uc := newTestCoordinator(t)

	set := uc.PeriodSetter(chart.ChartSource)
	if err := set(ctx, chart.PeriodMonth); err != nil {
		t.Fatalf("setter error = %v", err)
	}
	if got := uc.State().SourcePeriod; got != chart.PeriodMonth {
		t.Errorf("SourcePeriod = %s, want month", got)
	}

	noop := uc.PeriodSetter(chart.ID("sparkline"))
	if noop == nil {
		t.Fatal("PeriodSetter() for unknown id should return a callable")
	}
	before := uc.State()
	if err := noop(ctx, chart.PeriodYear); err != nil {
		t.Fatalf("no-op setter error = %v", err)
	}
	if got := uc.State(); got != before {
		t.Errorf("no-op setter changed state: %+v -> %+v", before, got)
	}
}

func TestNewValidatesDependencies(t *testing.T) {
	if _, err := New(nil, event.Nop(), "u"); err == nil {
		t.Error("New() with nil logger should fail")
	}
	if _, err := New(log.Noop(), nil, "u"); err == nil {
		t.Error("New() with nil publisher should fail")
	}
}
