package usecase

import (
	"context"

	"dashboard-srv/internal/chart"
	"dashboard-srv/internal/event"
)

type periodChange struct {
	Chart  chart.ID     `json:"chart"`
	Period chart.Period `json:"period"`
}

func (c *coordinator) set(ctx context.Context, id chart.ID, dst *chart.Period, p chart.Period) error {
	if !p.Valid() {
		return chart.ErrInvalidPeriod
	}

	c.mu.Lock()
	changed := *dst != p
	*dst = p
	c.mu.Unlock()

	if changed {
		c.pub.Publish(ctx, c.userID, event.New(event.DomainChart, event.ActionPeriodChanged, periodChange{Chart: id, Period: p}))
	}
	return nil
}

func (c *coordinator) SetActivityPeriod(ctx context.Context, p chart.Period) error {
	return c.set(ctx, chart.ChartActivity, &c.activity, p)
}

func (c *coordinator) SetConversionPeriod(ctx context.Context, p chart.Period) error {
	return c.set(ctx, chart.ChartConversion, &c.conversion, p)
}

func (c *coordinator) SetSourcePeriod(ctx context.Context, p chart.Period) error {
	return c.set(ctx, chart.ChartSource, &c.source, p)
}

// SetAllPeriods validates once up front so an invalid period never
// lands on any selector.
func (c *coordinator) SetAllPeriods(ctx context.Context, p chart.Period) error {
	if !p.Valid() {
		return chart.ErrInvalidPeriod
	}

	c.mu.Lock()
	c.activity = p
	c.conversion = p
	c.source = p
	c.mu.Unlock()

	c.pub.Publish(ctx, c.userID, event.New(event.DomainChart, event.ActionPeriodChanged, periodChange{Chart: "all", Period: p}))
	return nil
}

func (c *coordinator) ResetPeriods(ctx context.Context) {
	c.mu.Lock()
	c.activity = chart.DefaultPeriod
	c.conversion = chart.DefaultPeriod
	c.source = chart.DefaultPeriod
	c.mu.Unlock()

	c.pub.Publish(ctx, c.userID, event.New(event.DomainChart, event.ActionReset, periodChange{Chart: "all", Period: chart.DefaultPeriod}))
}

func (c *coordinator) PeriodSetter(id chart.ID) func(ctx context.Context, p chart.Period) error {
	switch id {
	case chart.ChartActivity:
		return c.SetActivityPeriod
	case chart.ChartConversion:
		return c.SetConversionPeriod
	case chart.ChartSource:
		return c.SetSourcePeriod
	}
	return func(context.Context, chart.Period) error { return nil }
}

func (c *coordinator) ActivityData() []chart.ActivityPoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return chart.ActivityDataFor(c.activity)
}

func (c *coordinator) ConversionData() []chart.ConversionPoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return chart.ConversionDataFor(c.conversion)
}

func (c *coordinator) SourceData() []chart.SourcePoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return chart.SourceDataFor(c.source)
}

func (c *coordinator) State() chart.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return chart.State{
		ActivityPeriod:   c.activity,
		ConversionPeriod: c.conversion,
		SourcePeriod:     c.source,
		InSync:           c.activity == c.conversion && c.conversion == c.source,
	}
}

func (c *coordinator) PeriodsInSync() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activity == c.conversion && c.conversion == c.source
}
