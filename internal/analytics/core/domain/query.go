package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// Measure selects the aggregation applied to matching events.
type Measure string

const (
	MeasureTotals  Measure = "totals"
	MeasureUniques Measure = "uniques"
)

// Interval is the time bucket granularity of the result rows.
type Interval string

const (
	IntervalHour  Interval = "hour"
	IntervalDay   Interval = "day"
	IntervalDate  Interval = "date" // legacy alias for day
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
)

// DefaultConversionWindow bounds a funnel step when the caller gives none.
const DefaultConversionWindow = 30 * 24 * time.Hour

// FunnelStep is one stage of a conversion funnel. The step matches events
// named EventName whose elapsed time since the previous step falls
// strictly inside (WindowGT, WindowLT).
type FunnelStep struct {
	EventName string
	WindowGT  time.Duration
	WindowLT  time.Duration
	Filters   []EventFilter
}

// NewFunnelStep returns a step with the default (0, 30 days) window.
func NewFunnelStep(eventName string, filters ...EventFilter) FunnelStep {
	return FunnelStep{
		EventName: eventName,
		WindowGT:  0,
		WindowLT:  DefaultConversionWindow,
		Filters:   filters,
	}
}

// EventsQuery describes an event aggregation request: a metric per event
// per time bucket per dimension combination over an inclusive date range.
type EventsQuery struct {
	Events     []string
	Start      civil.Date
	End        civil.Date
	Measure    Measure
	Formula    string // used verbatim as the metric expression when set
	Filters    []EventFilter
	Dimensions []string
	Interval   Interval
}

// FunnelQuery describes an N-step funnel request counting distinct users
// reaching each step per time bucket per dimension combination.
type FunnelQuery struct {
	Steps      []FunnelStep
	Start      civil.Date
	End        civil.Date
	Dimensions []string
	Interval   Interval
}
