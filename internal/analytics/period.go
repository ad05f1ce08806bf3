package analytics

import (
	"errors"
	"fmt"
	"time"
)

// Period is a lookback window token
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// DefaultPeriod is used when a request does not name one
const DefaultPeriod = PeriodMonth

// ErrInvalidPeriod is returned for tokens other than week/month/quarter/year
var ErrInvalidPeriod = errors.New("invalid period")

// Range is the inclusive [Start, End] window a period resolves to
type Range struct {
	Period Period    `json:"period"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// ResolvePeriod subtracts the period from now. Months and years use calendar
// arithmetic (time.AddDate), so a month back from March 31 normalizes into
// early March. An empty token resolves to DefaultPeriod.
func ResolvePeriod(token string, now time.Time) (Range, error) {
	p := Period(token)
	if p == "" {
		p = DefaultPeriod
	}

	var start time.Time
	switch p {
	case PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case PeriodMonth:
		start = now.AddDate(0, -1, 0)
	case PeriodQuarter:
		start = now.AddDate(0, -3, 0)
	case PeriodYear:
		start = now.AddDate(-1, 0, 0)
	default:
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, token)
	}

	return Range{Period: p, Start: start, End: now}, nil
}
