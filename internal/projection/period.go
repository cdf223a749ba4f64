// Package projection derives budget and goal views from stored resources.
//
// Everything in this package is a pure function of its inputs. Nothing is
// cached or persisted, every view is a point-in-time snapshot recomputed
// per request. Storage access is injected by the caller where needed.
package projection

import (
	"time"

	"github.com/homeledger/backend/internal/types"
)

// Window is a half-open date window [Start, End).
type Window struct {
	Start time.Time `json:"start" example:"2026-09-01T00:00:00Z"` // First instant of the period
	End   time.Time `json:"end" example:"2026-10-01T00:00:00Z"`   // First instant of the next period
}

// Contains reports whether the instant falls into the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// CurrentPeriod resolves the occurrence of the budget period that
// contains now.
//
// Monthly budgets snap to the calendar month, everything else to the
// calendar year. The budget's start date has no influence on the
// window, periods always reset on calendar boundaries.
func CurrentPeriod(period types.Period, now time.Time) Window {
	now = now.In(time.UTC)

	if period == types.PeriodMonthly {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Window{
			Start: start,
			End:   start.AddDate(0, 1, 0),
		}
	}

	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return Window{
		Start: start,
		End:   start.AddDate(1, 0, 0),
	}
}
