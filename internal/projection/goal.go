package projection

import (
	"math"
	"time"

	"github.com/homeledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// approximateMonth is the fixed month length used for contribution
// projections. This is deliberately not calendar-accurate: switching to
// real calendar months would silently move every projected date.
const approximateMonth = 30 * 24 * time.Hour

// GoalProgress is the elapsed-independent state of a goal.
type GoalProgress struct {
	RemainingAmount    decimal.Decimal `json:"remainingAmount" example:"10000"`  // Amount still missing to reach the target, never negative
	DaysRemaining      int64           `json:"daysRemaining" example:"180"`      // Days until the target date, zero for past dates
	ProgressPercentage decimal.Decimal `json:"progressPercentage" example:"25"`  // Saved share of the target, above 100 for over-saved goals
}

// GoalSuggestion contains the contribution rates required to close the
// gap by the target date and the projection from the configured
// monthly contribution.
type GoalSuggestion struct {
	SuggestedMonthlyContribution decimal.Decimal `json:"suggestedMonthlyContribution" example:"1666.67"` // Monthly rate that closes the gap on time
	SuggestedWeeklyContribution  decimal.Decimal `json:"suggestedWeeklyContribution" example:"384.62"`   // Weekly rate that closes the gap on time
	SuggestedDailyContribution   decimal.Decimal `json:"suggestedDailyContribution" example:"55.56"`     // Daily rate that closes the gap on time
	ProjectedCompletionDate      time.Time       `json:"projectedCompletionDate"`                        // Completion date projected from the configured contribution
	IsOnTrack                    bool            `json:"isOnTrack" example:"false"`                      // Whether the projected completion is on or before the target date
	ProjectedShortfall           decimal.Decimal `json:"projectedShortfall" example:"500"`               // How far the configured contribution falls short
}

// WhatIf is the projection for a hypothetical monthly contribution.
// It never changes the stored goal configuration.
type WhatIf struct {
	MonthlyContribution     decimal.Decimal `json:"monthlyContribution" example:"1000"` // The hypothetical contribution the projection used
	ProjectedCompletionDate time.Time       `json:"projectedCompletionDate"`            // When the goal would be reached
	TotalContribution       decimal.Decimal `json:"totalContribution" example:"10000"`  // Total amount that would be contributed
	ProjectedAmount         decimal.Decimal `json:"projectedAmount" example:"12000"`    // Final projected balance
}

// Progress computes the goal progress as of now.
func Progress(goal models.Goal, now time.Time) GoalProgress {
	remaining := goal.TargetAmount.Sub(goal.CurrentAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	percentage := decimal.Zero
	if goal.TargetAmount.IsPositive() {
		percentage = goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred)
	}

	return GoalProgress{
		RemainingAmount:    remaining,
		DaysRemaining:      daysRemaining(goal.TargetDate, now),
		ProgressPercentage: percentage,
	}
}

// Suggest computes the contribution rates required to reach the target
// date and projects completion from the goal's configured monthly
// contribution.
func Suggest(goal models.Goal, now time.Time) GoalSuggestion {
	progress := Progress(goal, now)

	// Floored at 1 so that past or imminent target dates do not divide
	// by zero.
	monthsRemaining := ceilDiv(progress.DaysRemaining, 30)
	if monthsRemaining < 1 {
		monthsRemaining = 1
	}

	weeksRemaining := ceilDiv(progress.DaysRemaining, 7)
	if weeksRemaining < 1 {
		weeksRemaining = 1
	}

	days := progress.DaysRemaining
	if days < 1 {
		days = 1
	}

	suggestion := GoalSuggestion{
		SuggestedMonthlyContribution: progress.RemainingAmount.Div(decimal.NewFromInt(monthsRemaining)),
		SuggestedWeeklyContribution:  progress.RemainingAmount.Div(decimal.NewFromInt(weeksRemaining)),
		SuggestedDailyContribution:   progress.RemainingAmount.Div(decimal.NewFromInt(days)),
	}

	if !goal.MonthlyContribution.IsPositive() {
		// Without a configured contribution there is nothing to project,
		// the full remaining amount is the shortfall.
		suggestion.ProjectedCompletionDate = goal.TargetDate
		suggestion.IsOnTrack = false
		suggestion.ProjectedShortfall = progress.RemainingAmount

		return suggestion
	}

	monthsToComplete := progress.RemainingAmount.Div(goal.MonthlyContribution)
	suggestion.ProjectedCompletionDate = projectCompletion(now, monthsToComplete)
	suggestion.IsOnTrack = !suggestion.ProjectedCompletionDate.After(goal.TargetDate)

	suggestion.ProjectedShortfall = decimal.Zero
	if !suggestion.IsOnTrack {
		// Reported as a magnitude. For contributions far below the
		// suggested rate the savings until the target date fall short of
		// the remaining amount and the difference flips sign.
		suggestion.ProjectedShortfall = goal.MonthlyContribution.
			Mul(decimal.NewFromInt(monthsRemaining)).
			Sub(progress.RemainingAmount).
			Abs()
	}

	return suggestion
}

// Simulate projects the goal with a hypothetical monthly contribution.
//
// The contribution must not be negative, callers validate this at the
// boundary. A contribution of zero collapses to "no progress".
func Simulate(goal models.Goal, contribution decimal.Decimal, now time.Time) WhatIf {
	if !contribution.IsPositive() {
		return WhatIf{
			MonthlyContribution:     decimal.Zero,
			ProjectedCompletionDate: goal.TargetDate,
			TotalContribution:       decimal.Zero,
			ProjectedAmount:         goal.CurrentAmount,
		}
	}

	progress := Progress(goal, now)

	monthsToComplete := progress.RemainingAmount.Div(contribution)
	total := contribution.Mul(monthsToComplete.Ceil())

	return WhatIf{
		MonthlyContribution:     contribution,
		ProjectedCompletionDate: projectCompletion(now, monthsToComplete),
		TotalContribution:       total,
		ProjectedAmount:         goal.CurrentAmount.Add(total),
	}
}

// daysRemaining returns the number of full days until the target date,
// rounded up and clamped at zero for past dates.
func daysRemaining(target, now time.Time) int64 {
	days := int64(math.Ceil(target.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}

	return days
}

// projectCompletion adds the given number of approximate months to now.
//
// The duration is capped at the int64 nanosecond range. Tiny
// contributions produce month counts whose float conversion would
// otherwise wrap into the past.
func projectCompletion(now time.Time, months decimal.Decimal) time.Time {
	nanos := months.InexactFloat64() * float64(approximateMonth)
	if nanos >= math.MaxInt64 {
		return now.Add(math.MaxInt64)
	}

	return now.Add(time.Duration(nanos))
}

func ceilDiv(value, divisor int64) int64 {
	return (value + divisor - 1) / divisor
}
