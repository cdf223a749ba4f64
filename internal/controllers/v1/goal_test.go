package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/homeledger/backend/internal/controllers/v1"
	"github.com/homeledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGoalsCreate() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{
		Name:          "Emergency fund",
		TargetAmount:  decimal.NewFromFloat(12000),
		CurrentAmount: decimal.NewFromFloat(3000),
		TargetDate:    time.Now().AddDate(2, 0, 0),
		Tags:          []string{"savings", "safety"},
	})

	assert.Equal(suite.T(), "Emergency fund", goal.Data.Name)
	assert.Equal(suite.T(), []string{"savings", "safety"}, goal.Data.Tags)

	// Progress is embedded in the resource
	assert.True(suite.T(), goal.Data.Progress.RemainingAmount.Equal(decimal.NewFromFloat(9000)), "RemainingAmount is wrong: %s", goal.Data.Progress.RemainingAmount)
	assert.True(suite.T(), goal.Data.Progress.ProgressPercentage.Equal(decimal.NewFromFloat(25)), "ProgressPercentage is wrong: %s", goal.Data.Progress.ProgressPercentage)
	assert.Greater(suite.T(), goal.Data.Progress.DaysRemaining, int64(0))
}

func (suite *TestSuiteStandard) TestGoalsInvalidTarget() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})
	account := createTestAccount(suite.T(), v1.AccountEditable{HouseholdID: household.Data.ID})

	createTestGoal(suite.T(), v1.GoalEditable{
		HouseholdID:  household.Data.ID,
		AccountID:    account.Data.ID,
		TargetAmount: decimal.NewFromFloat(-100),
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalsGetFiltered() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})
	account := createTestAccount(suite.T(), v1.AccountEditable{HouseholdID: household.Data.ID})

	_ = createTestGoal(suite.T(), v1.GoalEditable{
		HouseholdID: household.Data.ID,
		AccountID:   account.Data.ID,
		Name:        "New car",
	})
	_ = createTestGoal(suite.T(), v1.GoalEditable{
		HouseholdID: household.Data.ID,
		AccountID:   account.Data.ID,
		Name:        "Vacation",
		Note:        "Three weeks in Portugal",
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"Household filter", fmt.Sprintf("household=%s", household.Data.ID), 2},
		{"Account filter", fmt.Sprintf("account=%s", account.Data.ID), 2},
		{"Name filter", "name=car", 1},
		{"Search", "search=portugal", 1},
		{"No match", "name=DoesNotExist", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.GoalListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalSuggestions() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{
		TargetAmount:  decimal.NewFromFloat(1200),
		CurrentAmount: decimal.NewFromFloat(200),
		TargetDate:    time.Now().In(time.UTC).Add(100 * 24 * time.Hour),
	})

	r := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Suggestions, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalSuggestionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suggestion := response.Data
	require.NotNil(suite.T(), suggestion)

	// 1000 remaining over 100 days: 4 months, 15 weeks, 100 days
	assert.True(suite.T(), suggestion.SuggestedMonthlyContribution.Equal(decimal.NewFromFloat(250)), "SuggestedMonthlyContribution is wrong: %s", suggestion.SuggestedMonthlyContribution)
	assert.True(suite.T(), suggestion.SuggestedDailyContribution.Equal(decimal.NewFromFloat(10)), "SuggestedDailyContribution is wrong: %s", suggestion.SuggestedDailyContribution)

	// No configured contribution means nothing can be projected
	assert.False(suite.T(), suggestion.IsOnTrack)
	assert.True(suite.T(), suggestion.ProjectedShortfall.Equal(decimal.NewFromFloat(1000)), "ProjectedShortfall is wrong: %s", suggestion.ProjectedShortfall)
	assert.True(suite.T(), suggestion.ProjectedCompletionDate.Equal(goal.Data.TargetDate), "ProjectedCompletionDate is wrong: %s", suggestion.ProjectedCompletionDate)
}

func (suite *TestSuiteStandard) TestGoalSuggestionsOnTrack() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{
		TargetAmount:        decimal.NewFromFloat(1000),
		CurrentAmount:       decimal.NewFromFloat(900),
		MonthlyContribution: decimal.NewFromFloat(500),
		TargetDate:          time.Now().In(time.UTC).AddDate(1, 0, 0),
	})

	r := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Suggestions, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalSuggestionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.IsOnTrack)
	assert.True(suite.T(), response.Data.ProjectedShortfall.IsZero(), "ProjectedShortfall is wrong: %s", response.Data.ProjectedShortfall)
}

func (suite *TestSuiteStandard) TestGoalWhatIf() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{
		TargetAmount:  decimal.NewFromFloat(1000),
		CurrentAmount: decimal.NewFromFloat(100),
		TargetDate:    time.Now().In(time.UTC).AddDate(1, 0, 0),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s?contribution=300", goal.Data.Links.WhatIf), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalWhatIfResponse
	test.DecodeResponse(suite.T(), &r, &response)

	whatIf := response.Data
	require.NotNil(suite.T(), whatIf)

	// 900 remaining at 300 per month: three full contributions
	assert.True(suite.T(), whatIf.MonthlyContribution.Equal(decimal.NewFromFloat(300)), "MonthlyContribution is wrong: %s", whatIf.MonthlyContribution)
	assert.True(suite.T(), whatIf.TotalContribution.Equal(decimal.NewFromFloat(900)), "TotalContribution is wrong: %s", whatIf.TotalContribution)
	assert.True(suite.T(), whatIf.ProjectedAmount.Equal(decimal.NewFromFloat(1000)), "ProjectedAmount is wrong: %s", whatIf.ProjectedAmount)
}

func (suite *TestSuiteStandard) TestGoalWhatIfZeroContribution() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{
		TargetAmount:  decimal.NewFromFloat(1000),
		CurrentAmount: decimal.NewFromFloat(100),
		TargetDate:    time.Now().In(time.UTC).AddDate(1, 0, 0),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s?contribution=0", goal.Data.Links.WhatIf), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalWhatIfResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.TotalContribution.IsZero())
	assert.True(suite.T(), response.Data.ProjectedAmount.Equal(decimal.NewFromFloat(100)), "ProjectedAmount is wrong: %s", response.Data.ProjectedAmount)
	assert.True(suite.T(), response.Data.ProjectedCompletionDate.Equal(goal.Data.TargetDate), "ProjectedCompletionDate is wrong: %s", response.Data.ProjectedCompletionDate)
}

func (suite *TestSuiteStandard) TestGoalWhatIfInvalidContribution() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name  string
		query string
		err   string
	}{
		{"Not set", "", "the contribution query parameter must be set"},
		{"Not a number", "?contribution=one-hundred", "the contribution query parameter must be a decimal number"},
		{"Negative", "?contribution=-100", "the contribution query parameter must not be negative"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s%s", goal.Data.Links.WhatIf, tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.GoalWhatIfResponse
			test.DecodeResponse(t, &r, &response)

			require.NotNil(t, response.Error)
			assert.Equal(t, tt.err, *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalComputedAccess() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})
	account := createTestAccount(suite.T(), v1.AccountEditable{HouseholdID: household.Data.ID})

	member := createTestMembership(suite.T(), v1.MembershipEditable{
		HouseholdID: household.Data.ID,
		Role:        "viewer",
	})

	goal := createTestGoal(suite.T(), v1.GoalEditable{
		HouseholdID: household.Data.ID,
		AccountID:   account.Data.ID,
	})

	// Members of the household can view computed endpoints
	r := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Suggestions, "", map[string]string{
		"x-user-id": member.Data.UserID.String(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Outsiders cannot
	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Suggestions, "", map[string]string{
		"x-user-id": uuid.New().String(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestGoalGetAccess() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})
	account := createTestAccount(suite.T(), v1.AccountEditable{HouseholdID: household.Data.ID})

	member := createTestMembership(suite.T(), v1.MembershipEditable{
		HouseholdID: household.Data.ID,
		Role:        "viewer",
	})

	goal := createTestGoal(suite.T(), v1.GoalEditable{
		HouseholdID: household.Data.ID,
		AccountID:   account.Data.ID,
	})

	// Members of the household can read the goal
	r := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "", map[string]string{
		"x-user-id": member.Data.UserID.String(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Outsiders cannot
	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "", map[string]string{
		"x-user-id": uuid.New().String(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestGoalUpdateDelete() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Name: "Before"})

	r := test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{
		"name":     "After",
		"archived": true,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "After", updated.Data.Name)
	assert.True(suite.T(), updated.Data.Archived)

	r = test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
