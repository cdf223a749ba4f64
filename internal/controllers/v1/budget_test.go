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

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		Name:   "Monthly spending",
		Buffer: decimal.NewFromFloat(50),
		Shared: true,
	})

	assert.Equal(suite.T(), "Monthly spending", budget.Data.Name)
	assert.True(suite.T(), budget.Data.Buffer.Equal(decimal.NewFromFloat(50)))
	assert.True(suite.T(), budget.Data.Shared)
}

func (suite *TestSuiteStandard) TestBudgetsInvalidPeriod() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})

	body := []v1.BudgetEditable{{
		HouseholdID: household.Data.ID,
		Name:        "Weekly spending",
		Period:      "weekly",
	}}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetView() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})
	account := createTestAccount(suite.T(), v1.AccountEditable{HouseholdID: household.Data.ID})
	groceries := createTestCategory(suite.T(), v1.CategoryEditable{HouseholdID: household.Data.ID, Name: "Groceries"})

	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		HouseholdID: household.Data.ID,
		Buffer:      decimal.NewFromFloat(50),
	})

	createTestBudgetLine(suite.T(), *budget.Data, v1.BudgetLineEditable{
		CategoryID: groceries.Data.ID,
		Amount:     decimal.NewFromFloat(500),
	})

	// Spending in the current month
	createTestTransaction(suite.T(), v1.TransactionEditable{
		AccountID:  account.Data.ID,
		CategoryID: groceries.Data.ID,
		Amount:     decimal.NewFromFloat(-300),
	})

	// Income and transfers do not count against the budget
	createTestTransaction(suite.T(), v1.TransactionEditable{
		AccountID:  account.Data.ID,
		CategoryID: groceries.Data.ID,
		Amount:     decimal.NewFromFloat(2000),
	})
	createTestTransaction(suite.T(), v1.TransactionEditable{
		AccountID:  account.Data.ID,
		CategoryID: groceries.Data.ID,
		Amount:     decimal.NewFromFloat(-100),
		IsTransfer: true,
	})

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.View, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetViewResponse
	test.DecodeResponse(suite.T(), &r, &response)

	view := response.Data
	require.NotNil(suite.T(), view)
	require.Len(suite.T(), view.Lines, 1)

	assert.True(suite.T(), view.TotalBudget.Equal(decimal.NewFromFloat(500)), "TotalBudget is wrong: %s", view.TotalBudget)
	assert.True(suite.T(), view.TotalSpent.Equal(decimal.NewFromFloat(300)), "TotalSpent is wrong: %s", view.TotalSpent)
	assert.True(suite.T(), view.TotalRemaining.Equal(decimal.NewFromFloat(200)), "TotalRemaining is wrong: %s", view.TotalRemaining)
	assert.True(suite.T(), view.SafeToSpend.Equal(decimal.NewFromFloat(150)), "SafeToSpend is wrong: %s", view.SafeToSpend)
	assert.True(suite.T(), view.PercentageUsed.Equal(decimal.NewFromFloat(60)), "PercentageUsed is wrong: %s", view.PercentageUsed)

	line := view.Lines[0]
	assert.Equal(suite.T(), "Groceries", line.CategoryName)
	assert.True(suite.T(), line.Remaining.Equal(decimal.NewFromFloat(200)), "Remaining is wrong: %s", line.Remaining)

	// The window covers the current calendar month
	now := time.Now().In(time.UTC)
	assert.Equal(suite.T(), time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), view.Window.Start)
}

func (suite *TestSuiteStandard) TestBudgetViewAccountFilter() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})
	counted := createTestAccount(suite.T(), v1.AccountEditable{HouseholdID: household.Data.ID})
	ignored := createTestAccount(suite.T(), v1.AccountEditable{HouseholdID: household.Data.ID})
	category := createTestCategory(suite.T(), v1.CategoryEditable{HouseholdID: household.Data.ID})

	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		HouseholdID: household.Data.ID,
		AccountIDs:  []uuid.UUID{counted.Data.ID},
	})

	createTestBudgetLine(suite.T(), *budget.Data, v1.BudgetLineEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(100),
	})

	createTestTransaction(suite.T(), v1.TransactionEditable{
		AccountID:  counted.Data.ID,
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(-10),
	})
	createTestTransaction(suite.T(), v1.TransactionEditable{
		AccountID:  ignored.Data.ID,
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(-90),
	})

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.View, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetViewResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.TotalSpent.Equal(decimal.NewFromFloat(10)), "TotalSpent is wrong: %s", response.Data.TotalSpent)
}

func (suite *TestSuiteStandard) TestBudgetViewNotFound() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Does not exist", uuid.New().String(), http.StatusNotFound},
		{"Invalid UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s/view", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetViewAccess() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})

	member := createTestMembership(suite.T(), v1.MembershipEditable{
		HouseholdID: household.Data.ID,
	})

	private := createTestBudget(suite.T(), v1.BudgetEditable{HouseholdID: household.Data.ID})
	shared := createTestBudget(suite.T(), v1.BudgetEditable{HouseholdID: household.Data.ID, Shared: true})

	tests := []struct {
		name   string
		link   string
		userID string
		status int
	}{
		{"No user header", private.Data.Links.View, "", http.StatusOK},
		{"Member, private budget", private.Data.Links.View, member.Data.UserID.String(), http.StatusForbidden},
		{"Member, shared budget", shared.Data.Links.View, member.Data.UserID.String(), http.StatusOK},
		{"Unknown user", shared.Data.Links.View, uuid.New().String(), http.StatusForbidden},
		{"Invalid user ID", shared.Data.Links.View, "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.userID != "" {
				headers["x-user-id"] = tt.userID
			}

			r := test.Request(t, http.MethodGet, tt.link, "", headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetGetAccess() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{HouseholdID: household.Data.ID})

	member := createTestMembership(suite.T(), v1.MembershipEditable{
		HouseholdID: household.Data.ID,
	})

	private := createTestBudget(suite.T(), v1.BudgetEditable{HouseholdID: household.Data.ID})
	shared := createTestBudget(suite.T(), v1.BudgetEditable{HouseholdID: household.Data.ID, Shared: true})

	line := createTestBudgetLine(suite.T(), *private.Data, v1.BudgetLineEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(100),
	})

	tests := []struct {
		name   string
		link   string
		userID string
		status int
	}{
		{"No user header", private.Data.Links.Self, "", http.StatusOK},
		{"Member, private budget", private.Data.Links.Self, member.Data.UserID.String(), http.StatusForbidden},
		{"Member, shared budget", shared.Data.Links.Self, member.Data.UserID.String(), http.StatusOK},
		{"Member, lines of private budget", private.Data.Links.Lines, member.Data.UserID.String(), http.StatusForbidden},
		{"Member, line of private budget", line.Data.Links.Self, member.Data.UserID.String(), http.StatusForbidden},
		{"Unknown user", shared.Data.Links.Self, uuid.New().String(), http.StatusForbidden},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.userID != "" {
				headers["x-user-id"] = tt.userID
			}

			r := test.Request(t, http.MethodGet, tt.link, "", headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetModifyAccess() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})

	viewer := createTestMembership(suite.T(), v1.MembershipEditable{
		HouseholdID: household.Data.ID,
		Role:        "viewer",
	})
	admin := createTestMembership(suite.T(), v1.MembershipEditable{
		HouseholdID: household.Data.ID,
		Role:        "admin",
	})

	budget := createTestBudget(suite.T(), v1.BudgetEditable{HouseholdID: household.Data.ID})

	// Viewers cannot update
	r := test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, map[string]any{
		"name": "Updated",
	}, map[string]string{"x-user-id": viewer.Data.UserID.String()})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	// Admins can
	r = test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, map[string]any{
		"name": "Updated",
	}, map[string]string{"x-user-id": admin.Data.UserID.String()})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestBudgetLinesCRUD() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{HouseholdID: household.Data.ID})
	budget := createTestBudget(suite.T(), v1.BudgetEditable{HouseholdID: household.Data.ID})

	line := createTestBudgetLine(suite.T(), *budget.Data, v1.BudgetLineEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(500),
	})

	// A second line for the same category is rejected
	createTestBudgetLine(suite.T(), *budget.Data, v1.BudgetLineEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(100),
	}, http.StatusBadRequest)

	// List
	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Lines, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.BudgetLineListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 1)

	// Update
	r = test.Request(suite.T(), http.MethodPatch, line.Data.Links.Self, map[string]any{
		"amount": decimal.NewFromFloat(750),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Delete
	r = test.Request(suite.T(), http.MethodDelete, line.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
