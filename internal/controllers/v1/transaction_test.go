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
)

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		AccountID:  account.Data.ID,
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(-14.37),
		Note:       "Weekly groceries",
	})

	assert.True(suite.T(), transaction.Data.Amount.Equal(decimal.NewFromFloat(-14.37)))
	assert.Equal(suite.T(), "Weekly groceries", transaction.Data.Note)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalidReferences() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	tests := []struct {
		name       string
		accountID  uuid.UUID
		categoryID uuid.UUID
	}{
		{"Invalid account", uuid.New(), uuid.Nil},
		{"Invalid category", account.Data.ID, uuid.New()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestTransaction(t, v1.TransactionEditable{
				AccountID:  tt.accountID,
				CategoryID: tt.categoryID,
				Amount:     decimal.NewFromFloat(-10),
			}, http.StatusNotFound)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFiltered() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		AccountID:  account.Data.ID,
		CategoryID: category.Data.ID,
		Date:       time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-25),
		Note:       "Cinema tickets",
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		AccountID:  account.Data.ID,
		CategoryID: category.Data.ID,
		Date:       time.Date(2026, 4, 20, 8, 30, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-60),
		Note:       "Concert",
		IsTransfer: false,
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"Account filter", fmt.Sprintf("account=%s", account.Data.ID), 2},
		{"Exact date", "date=2026-03-05T00:00:00Z", 1},
		{"From date", "fromDate=2026-04-01T00:00:00Z", 1},
		{"Until date", "untilDate=2026-03-31T00:00:00Z", 1},
		{"Date range", "fromDate=2026-03-01T00:00:00Z&untilDate=2026-04-30T00:00:00Z", 2},
		{"Note filter", "note=cinema", 1},
		{"Search", "search=concert", 1},
		{"Exact amount", "amount=-60", 1},
		{"No match", "fromDate=2027-01-01T00:00:00Z", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsOrder() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	older := createTestTransaction(suite.T(), v1.TransactionEditable{
		AccountID:  account.Data.ID,
		CategoryID: category.Data.ID,
		Date:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-10),
	})
	newer := createTestTransaction(suite.T(), v1.TransactionEditable{
		AccountID:  account.Data.ID,
		CategoryID: category.Data.ID,
		Date:       time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-10),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Newest transactions come first
	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), newer.Data.ID, response.Data[0].ID)
	assert.Equal(suite.T(), older.Data.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestTransactionsModifyAccess() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})
	account := createTestAccount(suite.T(), v1.AccountEditable{HouseholdID: household.Data.ID})
	category := createTestCategory(suite.T(), v1.CategoryEditable{HouseholdID: household.Data.ID})

	viewer := createTestMembership(suite.T(), v1.MembershipEditable{
		HouseholdID: household.Data.ID,
		Role:        "viewer",
	})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		AccountID:  account.Data.ID,
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(-10),
	})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "", map[string]string{
		"x-user-id": viewer.Data.UserID.String(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
