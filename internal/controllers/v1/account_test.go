package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/homeledger/backend/internal/controllers/v1"
	"github.com/homeledger/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountsCreate() {
	account := createTestAccount(suite.T(), v1.AccountEditable{Name: "Joint checking"})

	assert.Equal(suite.T(), "Joint checking", account.Data.Name)
}

func (suite *TestSuiteStandard) TestAccountsDuplicateName() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})

	_ = createTestAccount(suite.T(), v1.AccountEditable{HouseholdID: household.Data.ID, Name: "Checking"})
	createTestAccount(suite.T(), v1.AccountEditable{HouseholdID: household.Data.ID, Name: "Checking"}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountsGetFiltered() {
	household := createTestHousehold(suite.T(), v1.HouseholdEditable{})

	_ = createTestAccount(suite.T(), v1.AccountEditable{HouseholdID: household.Data.ID, Name: "Checking"})
	_ = createTestAccount(suite.T(), v1.AccountEditable{HouseholdID: household.Data.ID, Name: "Savings", Archived: true})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"Household filter", fmt.Sprintf("household=%s", household.Data.ID), 2},
		{"Name filter", "name=checking", 1},
		{"Archived", "archived=true", 1},
		{"Not archived", "archived=false", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.AccountListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsUpdateDelete() {
	account := createTestAccount(suite.T(), v1.AccountEditable{Name: "Before"})

	r := test.Request(suite.T(), http.MethodPatch, account.Data.Links.Self, map[string]any{
		"name": "After",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "After", updated.Data.Name)

	r = test.Request(suite.T(), http.MethodDelete, account.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
