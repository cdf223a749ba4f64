package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	ld_uuid "github.com/homeledger/backend/internal/uuid"
)

type AccountEditable struct {
	HouseholdID uuid.UUID `json:"householdId" example:"d3c4cf25-2a43-4af7-9078-32344a7db82e"` // The household the account belongs to
	Name        string    `json:"name" example:"Joint checking" default:""`                   // Name of the account
	Note        string    `json:"note" example:"Main day-to-day account" default:""`          // Note about the account
	Archived    bool      `json:"archived" example:"false" default:"false"`                   // Whether the account is still in use
}

// model returns the database resource for the API representation of the editable fields
func (editable AccountEditable) model() models.Account {
	return models.Account{
		HouseholdID: editable.HouseholdID,
		Name:        editable.Name,
		Note:        editable.Note,
		Archived:    editable.Archived,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"`                  // The account itself
	Household    string `json:"household" example:"https://example.com/api/v1/households/d3c4cf25-2a43-4af7-9078-32344a7db82e"`           // The household the account belongs to
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"` // Transactions on this account
}

type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`
}

// newAccount returns the API representation of the resource
func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			HouseholdID: model.HouseholdID,
			Name:        model.Name,
			Note:        model.Note,
			Archived:    model.Archived,
		},
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Household:    fmt.Sprintf("%s/v1/households/%s", url, model.HouseholdID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                          // List of created resources
}

func (t *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, AccountResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Account `json:"data"`                                                          // The resource
}

type AccountQueryFilter struct {
	HouseholdID ld_uuid.UUID `form:"household"`                  // By household ID
	Name        string       `form:"name" filterField:"false"`   // By name
	Note        string       `form:"note" filterField:"false"`   // By the note
	Search      string       `form:"search" filterField:"false"` // By string in name or note
	Archived    bool         `form:"archived"`                   // Is the account archived?
	Offset      uint         `form:"offset" filterField:"false"` // The offset of the first account returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`  // Maximum number of accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() (models.Account, error) {
	// This does not set the string fields since they are
	// handled in the controller function
	return AccountEditable{
		HouseholdID: f.HouseholdID.UUID,
		Archived:    f.Archived,
	}.model(), nil
}
