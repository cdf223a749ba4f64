package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/projection"
	"github.com/homeledger/backend/internal/types"
	ld_uuid "github.com/homeledger/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	HouseholdID uuid.UUID       `json:"householdId" example:"d3c4cf25-2a43-4af7-9078-32344a7db82e"`                                // The household the budget belongs to
	Name        string          `json:"name" example:"Monthly spending" default:""`                                                // Name of the budget
	Period      types.Period    `json:"period" example:"monthly" default:"monthly"`                                                // Period the budget recurs with, "monthly" or "yearly"
	StartDate   time.Time       `json:"startDate" example:"2024-01-01T00:00:00Z"`                                                  // Informational start date, periods always snap to calendar boundaries
	Buffer      decimal.Decimal `json:"buffer" example:"50" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"`   // Reserve subtracted before computing safe-to-spend
	AccountIDs  []uuid.UUID     `json:"accountIds" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"`                                 // Optional allow-list of accounts that count toward spend. Empty means all accounts.
	Shared      bool            `json:"shared" example:"true" default:"false"`                                                     // Whether members and viewers may see the budget
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		HouseholdID: editable.HouseholdID,
		Name:        editable.Name,
		Period:      editable.Period,
		StartDate:   editable.StartDate,
		Buffer:      editable.Buffer,
		AccountIDs:  editable.AccountIDs,
		Shared:      editable.Shared,
	}
}

type BudgetLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/budgets/29f3f7e3-50cf-4b24-a279-747ac2e8f234"`      // The budget itself
	Household string `json:"household" example:"https://example.com/api/v1/households/d3c4cf25-2a43-4af7-9078-32344a7db82e"` // The household the budget belongs to
	Lines     string `json:"lines" example:"https://example.com/api/v1/budgets/29f3f7e3-50cf-4b24-a279-747ac2e8f234/lines"` // The lines of this budget
	View      string `json:"view" example:"https://example.com/api/v1/budgets/29f3f7e3-50cf-4b24-a279-747ac2e8f234/view"`   // The computed state for the current period
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

// newBudget returns the API representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			HouseholdID: model.HouseholdID,
			Name:        model.Name,
			Period:      model.Period,
			StartDate:   model.StartDate,
			Buffer:      model.Buffer,
			AccountIDs:  model.AccountIDs,
			Shared:      model.Shared,
		},
		Links: BudgetLinks{
			Self:      fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Household: fmt.Sprintf("%s/v1/households/%s", url, model.HouseholdID),
			Lines:     fmt.Sprintf("%s/v1/budgets/%s/lines", url, model.ID),
			View:      fmt.Sprintf("%s/v1/budgets/%s/view", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created resources
}

func (t *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, BudgetResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                          // The resource
}

// BudgetViewResponse carries the computed state of a budget for the
// current period.
type BudgetViewResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *projection.BudgetView `json:"data"`                                                          // The computed budget view
}

type BudgetQueryFilter struct {
	HouseholdID ld_uuid.UUID `form:"household"`                  // By household ID
	Name        string       `form:"name" filterField:"false"`   // By name
	Period      types.Period `form:"period"`                     // By period
	Search      string       `form:"search" filterField:"false"` // By string in the name
	Shared      bool         `form:"shared"`                     // Is the budget visible to members and viewers?
	Offset      uint         `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() (models.Budget, error) {
	return models.Budget{
		HouseholdID: f.HouseholdID.UUID,
		Period:      f.Period,
		Shared:      f.Shared,
	}, nil
}
