package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

type BudgetLineEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91f71defe"`                             // The category the line allocates
	Amount     decimal.Decimal `json:"amount" example:"500" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Allocated amount for the period
	Rollover   bool            `json:"rollover" example:"false" default:"false"`                                              // Whether unused allocation is flagged to carry over
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetLineEditable) model(budgetID uuid.UUID) models.BudgetLine {
	return models.BudgetLine{
		BudgetID:   budgetID,
		CategoryID: editable.CategoryID,
		Amount:     editable.Amount,
		Rollover:   editable.Rollover,
	}
}

type BudgetLineLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budget-lines/d44237bf-1668-4ee8-9fcd-43bfccb47e01"`   // The budget line itself
	Budget   string `json:"budget" example:"https://example.com/api/v1/budgets/29f3f7e3-50cf-4b24-a279-747ac2e8f234"`      // The budget the line belongs to
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91f71defe"` // The category the line allocates
}

type BudgetLine struct {
	models.DefaultModel
	BudgetID uuid.UUID `json:"budgetId" example:"29f3f7e3-50cf-4b24-a279-747ac2e8f234"` // The budget the line belongs to
	BudgetLineEditable
	Links BudgetLineLinks `json:"links"`
}

// newBudgetLine returns the API representation of the resource
func newBudgetLine(c *gin.Context, model models.BudgetLine) BudgetLine {
	url := c.GetString(string(models.DBContextURL))

	return BudgetLine{
		DefaultModel: model.DefaultModel,
		BudgetID:     model.BudgetID,
		BudgetLineEditable: BudgetLineEditable{
			CategoryID: model.CategoryID,
			Amount:     model.Amount,
			Rollover:   model.Rollover,
		},
		Links: BudgetLineLinks{
			Self:     fmt.Sprintf("%s/v1/budget-lines/%s", url, model.ID),
			Budget:   fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type BudgetLineListResponse struct {
	Data       []BudgetLine `json:"data"`                                                          // List of resources
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type BudgetLineCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetLineResponse `json:"data"`                                                          // List of created resources
}

func (t *BudgetLineCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, BudgetLineResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetLineResponse struct {
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *BudgetLine `json:"data"`                                                          // The resource
}
