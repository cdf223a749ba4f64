package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/projection"
	ld_uuid "github.com/homeledger/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	HouseholdID         uuid.UUID       `json:"householdId" example:"d3c4cf25-2a43-4af7-9078-32344a7db82e"`                                       // The household the goal belongs to
	AccountID           uuid.UUID       `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"`                                         // The account the goal saves toward
	Name                string          `json:"name" example:"Emergency fund" default:""`                                                         // Name of the goal
	Note                string          `json:"note" example:"Six months of expenses" default:""`                                                 // Note about the goal
	TargetAmount        decimal.Decimal `json:"targetAmount" example:"12000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount to save
	TargetDate          time.Time       `json:"targetDate" example:"2027-01-01T00:00:00Z"`                                                        // When the goal should be reached
	CurrentAmount       decimal.Decimal `json:"currentAmount" example:"2000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount saved so far
	MonthlyContribution decimal.Decimal `json:"monthlyContribution" example:"500" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The configured monthly contribution
	Archived            bool            `json:"archived" example:"false" default:"false"`                                                         // Whether the goal is still pursued
	Tags                []string        `json:"tags" example:"savings"`                                                                           // Free-form tags
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		HouseholdID:         editable.HouseholdID,
		AccountID:           editable.AccountID,
		Name:                editable.Name,
		Note:                editable.Note,
		TargetAmount:        editable.TargetAmount,
		TargetDate:          editable.TargetDate,
		CurrentAmount:       editable.CurrentAmount,
		MonthlyContribution: editable.MonthlyContribution,
		Archived:            editable.Archived,
		Tags:                editable.Tags,
	}
}

type GoalLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/goals/8a4242ab-e600-4bb1-9d7c-e991a4d07d88"`               // The goal itself
	Household   string `json:"household" example:"https://example.com/api/v1/households/d3c4cf25-2a43-4af7-9078-32344a7db82e"`     // The household the goal belongs to
	Account     string `json:"account" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"`         // The account the goal saves toward
	Suggestions string `json:"suggestions" example:"https://example.com/api/v1/goals/8a4242ab-e600-4bb1-9d7c-e991a4d07d88/suggestions"` // Contribution suggestions for this goal
	WhatIf      string `json:"whatIf" example:"https://example.com/api/v1/goals/8a4242ab-e600-4bb1-9d7c-e991a4d07d88/what-if"`     // Projection for a hypothetical contribution
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Progress projection.GoalProgress `json:"progress"` // Computed progress as of the request
	Links    GoalLinks               `json:"links"`
}

// newGoal returns the API representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			HouseholdID:         model.HouseholdID,
			AccountID:           model.AccountID,
			Name:                model.Name,
			Note:                model.Note,
			TargetAmount:        model.TargetAmount,
			TargetDate:          model.TargetDate,
			CurrentAmount:       model.CurrentAmount,
			MonthlyContribution: model.MonthlyContribution,
			Archived:            model.Archived,
			Tags:                model.Tags,
		},
		Progress: projection.Progress(model, time.Now().In(time.UTC)),
		Links: GoalLinks{
			Self:        fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Household:   fmt.Sprintf("%s/v1/households/%s", url, model.HouseholdID),
			Account:     fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
			Suggestions: fmt.Sprintf("%s/v1/goals/%s/suggestions", url, model.ID),
			WhatIf:      fmt.Sprintf("%s/v1/goals/%s/what-if", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created resources
}

func (t *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, GoalResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The resource
}

// GoalSuggestionResponse carries the computed contribution suggestions
// for a goal.
type GoalSuggestionResponse struct {
	Error *string                    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *projection.GoalSuggestion `json:"data"`                                                          // The computed suggestions
}

// GoalWhatIfResponse carries the projection for a hypothetical monthly
// contribution.
type GoalWhatIfResponse struct {
	Error *string            `json:"error" example:"the contribution query parameter must be set"` // The error, if any occurred
	Data  *projection.WhatIf `json:"data"`                                                         // The computed projection
}

type GoalQueryFilter struct {
	HouseholdID ld_uuid.UUID `form:"household"`                  // By household ID
	AccountID   ld_uuid.UUID `form:"account"`                    // By account ID
	Name        string       `form:"name" filterField:"false"`   // By name
	Note        string       `form:"note" filterField:"false"`   // By the note
	Search      string       `form:"search" filterField:"false"` // By string in name or note
	Archived    bool         `form:"archived"`                   // Is the goal archived?
	Offset      uint         `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() (models.Goal, error) {
	return models.Goal{
		HouseholdID: f.HouseholdID.UUID,
		AccountID:   f.AccountID.UUID,
		Archived:    f.Archived,
	}, nil
}
