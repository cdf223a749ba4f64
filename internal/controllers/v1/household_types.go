package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/homeledger/backend/internal/models"
)

type HouseholdEditable struct {
	Name string `json:"name" example:"The Millers" default:""`        // Name of the household
	Note string `json:"note" example:"Shared flat in Hamburg" default:""` // Note about the household
}

// model returns the database resource for the API representation of the editable fields
func (editable HouseholdEditable) model() models.Household {
	return models.Household{
		Name: editable.Name,
		Note: editable.Note,
	}
}

type HouseholdLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/households/d3c4cf25-2a43-4af7-9078-32344a7db82e"`                // The household itself
	Accounts     string `json:"accounts" example:"https://example.com/api/v1/accounts?household=d3c4cf25-2a43-4af7-9078-32344a7db82e"`    // Accounts of this household
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets?household=d3c4cf25-2a43-4af7-9078-32344a7db82e"`      // Budgets of this household
	Goals        string `json:"goals" example:"https://example.com/api/v1/goals?household=d3c4cf25-2a43-4af7-9078-32344a7db82e"`          // Goals of this household
	Memberships  string `json:"memberships" example:"https://example.com/api/v1/memberships?household=d3c4cf25-2a43-4af7-9078-32344a7db82e"` // Memberships of this household
}

type Household struct {
	models.DefaultModel
	HouseholdEditable
	Links HouseholdLinks `json:"links"`
}

// newHousehold returns the API representation of the resource
func newHousehold(c *gin.Context, model models.Household) Household {
	url := c.GetString(string(models.DBContextURL))

	return Household{
		DefaultModel: model.DefaultModel,
		HouseholdEditable: HouseholdEditable{
			Name: model.Name,
			Note: model.Note,
		},
		Links: HouseholdLinks{
			Self:        fmt.Sprintf("%s/v1/households/%s", url, model.ID),
			Accounts:    fmt.Sprintf("%s/v1/accounts?household=%s", url, model.ID),
			Budgets:     fmt.Sprintf("%s/v1/budgets?household=%s", url, model.ID),
			Goals:       fmt.Sprintf("%s/v1/goals?household=%s", url, model.ID),
			Memberships: fmt.Sprintf("%s/v1/memberships?household=%s", url, model.ID),
		},
	}
}

type HouseholdListResponse struct {
	Data       []Household `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type HouseholdCreateResponse struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []HouseholdResponse `json:"data"`                                                          // List of created resources
}

func (t *HouseholdCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, HouseholdResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type HouseholdResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Household `json:"data"`                                                          // The resource
}

type HouseholdQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Note   string `form:"note" filterField:"false"`   // By the note
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first household returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of households to return. Defaults to 50.
}

func (f HouseholdQueryFilter) model() (models.Household, error) {
	// String fields are handled in the controller function
	return models.Household{}, nil
}
