package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	ld_uuid "github.com/homeledger/backend/internal/uuid"
)

type CategoryEditable struct {
	HouseholdID uuid.UUID `json:"householdId" example:"d3c4cf25-2a43-4af7-9078-32344a7db82e"` // The household the category belongs to
	Name        string    `json:"name" example:"Groceries" default:""`                        // Name of the category
	Note        string    `json:"note" example:"Everything food related" default:""`          // Note about the category
	Archived    bool      `json:"archived" example:"false" default:"false"`                   // Whether the category is still in use
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		HouseholdID: editable.HouseholdID,
		Name:        editable.Name,
		Note:        editable.Note,
		Archived:    editable.Archived,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91f71defe"`                      // The category itself
	Household    string `json:"household" example:"https://example.com/api/v1/households/d3c4cf25-2a43-4af7-9078-32344a7db82e"`                 // The household the category belongs to
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91f71defe"` // Transactions in this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

// newCategory returns the API representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			HouseholdID: model.HouseholdID,
			Name:        model.Name,
			Note:        model.Note,
			Archived:    model.Archived,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Household:    fmt.Sprintf("%s/v1/households/%s", url, model.HouseholdID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`                                                          // List of created resources
}

func (t *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, CategoryResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Category `json:"data"`                                                          // The resource
}

type CategoryQueryFilter struct {
	HouseholdID ld_uuid.UUID `form:"household"`                  // By household ID
	Name        string       `form:"name" filterField:"false"`   // By name
	Note        string       `form:"note" filterField:"false"`   // By the note
	Search      string       `form:"search" filterField:"false"` // By string in name or note
	Archived    bool         `form:"archived"`                   // Is the category archived?
	Offset      uint         `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() (models.Category, error) {
	// String fields are handled in the controller function
	return CategoryEditable{
		HouseholdID: f.HouseholdID.UUID,
		Archived:    f.Archived,
	}.model(), nil
}
