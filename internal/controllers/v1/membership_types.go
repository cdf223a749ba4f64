package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	ld_uuid "github.com/homeledger/backend/internal/uuid"
)

type MembershipEditable struct {
	HouseholdID uuid.UUID             `json:"householdId" example:"d3c4cf25-2a43-4af7-9078-32344a7db82e"` // The household the user belongs to
	UserID      uuid.UUID             `json:"userId" example:"0e0d2b04-b56f-4539-9f19-76da9eb09ba2"`      // ID of the user as issued by the identity provider
	Role        models.MembershipRole `json:"role" example:"member" default:"member"`                     // Role of the user in the household
}

// model returns the database resource for the API representation of the editable fields
func (editable MembershipEditable) model() models.Membership {
	return models.Membership{
		HouseholdID: editable.HouseholdID,
		UserID:      editable.UserID,
		Role:        editable.Role,
	}
}

type MembershipLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/memberships/afa64ed9-dfb4-4b23-81f9-4fb4a04cbc41"`     // The membership itself
	Household string `json:"household" example:"https://example.com/api/v1/households/d3c4cf25-2a43-4af7-9078-32344a7db82e"` // The household the membership belongs to
}

type Membership struct {
	models.DefaultModel
	MembershipEditable
	Links MembershipLinks `json:"links"`
}

// newMembership returns the API representation of the resource
func newMembership(c *gin.Context, model models.Membership) Membership {
	url := c.GetString(string(models.DBContextURL))

	return Membership{
		DefaultModel: model.DefaultModel,
		MembershipEditable: MembershipEditable{
			HouseholdID: model.HouseholdID,
			UserID:      model.UserID,
			Role:        model.Role,
		},
		Links: MembershipLinks{
			Self:      fmt.Sprintf("%s/v1/memberships/%s", url, model.ID),
			Household: fmt.Sprintf("%s/v1/households/%s", url, model.HouseholdID),
		},
	}
}

type MembershipListResponse struct {
	Data       []Membership `json:"data"`                                                          // List of resources
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type MembershipCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []MembershipResponse `json:"data"`                                                          // List of created resources
}

func (t *MembershipCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, MembershipResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MembershipResponse struct {
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Membership `json:"data"`                                                          // The resource
}

type MembershipQueryFilter struct {
	HouseholdID ld_uuid.UUID          `form:"household"`                  // By household ID
	UserID      ld_uuid.UUID          `form:"user"`                       // By user ID
	Role        models.MembershipRole `form:"role"`                       // By role
	Offset      uint                  `form:"offset" filterField:"false"` // The offset of the first membership returned. Defaults to 0.
	Limit       int                   `form:"limit" filterField:"false"`  // Maximum number of memberships to return. Defaults to 50.
}

func (f MembershipQueryFilter) model() (models.Membership, error) {
	return MembershipEditable{
		HouseholdID: f.HouseholdID.UUID,
		UserID:      f.UserID.UUID,
		Role:        f.Role,
	}.model(), nil
}
