package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Households   string `json:"households" example:"https://example.com/api/v1/households"`      // URL of household list endpoint
	Memberships  string `json:"memberships" example:"https://example.com/api/v1/memberships"`    // URL of membership list endpoint
	Accounts     string `json:"accounts" example:"https://example.com/api/v1/accounts"`          // URL of account list endpoint
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`      // URL of category list endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"`  // URL of transaction list endpoint
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`            // URL of budget list endpoint
	Goals        string `json:"goals" example:"https://example.com/api/v1/goals"`                // URL of goal list endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Households:   url + "/v1/households",
			Memberships:  url + "/v1/memberships",
			Accounts:     url + "/v1/accounts",
			Categories:   url + "/v1/categories",
			Transactions: url + "/v1/transactions",
			Budgets:      url + "/v1/budgets",
			Goals:        url + "/v1/goals",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
