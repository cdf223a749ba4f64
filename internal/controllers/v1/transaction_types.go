package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	ld_uuid "github.com/homeledger/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	AccountID  uuid.UUID       `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"`                                    // The account the transaction belongs to
	CategoryID uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91f71defe"`                                   // The category the transaction belongs to
	Date       time.Time       `json:"date" example:"1815-12-10T18:43:00.271152Z"`                                                  // Date of the transaction
	Amount     decimal.Decimal `json:"amount" example:"-14.37" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount, negative for spending
	Note       string          `json:"note" example:"Weekly groceries" default:""`                                                  // A note
	IsTransfer bool            `json:"isTransfer" example:"false" default:"false"`                                                  // Is this a transfer between accounts?
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		AccountID:  editable.AccountID,
		CategoryID: editable.CategoryID,
		Date:       editable.Date,
		Amount:     editable.Amount,
		Note:       editable.Note,
		IsTransfer: editable.IsTransfer,
	}
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`    // The transaction itself
	Account  string `json:"account" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"`    // The account the transaction belongs to
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91f71defe"` // The category the transaction belongs to
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			AccountID:  model.AccountID,
			CategoryID: model.CategoryID,
			Date:       model.Date,
			Amount:     model.Amount,
			Note:       model.Note,
			IsTransfer: model.IsTransfer,
		},
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Account:  fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of resources
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created resources
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The resource
}

type TransactionQueryFilter struct {
	AccountID  ld_uuid.UUID    `form:"account"`                       // By account ID
	CategoryID ld_uuid.UUID    `form:"category"`                      // By category ID
	Date       time.Time       `form:"date" filterField:"false"`      // Exact date. Time is ignored.
	FromDate   time.Time       `form:"fromDate" filterField:"false"`  // From this date. Time is ignored.
	UntilDate  time.Time       `form:"untilDate" filterField:"false"` // Until this date. Time is ignored.
	Amount     decimal.Decimal `form:"amount"`                        // Exact amount
	Note       string          `form:"note" filterField:"false"`      // By the note
	Search     string          `form:"search" filterField:"false"`    // By string in the note
	IsTransfer bool            `form:"isTransfer"`                    // Is this a transfer between accounts?
	Offset     uint            `form:"offset" filterField:"false"`    // The offset of the first transaction returned. Defaults to 0.
	Limit      int             `form:"limit" filterField:"false"`     // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() (models.Transaction, error) {
	return TransactionEditable{
		AccountID:  f.AccountID.UUID,
		CategoryID: f.CategoryID.UUID,
		Amount:     f.Amount,
		IsTransfer: f.IsTransfer,
	}.model(), nil
}
