package v1

import (
	"fmt"
	"time"

	"github.com/chandran2006/saveup-backend/internal/models"
	su_uuid "github.com/chandran2006/saveup-backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	UserID uuid.UUID `json:"userId" example:"d27b71b1-f9a7-44b5-bcad-aa2f4f7c05c9"` // ID of the user owning the transaction

	// swagger:enum models.TransactionType
	Type models.TransactionType `json:"type" example:"expense"` // Direction of the transaction

	Amount      decimal.Decimal `json:"amount" example:"14.03" minimum:"0" multipleOf:"0.00000001"` // The amount of the transaction
	Category    string          `json:"category" example:"food" default:""`                         // Category the transaction belongs to
	Description string          `json:"description" example:"Lunch" default:""`                     // A description
	Date        time.Time       `json:"date" example:"2024-01-15T00:00:00Z"`                        // Date of the transaction. Defaults to the current time when empty
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		UserID:      editable.UserID,
		Type:        editable.Type,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Description: editable.Description,
		Date:        editable.Date,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the API representation of a Transaction.
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
			UserID:      model.UserID,
			Type:        model.Type,
			Amount:      model.Amount,
			Category:    model.Category,
			Description: model.Description,
			Date:        model.Date,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	UserID            su_uuid.UUID           `form:"userId"`                                // ID of the user
	Type              models.TransactionType `form:"type"`                                  // Direction of the transaction
	Category          string                 `form:"category" filterField:"false"`          // Category contains this string
	Description       string                 `form:"description" filterField:"false"`       // Description contains this string
	Search            string                 `form:"search" filterField:"false"`            // Description or category contains this string
	Date              time.Time              `form:"date" filterField:"false"`              // Exact date. Time is ignored.
	FromDate          time.Time              `form:"fromDate" filterField:"false"`          // From this date. Time is ignored.
	UntilDate         time.Time              `form:"untilDate" filterField:"false"`         // Until this date. Time is ignored.
	Amount            decimal.Decimal        `form:"amount"`                                // Exact amount
	AmountLessOrEqual decimal.Decimal        `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal        `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Offset            uint                   `form:"offset" filterField:"false"`            // The offset of the first Transaction returned. Defaults to 0.
	Limit             int                    `form:"limit" filterField:"false"`             // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() (models.Transaction, error) {
	// This does not set the string and date fields since they are
	// handled in the controller function
	return TransactionEditable{
		UserID: f.UserID.UUID,
		Type:   f.Type,
		Amount: f.Amount,
	}.model(), nil
}
