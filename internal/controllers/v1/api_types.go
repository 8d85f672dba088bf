package v1

import (
	"time"

	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/chandran2006/saveup-backend/internal/types"
	"github.com/shopspring/decimal"
)

// TransactionData is the transaction shape the frontend sends inline in
// requests to the /api compatibility endpoints.
type TransactionData struct {
	// swagger:enum models.TransactionType
	Type models.TransactionType `json:"type" example:"expense"` // Direction of the transaction

	Amount   decimal.Decimal `json:"amount" example:"30000"`              // The amount of the transaction
	Category string          `json:"category" example:"food" default:""`  // Category the transaction belongs to
	Date     time.Time       `json:"date" example:"2024-01-15T00:00:00Z"` // Date of the transaction
}

// model returns the transaction for the inline API representation
func (t TransactionData) model() models.Transaction {
	return models.Transaction{
		Type:     t.Type,
		Amount:   t.Amount,
		Category: t.Category,
		Date:     t.Date,
	}
}

// transactionModels converts the inline representations into transactions.
func transactionModels(data []TransactionData) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(data))
	for _, t := range data {
		transactions = append(transactions, t.model())
	}

	return transactions
}

// BudgetData is the budget shape the frontend sends inline in requests to
// the /api compatibility endpoints.
type BudgetData struct {
	Month  types.Month     `json:"month" example:"2024-01-01T00:00:00Z"` // The month the budget is set for
	Amount decimal.Decimal `json:"amount" example:"35000"`               // The spending ceiling for the month
}
