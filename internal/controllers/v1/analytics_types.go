package v1

import (
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/chandran2006/saveup-backend/internal/types"
	su_uuid "github.com/chandran2006/saveup-backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HealthScoreQuery struct {
	UserID su_uuid.UUID `form:"userId"` // ID of the user to compute the score for
	Month  types.Month  `form:"month"`  // The month to compute the score for. Defaults to the current month.
}

// HealthScore is the computed financial health score for one month,
// together with the totals it was computed from.
type HealthScore struct {
	UserID          uuid.UUID       `json:"userId" example:"d27b71b1-f9a7-44b5-bcad-aa2f4f7c05c9"` // ID of the user
	Month           types.Month     `json:"month" example:"2024-01-01T00:00:00Z"`                  // The month the score applies to
	Score           int             `json:"score" example:"25"`                                    // Composite score in [0, 100]
	SavingsRate     decimal.Decimal `json:"savingsRate" example:"40"`                              // Percentage of income not spent
	BudgetAdherence decimal.Decimal `json:"budgetAdherence" example:"14.29"`                       // How far spending stays below the budget
	Income          decimal.Decimal `json:"income" example:"50000"`                                // Summed income of the month
	Expense         decimal.Decimal `json:"expense" example:"30000"`                               // Summed expenses of the month
}

type HealthScoreResponse struct {
	Error *string      `json:"error" example:"the userId parameter must be set"` // The error, if any occurred
	Data  *HealthScore `json:"data"`                                             // The computed score
}

type PredictionsQuery struct {
	UserID su_uuid.UUID `form:"userId"` // ID of the user to predict spending for
}

// SpendingPrediction is the API representation of one stored prediction.
type SpendingPrediction struct {
	models.DefaultModel
	UserID          uuid.UUID       `json:"userId" example:"d27b71b1-f9a7-44b5-bcad-aa2f4f7c05c9"` // ID of the user
	Month           types.Month     `json:"month" example:"2024-02-01T00:00:00Z"`                  // The month the prediction is for
	Category        string          `json:"category" example:"food"`                               // The predicted category
	PredictedAmount decimal.Decimal `json:"predictedAmount" example:"10000"`                       // The predicted amount
	Confidence      decimal.Decimal `json:"confidence" example:"0.75"`                             // The confidence of the prediction
}

// newSpendingPrediction returns the API representation of the resource
func newSpendingPrediction(model models.SpendingPrediction) SpendingPrediction {
	return SpendingPrediction{
		DefaultModel:    model.DefaultModel,
		UserID:          model.UserID,
		Month:           model.Month,
		Category:        model.Category,
		PredictedAmount: model.PredictedAmount,
		Confidence:      model.Confidence,
	}
}

type PredictionsResponse struct {
	Error *string              `json:"error" example:"the userId parameter must be set"` // The error, if any occurred
	Data  []SpendingPrediction `json:"data"`                                             // The stored predictions
}

type InsightsQuery struct {
	UserID su_uuid.UUID `form:"userId"` // ID of the user to compute insights for
}

// MonthlyTrend is one month of the income/expense history.
type MonthlyTrend struct {
	Month   types.Month     `json:"month" example:"2024-01-01T00:00:00Z"` // The month
	Income  decimal.Decimal `json:"income" example:"50000"`               // Summed income of the month
	Expense decimal.Decimal `json:"expense" example:"30000"`              // Summed expenses of the month
	Savings decimal.Decimal `json:"savings" example:"20000"`              // Income minus expenses
}

// CategorySum is the summed expense amount of one category.
type CategorySum struct {
	Category string          `json:"category" example:"food"` // The category
	Amount   decimal.Decimal `json:"amount" example:"30000"`  // The summed expense amount
}

// Insights aggregates the spending history of a user for the dashboard.
type Insights struct {
	Trend          []MonthlyTrend  `json:"trend"`                          // Monthly income/expense history, oldest first
	AverageIncome  decimal.Decimal `json:"averageIncome" example:"50000"`  // Average income per month with data
	AverageExpense decimal.Decimal `json:"averageExpense" example:"30000"` // Average expenses per month with data
	TopCategories  []CategorySum   `json:"topCategories"`                  // The five categories with the highest expenses
}

type InsightsResponse struct {
	Error *string   `json:"error" example:"the userId parameter must be set"` // The error, if any occurred
	Data  *Insights `json:"data"`                                             // The computed insights
}
