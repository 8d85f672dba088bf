package finance

import (
	"sort"

	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/chandran2006/saveup-backend/internal/types"
	"github.com/shopspring/decimal"
)

// PredictionConfidence is reported for every prediction, regardless of how
// much history backs it.
var PredictionConfidence = decimal.RequireFromString("0.75")

// Prediction is the predicted spending for one category.
type Prediction struct {
	Category   string
	Amount     decimal.Decimal
	Confidence decimal.Decimal
}

// PredictSpending predicts the next month's spending per category as the
// average of the per-category expense totals over the months that actually
// contain expense transactions.
//
// Only categories with any expense history are predicted; an empty history
// yields an empty list. The result is sorted by category.
func PredictSpending(transactions []models.Transaction) []Prediction {
	totals := GroupByCategory(transactions)
	if len(totals) == 0 {
		return []Prediction{}
	}

	months := make(map[types.Month]struct{})
	for _, t := range transactions {
		if t.Type == models.TransactionTypeExpense {
			months[types.MonthOf(t.Date)] = struct{}{}
		}
	}

	divisor := decimal.NewFromInt(int64(len(months)))
	if len(months) == 0 {
		divisor = decimal.NewFromInt(1)
	}

	predictions := make([]Prediction, 0, len(totals))
	for category, total := range totals {
		predictions = append(predictions, Prediction{
			Category:   category,
			Amount:     total.Div(divisor).Round(0),
			Confidence: PredictionConfidence,
		})
	}

	sort.Slice(predictions, func(i, j int) bool {
		return predictions[i].Category < predictions[j].Category
	})

	return predictions
}
