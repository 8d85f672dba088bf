package models

import (
	"github.com/chandran2006/saveup-backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpendingPrediction is one predicted per-category amount for a month.
//
// Unlike FinancialScore, predictions are appended on every computation and
// never deduplicated, so the history of predictions stays queryable.
type SpendingPrediction struct {
	DefaultModel
	UserID          uuid.UUID   `gorm:"index"`
	Month           types.Month
	Category        string
	PredictedAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Confidence      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}
