package models

import (
	"github.com/chandran2006/saveup-backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FinancialScore is the cached health score of a user for one month.
// It is recomputed on demand and overwritten, so the user and the month
// form the primary key.
type FinancialScore struct {
	Timestamps
	UserID          uuid.UUID       `gorm:"primaryKey"`
	Month           types.Month     `gorm:"primaryKey"`
	Score           int
	SavingsRate     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	BudgetAdherence decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (s *FinancialScore) AfterSave(_ *gorm.DB) error {
	if s.Score < 0 || s.Score > 100 {
		return ErrScoreOutOfRange
	}

	return nil
}

// Upsert writes the score for its user and month, replacing an existing
// record for the same key.
func (s *FinancialScore) Upsert(db *gorm.DB) error {
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(s).Error
}
