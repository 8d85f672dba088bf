package models

import (
	"github.com/chandran2006/saveup-backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budget is the monthly spending ceiling of a user.
// There is at most one budget per user and month.
type Budget struct {
	DefaultModel
	UserID uuid.UUID       `gorm:"uniqueIndex:budget_user_month"`
	Month  types.Month     `gorm:"uniqueIndex:budget_user_month"`
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if !b.Amount.IsPositive() {
		return ErrBudgetAmountNotPositive
	}

	return nil
}

// Upsert writes the budget, replacing the amount of an existing budget
// for the same user and month.
//
// A soft-deleted budget still occupies the unique index, so the conflict
// update also clears deleted_at to restore it.
func (b *Budget) Upsert(db *gorm.DB) error {
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "month"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     gorm.Expr("excluded.amount"),
			"updated_at": gorm.Expr("excluded.updated_at"),
			"deleted_at": nil,
		}),
	}).Create(b).Error
	if err != nil {
		return err
	}

	// On conflict the stored row keeps its original ID, so read it back
	stored, found, err := BudgetForMonth(db, b.UserID, b.Month)
	if err != nil {
		return err
	}
	if !found {
		return ErrGeneral
	}

	*b = stored
	return nil
}

// BudgetForMonth returns the budget of a user for a specific month.
// The bool return reports whether a budget is set at all.
func BudgetForMonth(db *gorm.DB, userID uuid.UUID, month types.Month) (Budget, bool, error) {
	var budgets []Budget
	err := db.Where(&Budget{UserID: userID, Month: month}).Limit(1).Find(&budgets).Error
	if err != nil {
		return Budget{}, false, err
	}

	if len(budgets) == 0 {
		return Budget{}, false, nil
	}

	return budgets[0], true, nil
}
