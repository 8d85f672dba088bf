package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailyLimit is a per-day spending ceiling. An alert is raised once
// 80% of the limit is consumed.
type DailyLimit struct {
	DefaultModel
	UserID      uuid.UUID       `gorm:"index"`
	LimitAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Active      bool
}

func (l *DailyLimit) AfterSave(_ *gorm.DB) error {
	if !l.LimitAmount.IsPositive() {
		return ErrLimitAmountNotPositive
	}

	return nil
}

// ActiveDailyLimit returns the active daily limit of a user, if any.
func ActiveDailyLimit(db *gorm.DB, userID uuid.UUID) (DailyLimit, bool, error) {
	var limits []DailyLimit
	err := db.Where(&DailyLimit{UserID: userID}).Where("active = ?", true).Limit(1).Find(&limits).Error
	if err != nil {
		return DailyLimit{}, false, err
	}

	if len(limits) == 0 {
		return DailyLimit{}, false, nil
	}

	return limits[0], true, nil
}
