package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Receipt stores the result of one receipt scan.
type Receipt struct {
	DefaultModel
	UserID      uuid.UUID       `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category    string
	Description string
	Date        time.Time
	RawText     string
}

func (r *Receipt) BeforeSave(_ *gorm.DB) error {
	if r.Date.IsZero() {
		r.Date = time.Now().In(time.UTC)
	} else {
		r.Date = r.Date.In(time.UTC)
	}

	return nil
}
