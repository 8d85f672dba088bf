package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the two known variants.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single income or expense entry of a user.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID       `gorm:"index"`
	Type        TransactionType `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category    string
	Description string
	Date        time.Time
}

// BeforeSave sets the timezone of the Date to UTC and defaults it
// to the current time when unset.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Category = strings.TrimSpace(t.Category)
	t.Description = strings.TrimSpace(t.Description)

	return nil
}

// AfterSave enforces the transaction invariants. Returning an error here
// rolls back the surrounding transaction.
func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}
