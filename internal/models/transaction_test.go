package models_test

import (
	"time"

	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionSaveTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	transaction := suite.createTestTransaction(models.Transaction{
		UserID: uuid.New(),
		Type:   models.TransactionTypeExpense,
		Amount: decimal.NewFromInt(10),
		Date:   time.Date(2024, 1, 2, 3, 4, 5, 6, tz),
	})

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToNow() {
	transaction := suite.createTestTransaction(models.Transaction{
		UserID: uuid.New(),
		Type:   models.TransactionTypeIncome,
		Amount: decimal.NewFromInt(10),
	})

	assert.False(suite.T(), transaction.Date.IsZero(), "Date must be defaulted")
	assert.WithinDuration(suite.T(), time.Now(), transaction.Date, time.Minute)
}

func (suite *TestSuiteStandard) TestTransactionTrimsWhitespace() {
	transaction := suite.createTestTransaction(models.Transaction{
		UserID:      uuid.New(),
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(10),
		Category:    " food ",
		Description: " Lunch\t",
	})

	assert.Equal(suite.T(), "food", transaction.Category)
	assert.Equal(suite.T(), "Lunch", transaction.Description)
}

func (suite *TestSuiteStandard) TestTransactionNegativeAmountRejected() {
	err := models.DB.Create(&models.Transaction{
		UserID: uuid.New(),
		Type:   models.TransactionTypeExpense,
		Amount: decimal.NewFromInt(-10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestTransactionInvalidTypeRejected() {
	err := models.DB.Create(&models.Transaction{
		UserID: uuid.New(),
		Type:   "transfer",
		Amount: decimal.NewFromInt(10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransactionTypeValid() {
	assert.True(suite.T(), models.TransactionTypeIncome.Valid())
	assert.True(suite.T(), models.TransactionTypeExpense.Valid())
	assert.False(suite.T(), models.TransactionType("transfer").Valid())
	assert.False(suite.T(), models.TransactionType("").Valid())
}
