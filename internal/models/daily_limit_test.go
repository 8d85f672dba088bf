package models_test

import (
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestDailyLimitAmountMustBePositive() {
	err := models.DB.Create(&models.DailyLimit{
		UserID:      uuid.New(),
		LimitAmount: decimal.Zero,
		Active:      true,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrLimitAmountNotPositive)
}

func (suite *TestSuiteStandard) TestActiveDailyLimit() {
	userID := uuid.New()

	_, found, err := models.ActiveDailyLimit(models.DB, userID)
	assert.Nil(suite.T(), err)
	assert.False(suite.T(), found)

	// Inactive limits are ignored
	_ = suite.createTestDailyLimit(models.DailyLimit{
		UserID:      userID,
		LimitAmount: decimal.NewFromInt(300),
		Active:      false,
	})

	_, found, err = models.ActiveDailyLimit(models.DB, userID)
	assert.Nil(suite.T(), err)
	assert.False(suite.T(), found)

	active := suite.createTestDailyLimit(models.DailyLimit{
		UserID:      userID,
		LimitAmount: decimal.NewFromInt(500),
		Active:      true,
	})

	limit, found, err := models.ActiveDailyLimit(models.DB, userID)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), active.ID, limit.ID)
	assert.True(suite.T(), decimal.NewFromInt(500).Equal(limit.LimitAmount))
}
