package models_test

import (
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/chandran2006/saveup-backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestFinancialScoreUpsert() {
	userID := uuid.New()
	month := types.NewMonth(2024, 1)

	first := models.FinancialScore{
		UserID:      userID,
		Month:       month,
		Score:       25,
		SavingsRate: decimal.NewFromInt(40),
	}
	err := first.Upsert(models.DB)
	assert.Nil(suite.T(), err)

	second := models.FinancialScore{
		UserID:      userID,
		Month:       month,
		Score:       80,
		SavingsRate: decimal.NewFromInt(60),
	}
	err = second.Upsert(models.DB)
	assert.Nil(suite.T(), err)

	var scores []models.FinancialScore
	err = models.DB.Where(&models.FinancialScore{UserID: userID}).Find(&scores).Error
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), scores, 1, "recomputing must overwrite, not append")
	assert.Equal(suite.T(), 80, scores[0].Score)
}

func (suite *TestSuiteStandard) TestFinancialScorePerMonth() {
	userID := uuid.New()

	january := models.FinancialScore{UserID: userID, Month: types.NewMonth(2024, 1), Score: 25}
	assert.Nil(suite.T(), january.Upsert(models.DB))

	february := models.FinancialScore{UserID: userID, Month: types.NewMonth(2024, 2), Score: 50}
	assert.Nil(suite.T(), february.Upsert(models.DB))

	var count int64
	err := models.DB.Model(&models.FinancialScore{}).Where("user_id = ?", userID).Count(&count).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(2), count)
}

func (suite *TestSuiteStandard) TestFinancialScoreRange() {
	score := models.FinancialScore{
		UserID: uuid.New(),
		Month:  types.NewMonth(2024, 1),
		Score:  101,
	}

	err := score.Upsert(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrScoreOutOfRange)
}
