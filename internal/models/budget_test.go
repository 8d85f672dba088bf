package models_test

import (
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/chandran2006/saveup-backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetAmountMustBePositive() {
	err := models.DB.Create(&models.Budget{
		UserID: uuid.New(),
		Month:  types.NewMonth(2024, 1),
		Amount: decimal.Zero,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrBudgetAmountNotPositive)
}

func (suite *TestSuiteStandard) TestBudgetMonthUnique() {
	userID := uuid.New()

	_ = suite.createTestBudget(models.Budget{
		UserID: userID,
		Month:  types.NewMonth(2024, 1),
		Amount: decimal.NewFromInt(35000),
	})

	err := models.DB.Create(&models.Budget{
		UserID: userID,
		Month:  types.NewMonth(2024, 1),
		Amount: decimal.NewFromInt(40000),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrBudgetMonthNotUnique)
}

func (suite *TestSuiteStandard) TestBudgetSameMonthDifferentUsers() {
	month := types.NewMonth(2024, 1)

	_ = suite.createTestBudget(models.Budget{UserID: uuid.New(), Month: month, Amount: decimal.NewFromInt(35000)})
	_ = suite.createTestBudget(models.Budget{UserID: uuid.New(), Month: month, Amount: decimal.NewFromInt(20000)})
}

func (suite *TestSuiteStandard) TestBudgetUpsert() {
	userID := uuid.New()
	month := types.NewMonth(2024, 1)

	first := models.Budget{UserID: userID, Month: month, Amount: decimal.NewFromInt(35000)}
	err := first.Upsert(models.DB)
	assert.Nil(suite.T(), err)

	second := models.Budget{UserID: userID, Month: month, Amount: decimal.NewFromInt(40000)}
	err = second.Upsert(models.DB)
	assert.Nil(suite.T(), err)

	// The existing budget is updated, not duplicated
	assert.Equal(suite.T(), first.ID, second.ID)
	assert.True(suite.T(), decimal.NewFromInt(40000).Equal(second.Amount))

	var count int64
	err = models.DB.Model(&models.Budget{}).Where("user_id = ?", userID).Count(&count).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)
}

// TestBudgetUpsertAfterDelete verifies that a budget can be set again for
// a month whose budget was deleted. The soft-deleted row still occupies
// the unique index, so the upsert has to restore it.
func (suite *TestSuiteStandard) TestBudgetUpsertAfterDelete() {
	userID := uuid.New()
	month := types.NewMonth(2024, 1)

	first := models.Budget{UserID: userID, Month: month, Amount: decimal.NewFromInt(35000)}
	err := first.Upsert(models.DB)
	assert.Nil(suite.T(), err)

	err = models.DB.Delete(&first).Error
	assert.Nil(suite.T(), err)

	second := models.Budget{UserID: userID, Month: month, Amount: decimal.NewFromInt(40000)}
	err = second.Upsert(models.DB)
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), first.ID, second.ID)
	assert.True(suite.T(), decimal.NewFromInt(40000).Equal(second.Amount), "returned amount is %s", second.Amount)

	stored, found, err := models.BudgetForMonth(models.DB, userID, month)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), found, "the recreated budget must be visible")
	assert.True(suite.T(), decimal.NewFromInt(40000).Equal(stored.Amount), "stored amount is %s", stored.Amount)

	var count int64
	err = models.DB.Model(&models.Budget{}).Where("user_id = ?", userID).Count(&count).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestBudgetForMonth() {
	userID := uuid.New()

	budget := suite.createTestBudget(models.Budget{
		UserID: userID,
		Month:  types.NewMonth(2024, 1),
		Amount: decimal.NewFromInt(35000),
	})

	stored, found, err := models.BudgetForMonth(models.DB, userID, types.NewMonth(2024, 1))
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), budget.ID, stored.ID)

	_, found, err = models.BudgetForMonth(models.DB, userID, types.NewMonth(2024, 2))
	assert.Nil(suite.T(), err)
	assert.False(suite.T(), found)
}
