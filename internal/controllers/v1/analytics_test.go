package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/chandran2006/saveup-backend/internal/controllers/v1"
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/chandran2006/saveup-backend/internal/types"
	"github.com/chandran2006/saveup-backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestHealthScore() {
	userID := uuid.New()

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: userID,
		Type:   models.TransactionTypeIncome,
		Amount: decimal.NewFromInt(50000),
		Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: userID,
		Type:   models.TransactionTypeExpense,
		Amount: decimal.NewFromInt(30000),
		Date:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		UserID: userID,
		Month:  types.NewMonth(2024, 1),
		Amount: decimal.NewFromInt(35000),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/health-score?userId=%s&month=2024-01", userID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HealthScoreResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 25, response.Data.Score)
	assert.True(suite.T(), decimal.NewFromInt(40).Equal(response.Data.SavingsRate), "savings rate is %s", response.Data.SavingsRate)
	assert.True(suite.T(), decimal.NewFromInt(50000).Equal(response.Data.Income))
	assert.True(suite.T(), decimal.NewFromInt(30000).Equal(response.Data.Expense))
}

func (suite *TestSuiteStandard) TestHealthScoreWithoutBudget() {
	userID := uuid.New()

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: userID,
		Type:   models.TransactionTypeIncome,
		Amount: decimal.NewFromInt(50000),
		Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: userID,
		Type:   models.TransactionTypeExpense,
		Amount: decimal.NewFromInt(30000),
		Date:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/health-score?userId=%s&month=2024-01", userID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HealthScoreResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Without a budget the adherence factor is the neutral 50
	assert.Equal(suite.T(), 46, response.Data.Score)
	assert.True(suite.T(), decimal.NewFromInt(50).Equal(response.Data.BudgetAdherence))
}

func (suite *TestSuiteStandard) TestHealthScoreEmptyMonth() {
	userID := uuid.New()

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/health-score?userId=%s&month=2024-06", userID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HealthScoreResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// No income, no budget: 0 * 0.4 + 50 * 0.6
	assert.Equal(suite.T(), 30, response.Data.Score)
	assert.True(suite.T(), response.Data.SavingsRate.IsZero())
}

// TestHealthScoreOverwrites verifies that recomputing a score overwrites the
// stored one instead of appending a second record.
func (suite *TestSuiteStandard) TestHealthScoreOverwrites() {
	userID := uuid.New()

	for i := 0; i < 2; i++ {
		r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/health-score?userId=%s&month=2024-01", userID), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}

	var count int64
	err := models.DB.Model(&models.FinancialScore{}).Where("user_id = ?", userID).Count(&count).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestHealthScoreErrors() {
	tests := []struct {
		name  string
		query string
	}{
		{"missing userId", "month=2024-01"},
		{"invalid userId", "userId=NotAUUID"},
		{"invalid month", fmt.Sprintf("userId=%s&month=NotAMonth", uuid.New())},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/health-score?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestPredictions() {
	userID := uuid.New()

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:   userID,
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(3000),
		Category: "food",
		Date:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:   userID,
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(1000),
		Category: "food",
		Date:     time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/predictions?userId=%s", userID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PredictionsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "food", response.Data[0].Category)
	assert.True(suite.T(), decimal.NewFromInt(2000).Equal(response.Data[0].PredictedAmount), "predicted amount is %s", response.Data[0].PredictedAmount)
	assert.True(suite.T(), decimal.RequireFromString("0.75").Equal(response.Data[0].Confidence))

	// Predictions are made for the coming month
	nextMonth := types.MonthOf(time.Now().In(time.UTC)).AddDate(0, 1)
	assert.True(suite.T(), nextMonth.Equal(response.Data[0].Month))
}

// TestPredictionsAppend verifies that every computation appends new
// prediction records instead of overwriting earlier ones.
func (suite *TestSuiteStandard) TestPredictionsAppend() {
	userID := uuid.New()

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:   userID,
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(100),
		Category: "food",
		Date:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	for i := 0; i < 2; i++ {
		r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/predictions?userId=%s", userID), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}

	var count int64
	err := models.DB.Model(&models.SpendingPrediction{}).Where("user_id = ?", userID).Count(&count).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(2), count)
}

func (suite *TestSuiteStandard) TestPredictionsEmptyHistory() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/predictions?userId=%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PredictionsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestInsights() {
	userID := uuid.New()

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:   userID,
		Type:     models.TransactionTypeIncome,
		Amount:   decimal.NewFromInt(50000),
		Category: "salary",
		Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:   userID,
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(30000),
		Category: "rent",
		Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:   userID,
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(10000),
		Category: "food",
		Date:     time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/insights?userId=%s", userID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InsightsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Trend is ordered oldest first
	assert.Len(suite.T(), response.Data.Trend, 2)
	assert.True(suite.T(), types.NewMonth(2024, 1).Equal(response.Data.Trend[0].Month))
	assert.True(suite.T(), decimal.NewFromInt(20000).Equal(response.Data.Trend[0].Savings))
	assert.True(suite.T(), types.NewMonth(2024, 2).Equal(response.Data.Trend[1].Month))

	assert.True(suite.T(), decimal.NewFromInt(25000).Equal(response.Data.AverageIncome), "average income is %s", response.Data.AverageIncome)
	assert.True(suite.T(), decimal.NewFromInt(20000).Equal(response.Data.AverageExpense), "average expense is %s", response.Data.AverageExpense)

	// Top categories are sorted by amount
	assert.Len(suite.T(), response.Data.TopCategories, 2)
	assert.Equal(suite.T(), "rent", response.Data.TopCategories[0].Category)
	assert.Equal(suite.T(), "food", response.Data.TopCategories[1].Category)
}

func (suite *TestSuiteStandard) TestInsightsTopCategoriesCapped() {
	userID := uuid.New()

	for i, category := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		_ = createTestTransaction(suite.T(), v1.TransactionEditable{
			UserID:   userID,
			Type:     models.TransactionTypeExpense,
			Amount:   decimal.NewFromInt(int64(100 * (i + 1))),
			Category: category,
			Date:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		})
	}

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/insights?userId=%s", userID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InsightsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data.TopCategories, 5)
	assert.Equal(suite.T(), "g", response.Data.TopCategories[0].Category)
}

func (suite *TestSuiteStandard) TestInsightsEmpty() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/insights?userId=%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InsightsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Empty(suite.T(), response.Data.Trend)
	assert.True(suite.T(), response.Data.AverageIncome.IsZero())
	assert.Empty(suite.T(), response.Data.TopCategories)
}

func (suite *TestSuiteStandard) TestAnalyticsOptions() {
	paths := []string{
		"http://example.com/v1/analytics/health-score",
		"http://example.com/v1/analytics/predictions",
		"http://example.com/v1/analytics/insights",
	}

	for _, path := range paths {
		r := test.Request(suite.T(), http.MethodOptions, path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	}
}
