package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/chandran2006/saveup-backend/internal/controllers/v1"
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/chandran2006/saveup-backend/internal/types"
	"github.com/chandran2006/saveup-backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkAlerts POSTs an alert check for the user and returns the created notifications.
func checkAlerts(suite *TestSuiteStandard, userID uuid.UUID) v1.AlertCheckResponse {
	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/alerts/check?userId=%s", userID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AlertCheckResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestAlertCheckErrors() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/alerts/check", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.AlertCheckResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "the userId parameter must be set", *response.Error)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/alerts/check?userId=NotAUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAlertCheckNothingFires() {
	response := checkAlerts(suite, uuid.New())
	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestAlertCheckBudgetExceeded() {
	userID := uuid.New()
	month := types.MonthOf(time.Now().In(time.UTC))

	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		UserID: userID,
		Month:  month,
		Amount: decimal.NewFromInt(10000),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: userID,
		Type:   models.TransactionTypeExpense,
		Amount: decimal.NewFromInt(12500),
		Date:   time.Now().In(time.UTC),
	})

	response := checkAlerts(suite, userID)
	require.Len(suite.T(), response.Data, 1)

	notification := response.Data[0]
	assert.Equal(suite.T(), models.NotificationTypeBudgetExceeded, notification.Type)
	assert.Equal(suite.T(), "Budget Exceeded", notification.Title)
	assert.Contains(suite.T(), notification.Message, "₹2,500")
	assert.False(suite.T(), notification.Read)
}

// TestAlertCheckBudgetExceededDeduplicates verifies that the budget check
// stays silent while an unread budget notification exists and fires again
// once that notification is read.
func (suite *TestSuiteStandard) TestAlertCheckBudgetExceededDeduplicates() {
	userID := uuid.New()
	month := types.MonthOf(time.Now().In(time.UTC))

	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		UserID: userID,
		Month:  month,
		Amount: decimal.NewFromInt(10000),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: userID,
		Type:   models.TransactionTypeExpense,
		Amount: decimal.NewFromInt(15000),
		Date:   time.Now().In(time.UTC),
	})

	first := checkAlerts(suite, userID)
	require.Len(suite.T(), first.Data, 1)

	second := checkAlerts(suite, userID)
	assert.Empty(suite.T(), second.Data)

	// Reading the notification re-arms the check
	r := test.Request(suite.T(), http.MethodPatch, first.Data[0].Links.Self, map[string]any{"read": true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	third := checkAlerts(suite, userID)
	assert.Len(suite.T(), third.Data, 1)
}

func (suite *TestSuiteStandard) TestAlertCheckBudgetNotExceeded() {
	userID := uuid.New()
	month := types.MonthOf(time.Now().In(time.UTC))

	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		UserID: userID,
		Month:  month,
		Amount: decimal.NewFromInt(10000),
	})

	// Spending exactly the budget is not an overrun
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: userID,
		Type:   models.TransactionTypeExpense,
		Amount: decimal.NewFromInt(10000),
		Date:   time.Now().In(time.UTC),
	})

	response := checkAlerts(suite, userID)
	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestAlertCheckDailyLimit() {
	userID := uuid.New()

	_ = createTestDailyLimit(suite.T(), v1.DailyLimitEditable{
		UserID:      userID,
		LimitAmount: decimal.NewFromInt(500),
		Active:      true,
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: userID,
		Type:   models.TransactionTypeExpense,
		Amount: decimal.NewFromInt(400),
		Date:   time.Now().In(time.UTC),
	})

	response := checkAlerts(suite, userID)
	require.Len(suite.T(), response.Data, 1)

	notification := response.Data[0]
	assert.Equal(suite.T(), models.NotificationTypeDailyLimit, notification.Type)
	assert.Equal(suite.T(), "Daily Limit Alert", notification.Title)
	assert.Contains(suite.T(), notification.Message, "₹400")
	assert.Contains(suite.T(), notification.Message, "₹500 daily limit")
}

// The daily limit alert is informational and fires on every check.
func (suite *TestSuiteStandard) TestAlertCheckDailyLimitRepeats() {
	userID := uuid.New()

	_ = createTestDailyLimit(suite.T(), v1.DailyLimitEditable{
		UserID:      userID,
		LimitAmount: decimal.NewFromInt(500),
		Active:      true,
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: userID,
		Type:   models.TransactionTypeExpense,
		Amount: decimal.NewFromInt(600),
		Date:   time.Now().In(time.UTC),
	})

	for i := 0; i < 2; i++ {
		response := checkAlerts(suite, userID)
		assert.Len(suite.T(), response.Data, 1)
	}

	var count int64
	err := models.DB.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", userID, models.NotificationTypeDailyLimit).
		Count(&count).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(2), count)
}

func (suite *TestSuiteStandard) TestAlertCheckDailyLimitBelowThreshold() {
	userID := uuid.New()

	_ = createTestDailyLimit(suite.T(), v1.DailyLimitEditable{
		UserID:      userID,
		LimitAmount: decimal.NewFromInt(500),
		Active:      true,
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: userID,
		Type:   models.TransactionTypeExpense,
		Amount: decimal.RequireFromString("399.99"),
		Date:   time.Now().In(time.UTC),
	})

	response := checkAlerts(suite, userID)
	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestAlertCheckDailyLimitInactive() {
	userID := uuid.New()

	_ = createTestDailyLimit(suite.T(), v1.DailyLimitEditable{
		UserID:      userID,
		LimitAmount: decimal.NewFromInt(500),
		Active:      false,
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: userID,
		Type:   models.TransactionTypeExpense,
		Amount: decimal.NewFromInt(600),
		Date:   time.Now().In(time.UTC),
	})

	response := checkAlerts(suite, userID)
	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestAlertCheckOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/alerts/check", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}
