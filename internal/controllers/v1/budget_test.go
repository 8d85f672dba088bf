package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/chandran2006/saveup-backend/internal/controllers/v1"
	"github.com/chandran2006/saveup-backend/internal/types"
	"github.com/chandran2006/saveup-backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createTestBudget creates a test budget via the v1 API.
func createTestBudget(t *testing.T, budget v1.BudgetEditable, expectedStatus ...int) v1.BudgetResponse {
	if budget.UserID == uuid.Nil {
		budget.UserID = uuid.New()
	}

	if budget.Month.IsZero() {
		budget.Month = types.NewMonth(2024, 1)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	reqBody := []v1.BudgetEditable{budget}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", reqBody)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var br v1.BudgetCreateResponse
	test.DecodeResponse(t, &r, &br)

	return br.Data[0]
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		Amount: decimal.NewFromInt(35000),
	})

	assert.NotEqual(suite.T(), uuid.Nil, budget.Data.ID)
	assert.True(suite.T(), decimal.NewFromInt(35000).Equal(budget.Data.Amount))
	assert.Contains(suite.T(), budget.Data.Links.Self, fmt.Sprintf("/v1/budgets/%s", budget.Data.ID))
}

// TestBudgetsCreateIsUpsert verifies that creating a budget for a month that
// already has one overwrites the existing budget instead of duplicating it.
func (suite *TestSuiteStandard) TestBudgetsCreateIsUpsert() {
	userID := uuid.New()

	first := createTestBudget(suite.T(), v1.BudgetEditable{
		UserID: userID,
		Month:  types.NewMonth(2024, 1),
		Amount: decimal.NewFromInt(35000),
	})

	second := createTestBudget(suite.T(), v1.BudgetEditable{
		UserID: userID,
		Month:  types.NewMonth(2024, 1),
		Amount: decimal.NewFromInt(40000),
	})

	assert.Equal(suite.T(), first.Data.ID, second.Data.ID)
	assert.True(suite.T(), decimal.NewFromInt(40000).Equal(second.Data.Amount))

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?userId=%s", userID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestBudgetsCreateErrors() {
	tests := []struct {
		name   string
		status int
		body   any
	}{
		{"Broken JSON", http.StatusBadRequest, `{ "amount": 100`},
		{"No body", http.StatusBadRequest, ""},
		{"Zero amount", http.StatusBadRequest, []v1.BudgetEditable{{
			UserID: uuid.New(),
			Month:  types.NewMonth(2024, 1),
			Amount: decimal.Zero,
		}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetFiltered() {
	userID := uuid.New()

	_ = createTestBudget(suite.T(), v1.BudgetEditable{UserID: userID, Month: types.NewMonth(2024, 1), Amount: decimal.NewFromInt(35000)})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{UserID: userID, Month: types.NewMonth(2024, 2), Amount: decimal.NewFromInt(40000)})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Month: types.NewMonth(2024, 1), Amount: decimal.NewFromInt(10000)})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"user filter", fmt.Sprintf("userId=%s", userID), 2},
		{"month filter", fmt.Sprintf("userId=%s&month=2024-01", userID), 1},
		{"no match", fmt.Sprintf("userId=%s&month=2030-01", userID), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Amount: decimal.NewFromInt(35000)})

	r := test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, map[string]any{
		"amount": 42000,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.True(suite.T(), decimal.NewFromInt(42000).Equal(updated.Data.Amount))
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Amount: decimal.NewFromInt(35000)})

	r := test.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestBudgetsRecreateAfterDelete verifies that a budget can be set again
// for a month whose budget was deleted.
func (suite *TestSuiteStandard) TestBudgetsRecreateAfterDelete() {
	userID := uuid.New()

	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		UserID: userID,
		Month:  types.NewMonth(2024, 1),
		Amount: decimal.NewFromInt(35000),
	})

	r := test.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	recreated := createTestBudget(suite.T(), v1.BudgetEditable{
		UserID: userID,
		Month:  types.NewMonth(2024, 1),
		Amount: decimal.NewFromInt(40000),
	})

	assert.NotEqual(suite.T(), uuid.Nil, recreated.Data.ID)
	assert.True(suite.T(), decimal.NewFromInt(40000).Equal(recreated.Data.Amount), "returned amount is %s", recreated.Data.Amount)

	r = test.Request(suite.T(), http.MethodGet, recreated.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), decimal.NewFromInt(40000).Equal(response.Data.Amount))
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Amount: decimal.NewFromInt(35000)})

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}
