package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/chandran2006/saveup-backend/internal/controllers/v1"
	"github.com/chandran2006/saveup-backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createTestDailyLimit creates a test daily limit via the v1 API.
func createTestDailyLimit(t *testing.T, limit v1.DailyLimitEditable, expectedStatus ...int) v1.DailyLimitResponse {
	if limit.UserID == uuid.Nil {
		limit.UserID = uuid.New()
	}

	if limit.LimitAmount.IsZero() {
		limit.LimitAmount = decimal.NewFromInt(500)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	reqBody := []v1.DailyLimitEditable{limit}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/daily-limits", reqBody)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var dr v1.DailyLimitCreateResponse
	test.DecodeResponse(t, &r, &dr)

	return dr.Data[0]
}

func (suite *TestSuiteStandard) TestDailyLimitsCreate() {
	limit := createTestDailyLimit(suite.T(), v1.DailyLimitEditable{
		LimitAmount: decimal.NewFromInt(750),
		Active:      true,
	})

	assert.NotEqual(suite.T(), uuid.Nil, limit.Data.ID)
	assert.True(suite.T(), decimal.NewFromInt(750).Equal(limit.Data.LimitAmount))
	assert.True(suite.T(), limit.Data.Active)
}

func (suite *TestSuiteStandard) TestDailyLimitsCreateErrors() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/daily-limits", []v1.DailyLimitEditable{{
		UserID:      uuid.New(),
		LimitAmount: decimal.Zero,
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDailyLimitsGetFiltered() {
	userID := uuid.New()

	_ = createTestDailyLimit(suite.T(), v1.DailyLimitEditable{UserID: userID, Active: true})
	_ = createTestDailyLimit(suite.T(), v1.DailyLimitEditable{UserID: userID, Active: false})
	_ = createTestDailyLimit(suite.T(), v1.DailyLimitEditable{Active: true})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"user filter", fmt.Sprintf("userId=%s", userID), 2},
		{"active filter", fmt.Sprintf("userId=%s&active=true", userID), 1},
		{"inactive filter", fmt.Sprintf("userId=%s&active=false", userID), 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/daily-limits?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.DailyLimitListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestDailyLimitsUpdate() {
	limit := createTestDailyLimit(suite.T(), v1.DailyLimitEditable{Active: true})

	r := test.Request(suite.T(), http.MethodPatch, limit.Data.Links.Self, map[string]any{
		"limitAmount": 1000,
		"active":      false,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.DailyLimitResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.True(suite.T(), decimal.NewFromInt(1000).Equal(updated.Data.LimitAmount))
	assert.False(suite.T(), updated.Data.Active)
}

func (suite *TestSuiteStandard) TestDailyLimitsDelete() {
	limit := createTestDailyLimit(suite.T(), v1.DailyLimitEditable{})

	r := test.Request(suite.T(), http.MethodDelete, limit.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, limit.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
