package v1_test

import (
	"net/http"

	v1 "github.com/chandran2006/saveup-backend/internal/controllers/v1"
	"github.com/chandran2006/saveup-backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "http://example.com/v1/transactions", response.Links.Transactions)
	assert.Equal(suite.T(), "http://example.com/v1/budgets", response.Links.Budgets)
	assert.Equal(suite.T(), "http://example.com/v1/notifications", response.Links.Notifications)
	assert.Equal(suite.T(), "http://example.com/v1/daily-limits", response.Links.DailyLimits)
	assert.Equal(suite.T(), "http://example.com/v1/match-rules", response.Links.MatchRules)
	assert.Equal(suite.T(), "http://example.com/v1/analytics/health-score", response.Links.HealthScore)
	assert.Equal(suite.T(), "http://example.com/v1/analytics/predictions", response.Links.Predictions)
	assert.Equal(suite.T(), "http://example.com/v1/analytics/insights", response.Links.Insights)
	assert.Equal(suite.T(), "http://example.com/v1/alerts/check", response.Links.Alerts)
}

func (suite *TestSuiteStandard) TestOptionsRoot() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}
