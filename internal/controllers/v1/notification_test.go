package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/chandran2006/saveup-backend/internal/controllers/v1"
	"github.com/chandran2006/saveup-backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// createTestNotification creates a test notification via the v1 API.
func createTestNotification(t *testing.T, notification v1.NotificationEditable, expectedStatus ...int) v1.NotificationResponse {
	if notification.UserID == uuid.Nil {
		notification.UserID = uuid.New()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	reqBody := []v1.NotificationEditable{notification}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/notifications", reqBody)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var nr v1.NotificationCreateResponse
	test.DecodeResponse(t, &r, &nr)

	return nr.Data[0]
}

func (suite *TestSuiteStandard) TestNotificationsCreate() {
	notification := createTestNotification(suite.T(), v1.NotificationEditable{
		Type:    "budget_exceeded",
		Title:   "Budget Exceeded",
		Message: "You have exceeded your monthly budget by ₹1,500. Consider reviewing your expenses.",
	})

	assert.NotEqual(suite.T(), uuid.Nil, notification.Data.ID)
	assert.Equal(suite.T(), "Budget Exceeded", notification.Data.Title)
	assert.False(suite.T(), notification.Data.Read, "new notifications must be unread")
}

func (suite *TestSuiteStandard) TestNotificationsGetFiltered() {
	userID := uuid.New()

	unread := createTestNotification(suite.T(), v1.NotificationEditable{UserID: userID, Type: "budget_exceeded", Title: "Budget Exceeded"})
	_ = createTestNotification(suite.T(), v1.NotificationEditable{UserID: userID, Type: "daily_limit", Title: "Daily Limit Alert"})
	_ = createTestNotification(suite.T(), v1.NotificationEditable{Type: "budget_exceeded", Title: "Budget Exceeded"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"user filter", fmt.Sprintf("userId=%s", userID), 2},
		{"type filter", fmt.Sprintf("userId=%s&type=daily_limit", userID), 1},
		{"unread filter", fmt.Sprintf("userId=%s&read=false", userID), 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/notifications?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.NotificationListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count)
		})
	}

	// Marking one notification as read narrows the unread filter
	r := test.Request(suite.T(), http.MethodPatch, unread.Data.Links.Self, map[string]any{"read": true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/notifications?userId=%s&read=false", userID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.NotificationListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestNotificationsMarkRead() {
	notification := createTestNotification(suite.T(), v1.NotificationEditable{Title: "Daily Limit Alert"})

	r := test.Request(suite.T(), http.MethodPatch, notification.Data.Links.Self, map[string]any{"read": true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.NotificationResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.True(suite.T(), updated.Data.Read)
	assert.Equal(suite.T(), "Daily Limit Alert", updated.Data.Title, "fields not in the request must stay untouched")
}

func (suite *TestSuiteStandard) TestNotificationsDelete() {
	notification := createTestNotification(suite.T(), v1.NotificationEditable{Title: "Budget Exceeded"})

	r := test.Request(suite.T(), http.MethodDelete, notification.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, notification.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
