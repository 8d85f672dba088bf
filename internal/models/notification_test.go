package models_test

import (
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestNotificationTrimsWhitespace() {
	notification := suite.createTestNotification(models.Notification{
		UserID:  uuid.New(),
		Type:    models.NotificationTypeBudgetExceeded,
		Title:   " Budget Exceeded ",
		Message: "You have exceeded your monthly budget\n",
	})

	assert.Equal(suite.T(), "Budget Exceeded", notification.Title)
	assert.Equal(suite.T(), "You have exceeded your monthly budget", notification.Message)
}

func (suite *TestSuiteStandard) TestHasUnread() {
	userID := uuid.New()

	unread, err := models.HasUnread(models.DB, userID, models.NotificationTypeBudgetExceeded)
	assert.Nil(suite.T(), err)
	assert.False(suite.T(), unread)

	notification := suite.createTestNotification(models.Notification{
		UserID: userID,
		Type:   models.NotificationTypeBudgetExceeded,
		Title:  "Budget Exceeded",
	})

	unread, err = models.HasUnread(models.DB, userID, models.NotificationTypeBudgetExceeded)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), unread)

	// Other notification types are not affected
	unread, err = models.HasUnread(models.DB, userID, models.NotificationTypeDailyLimit)
	assert.Nil(suite.T(), err)
	assert.False(suite.T(), unread)

	// Other users are not affected
	unread, err = models.HasUnread(models.DB, uuid.New(), models.NotificationTypeBudgetExceeded)
	assert.Nil(suite.T(), err)
	assert.False(suite.T(), unread)

	// Marking the notification as read resets the check
	err = models.DB.Model(&notification).Select("Read").Updates(models.Notification{Read: true}).Error
	assert.Nil(suite.T(), err)

	unread, err = models.HasUnread(models.DB, userID, models.NotificationTypeBudgetExceeded)
	assert.Nil(suite.T(), err)
	assert.False(suite.T(), unread)
}
