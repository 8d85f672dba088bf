package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types produced by the alert checks.
const (
	NotificationTypeBudgetExceeded = "budget_exceeded"
	NotificationTypeDailyLimit     = "daily_limit"
)

// Notification is a message shown to the user in the notification bell.
type Notification struct {
	DefaultModel
	UserID  uuid.UUID `gorm:"index"`
	Type    string
	Title   string
	Message string
	Read    bool
}

func (n *Notification) BeforeSave(_ *gorm.DB) error {
	n.Title = strings.TrimSpace(n.Title)
	n.Message = strings.TrimSpace(n.Message)

	return nil
}

// HasUnread reports whether the user already has an unread notification
// of the given type. Used to not pile up identical alerts.
func HasUnread(db *gorm.DB, userID uuid.UUID, notificationType string) (bool, error) {
	var count int64
	err := db.Model(&Notification{}).
		Where(&Notification{UserID: userID, Type: notificationType}).
		Where("read = ?", false).
		Count(&count).Error

	return count > 0, err
}
