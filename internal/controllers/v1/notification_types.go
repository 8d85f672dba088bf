package v1

import (
	"fmt"

	"github.com/chandran2006/saveup-backend/internal/models"
	su_uuid "github.com/chandran2006/saveup-backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationEditable struct {
	UserID  uuid.UUID `json:"userId" example:"d27b71b1-f9a7-44b5-bcad-aa2f4f7c05c9"` // ID of the user the notification is for
	Type    string    `json:"type" example:"budget_exceeded" default:""`             // Kind of notification
	Title   string    `json:"title" example:"Budget Exceeded" default:""`            // Short headline
	Message string    `json:"message" example:"You have exceeded your monthly budget" default:""` // Full notification text
	Read    bool      `json:"read" example:"false" default:"false"`                  // Has the user seen this notification?
}

// model returns the database resource for the API representation of the editable fields
func (editable NotificationEditable) model() models.Notification {
	return models.Notification{
		UserID:  editable.UserID,
		Type:    editable.Type,
		Title:   editable.Title,
		Message: editable.Message,
		Read:    editable.Read,
	}
}

type NotificationLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/notifications/d430d7c3-d14c-4712-9336-ee56965a6673"` // The notification itself
}

// Notification is the API representation of a Notification.
type Notification struct {
	models.DefaultModel
	NotificationEditable
	Links NotificationLinks `json:"links"`
}

// newNotification returns the API representation of the resource
func newNotification(c *gin.Context, model models.Notification) Notification {
	url := c.GetString(string(models.DBContextURL))

	return Notification{
		DefaultModel: model.DefaultModel,
		NotificationEditable: NotificationEditable{
			UserID:  model.UserID,
			Type:    model.Type,
			Title:   model.Title,
			Message: model.Message,
			Read:    model.Read,
		},
		Links: NotificationLinks{
			Self: fmt.Sprintf("%s/v1/notifications/%s", url, model.ID),
		},
	}
}

type NotificationListResponse struct {
	Data       []Notification `json:"data"`                                                          // List of notifications
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type NotificationCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []NotificationResponse `json:"data"`                                                          // List of created Notifications
}

func (n *NotificationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	n.Data = append(n.Data, NotificationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type NotificationResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this notification
	Data  *Notification `json:"data"`                                                          // The Notification data, if creation was successful
}

type NotificationQueryFilter struct {
	UserID su_uuid.UUID `form:"userId"`                     // ID of the user
	Type   string       `form:"type"`                       // Kind of notification
	Read   bool         `form:"read"`                       // Filter by read status
	Offset uint         `form:"offset" filterField:"false"` // The offset of the first Notification returned. Defaults to 0.
	Limit  int          `form:"limit" filterField:"false"`  // Maximum number of Notifications to return. Defaults to 50.
}

func (f NotificationQueryFilter) model() (models.Notification, error) {
	return NotificationEditable{
		UserID: f.UserID.UUID,
		Type:   f.Type,
		Read:   f.Read,
	}.model(), nil
}
