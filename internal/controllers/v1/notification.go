package v1

import (
	"net/http"

	"golang.org/x/exp/slices"

	"github.com/chandran2006/saveup-backend/internal/httputil"
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterNotificationRoutes registers the routes for notifications with
// the RouterGroup that is passed.
func RegisterNotificationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsNotificationList)
		r.GET("", GetNotifications)
		r.POST("", CreateNotifications)
	}

	// Notification with ID
	{
		r.OPTIONS("/:id", OptionsNotificationDetail)
		r.GET("/:id", GetNotification)
		r.PATCH("/:id", UpdateNotification)
		r.DELETE("/:id", DeleteNotification)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/v1/notifications [options]
func OptionsNotificationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notifications/{id} [options]
func OptionsNotificationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Notification{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create notifications
// @Description	Creates notifications from the list of submitted notification data. The response code is the highest response code number that a single notification creation would have caused.
// @Tags			Notifications
// @Produce		json
// @Success		201				{object}	NotificationCreateResponse
// @Failure		400				{object}	NotificationCreateResponse
// @Failure		500				{object}	NotificationCreateResponse
// @Param			notifications	body		[]NotificationEditable	true	"Notifications"
// @Router			/v1/notifications [post]
func CreateNotifications(c *gin.Context) {
	var editables []NotificationEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := NotificationCreateResponse{}

	for _, editable := range editables {
		notification := editable.model()

		// Create the resource
		err = models.DB.Create(&notification).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newNotification(c, notification)
		r.Data = append(r.Data, NotificationResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get notifications
// @Description	Returns a list of notifications, newest first
// @Tags			Notifications
// @Produce		json
// @Success		200		{object}	NotificationListResponse
// @Failure		400		{object}	NotificationListResponse
// @Failure		500		{object}	NotificationListResponse
// @Param			userId	query		string	false	"Filter by user ID"
// @Param			type	query		string	false	"Filter by notification type"
// @Param			read	query		bool	false	"Filter by read status"
// @Param			offset	query		uint	false	"The offset of the first Notification returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of Notifications to return. Defaults to 50."
// @Router			/v1/notifications [get]
func GetNotifications(c *gin.Context) {
	var filter NotificationQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, NotificationListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationListResponse{Error: &e})
		return
	}

	q := models.DB.
		Order("datetime(notifications.created_at) DESC").
		Where(&model, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 notifications and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var notifications []models.Notification
	err = q.Find(&notifications).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Notification, 0)
	for _, notification := range notifications {
		data = append(data, newNotification(c, notification))
	}

	c.JSON(http.StatusOK, NotificationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get notification
// @Description	Returns a specific notification
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	NotificationResponse
// @Failure		400	{object}	NotificationResponse
// @Failure		404	{object}	NotificationResponse
// @Failure		500	{object}	NotificationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notifications/{id} [get]
func GetNotification(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &e,
		})
		return
	}

	var notification models.Notification
	err = models.DB.First(&notification, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{Error: &s})
		return
	}
	data := newNotification(c, notification)

	c.JSON(http.StatusOK, NotificationResponse{
		Data: &data,
	})
}

// @Summary		Update notification
// @Description	Updates an existing notification, commonly to mark it as read. Only values to be updated need to be specified.
// @Tags			Notifications
// @Accept			json
// @Produce		json
// @Success		200				{object}	NotificationResponse
// @Failure		400				{object}	NotificationResponse
// @Failure		404				{object}	NotificationResponse
// @Failure		500				{object}	NotificationResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			notification	body		NotificationEditable	true	"Notification"
// @Router			/v1/notifications/{id} [patch]
func UpdateNotification(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &e,
		})
		return
	}

	var notification models.Notification
	err = models.DB.First(&notification, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, NotificationEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &e,
		})
		return
	}

	var data NotificationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&notification).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newNotification(c, notification)
	c.JSON(http.StatusOK, NotificationResponse{
		Data: &apiResource,
	})
}

// @Summary		Delete notification
// @Description	Deletes a notification
// @Tags			Notifications
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notifications/{id} [delete]
func DeleteNotification(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var notification models.Notification
	err = models.DB.First(&notification, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&notification).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}
