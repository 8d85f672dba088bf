package v1

import (
	"net/http"

	"golang.org/x/exp/slices"

	"github.com/chandran2006/saveup-backend/internal/httputil"
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterDailyLimitRoutes registers the routes for daily limits with
// the RouterGroup that is passed.
func RegisterDailyLimitRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDailyLimitList)
		r.GET("", GetDailyLimits)
		r.POST("", CreateDailyLimits)
	}

	// DailyLimit with ID
	{
		r.OPTIONS("/:id", OptionsDailyLimitDetail)
		r.GET("/:id", GetDailyLimit)
		r.PATCH("/:id", UpdateDailyLimit)
		r.DELETE("/:id", DeleteDailyLimit)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			DailyLimits
// @Success		204
// @Router			/v1/daily-limits [options]
func OptionsDailyLimitList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			DailyLimits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/daily-limits/{id} [options]
func OptionsDailyLimitDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.DailyLimit{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create daily limits
// @Description	Creates daily limits from the list of submitted daily limit data. The response code is the highest response code number that a single daily limit creation would have caused.
// @Tags			DailyLimits
// @Produce		json
// @Success		201			{object}	DailyLimitCreateResponse
// @Failure		400			{object}	DailyLimitCreateResponse
// @Failure		500			{object}	DailyLimitCreateResponse
// @Param			dailyLimits	body		[]DailyLimitEditable	true	"DailyLimits"
// @Router			/v1/daily-limits [post]
func CreateDailyLimits(c *gin.Context) {
	var editables []DailyLimitEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyLimitCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DailyLimitCreateResponse{}

	for _, editable := range editables {
		limit := editable.model()

		// Create the resource
		err = models.DB.Create(&limit).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newDailyLimit(c, limit)
		r.Data = append(r.Data, DailyLimitResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get daily limits
// @Description	Returns a list of daily limits
// @Tags			DailyLimits
// @Produce		json
// @Success		200		{object}	DailyLimitListResponse
// @Failure		400		{object}	DailyLimitListResponse
// @Failure		500		{object}	DailyLimitListResponse
// @Param			userId	query		string	false	"Filter by user ID"
// @Param			active	query		bool	false	"Filter by active status"
// @Param			offset	query		uint	false	"The offset of the first DailyLimit returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of DailyLimits to return. Defaults to 50."
// @Router			/v1/daily-limits [get]
func GetDailyLimits(c *gin.Context) {
	var filter DailyLimitQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DailyLimitListResponse{
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
		c.JSON(status(err), DailyLimitListResponse{Error: &e})
		return
	}

	q := models.DB.
		Order("datetime(daily_limits.created_at) DESC").
		Where(&model, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 daily limits and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var limits []models.DailyLimit
	err = q.Find(&limits).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyLimitListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyLimitListResponse{
			Error: &e,
		})
		return
	}

	data := make([]DailyLimit, 0)
	for _, l := range limits {
		data = append(data, newDailyLimit(c, l))
	}

	c.JSON(http.StatusOK, DailyLimitListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get daily limit
// @Description	Returns a specific daily limit
// @Tags			DailyLimits
// @Produce		json
// @Success		200	{object}	DailyLimitResponse
// @Failure		400	{object}	DailyLimitResponse
// @Failure		404	{object}	DailyLimitResponse
// @Failure		500	{object}	DailyLimitResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/daily-limits/{id} [get]
func GetDailyLimit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyLimitResponse{
			Error: &e,
		})
		return
	}

	var limit models.DailyLimit
	err = models.DB.First(&limit, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DailyLimitResponse{Error: &s})
		return
	}
	data := newDailyLimit(c, limit)

	c.JSON(http.StatusOK, DailyLimitResponse{
		Data: &data,
	})
}

// @Summary		Update daily limit
// @Description	Updates an existing daily limit. Only values to be updated need to be specified.
// @Tags			DailyLimits
// @Accept			json
// @Produce		json
// @Success		200			{object}	DailyLimitResponse
// @Failure		400			{object}	DailyLimitResponse
// @Failure		404			{object}	DailyLimitResponse
// @Failure		500			{object}	DailyLimitResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			dailyLimit	body		DailyLimitEditable	true	"DailyLimit"
// @Router			/v1/daily-limits/{id} [patch]
func UpdateDailyLimit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyLimitResponse{
			Error: &e,
		})
		return
	}

	var limit models.DailyLimit
	err = models.DB.First(&limit, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyLimitResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DailyLimitEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyLimitResponse{
			Error: &e,
		})
		return
	}

	var data DailyLimitEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyLimitResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&limit).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyLimitResponse{
			Error: &e,
		})
		return
	}

	apiResource := newDailyLimit(c, limit)
	c.JSON(http.StatusOK, DailyLimitResponse{
		Data: &apiResource,
	})
}

// @Summary		Delete daily limit
// @Description	Deletes a daily limit
// @Tags			DailyLimits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/daily-limits/{id} [delete]
func DeleteDailyLimit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var limit models.DailyLimit
	err = models.DB.First(&limit, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&limit).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}
