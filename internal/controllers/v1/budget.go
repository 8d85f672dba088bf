package v1

import (
	"net/http"

	"golang.org/x/exp/slices"

	"github.com/chandran2006/saveup-backend/internal/httputil"
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudgets)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Budget{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create budgets
// @Description	Creates budgets from the list of submitted budget data. A budget that already exists for the same user and month is overwritten instead of duplicated. The response code is the highest response code number that a single budget creation would have caused.
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			budgets	body		[]BudgetEditable	true	"Budgets"
// @Router			/v1/budgets [post]
func CreateBudgets(c *gin.Context) {
	var editables []BudgetEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetCreateResponse{}

	for _, editable := range editables {
		budget := editable.model()

		// There is at most one budget per user and month, so
		// creating is always an upsert
		err = budget.Upsert(models.DB)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudget(c, budget)
		r.Data = append(r.Data, BudgetResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get budgets
// @Description	Returns a list of budgets
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetListResponse
// @Failure		400		{object}	BudgetListResponse
// @Failure		500		{object}	BudgetListResponse
// @Param			userId	query		string	false	"Filter by user ID"
// @Param			month	query		string	false	"Filter by month, formatted as YYYY-MM"
// @Param			offset	query		uint	false	"The offset of the first Budget returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of Budgets to return. Defaults to 50."
// @Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
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
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	q := models.DB.
		Order("datetime(budgets.month) DESC").
		Where(&model, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 budgets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var budgets []models.Budget
	err = q.Find(&budgets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Budget, 0)
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}
	data := newBudget(c, budget)

	c.JSON(http.StatusOK, BudgetResponse{
		Data: &data,
	})
}

// @Summary		Update budget
// @Description	Updates an existing budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	var data BudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&budget).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{
		Data: &apiResource,
	})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}
