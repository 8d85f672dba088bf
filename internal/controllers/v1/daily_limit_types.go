package v1

import (
	"fmt"

	"github.com/chandran2006/saveup-backend/internal/models"
	su_uuid "github.com/chandran2006/saveup-backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DailyLimitEditable struct {
	UserID      uuid.UUID       `json:"userId" example:"d27b71b1-f9a7-44b5-bcad-aa2f4f7c05c9"`           // ID of the user owning the limit
	LimitAmount decimal.Decimal `json:"limitAmount" example:"500" minimum:"0.00000001" multipleOf:"0.00000001"` // The per-day spending ceiling
	Active      bool            `json:"active" example:"true" default:"false"`                           // Is this limit currently enforced?
}

// model returns the database resource for the API representation of the editable fields
func (editable DailyLimitEditable) model() models.DailyLimit {
	return models.DailyLimit{
		UserID:      editable.UserID,
		LimitAmount: editable.LimitAmount,
		Active:      editable.Active,
	}
}

type DailyLimitLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/daily-limits/d430d7c3-d14c-4712-9336-ee56965a6673"` // The daily limit itself
}

// DailyLimit is the API representation of a DailyLimit.
type DailyLimit struct {
	models.DefaultModel
	DailyLimitEditable
	Links DailyLimitLinks `json:"links"`
}

// newDailyLimit returns the API representation of the resource
func newDailyLimit(c *gin.Context, model models.DailyLimit) DailyLimit {
	url := c.GetString(string(models.DBContextURL))

	return DailyLimit{
		DefaultModel: model.DefaultModel,
		DailyLimitEditable: DailyLimitEditable{
			UserID:      model.UserID,
			LimitAmount: model.LimitAmount,
			Active:      model.Active,
		},
		Links: DailyLimitLinks{
			Self: fmt.Sprintf("%s/v1/daily-limits/%s", url, model.ID),
		},
	}
}

type DailyLimitListResponse struct {
	Data       []DailyLimit `json:"data"`                                                          // List of daily limits
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type DailyLimitCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []DailyLimitResponse `json:"data"`                                                          // List of created DailyLimits
}

func (d *DailyLimitCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	d.Data = append(d.Data, DailyLimitResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DailyLimitResponse struct {
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this daily limit
	Data  *DailyLimit `json:"data"`                                                          // The DailyLimit data, if creation was successful
}

type DailyLimitQueryFilter struct {
	UserID su_uuid.UUID `form:"userId"`                     // ID of the user
	Active bool         `form:"active"`                     // Filter by active status
	Offset uint         `form:"offset" filterField:"false"` // The offset of the first DailyLimit returned. Defaults to 0.
	Limit  int          `form:"limit" filterField:"false"`  // Maximum number of DailyLimits to return. Defaults to 50.
}

func (f DailyLimitQueryFilter) model() (models.DailyLimit, error) {
	return DailyLimitEditable{
		UserID: f.UserID.UUID,
		Active: f.Active,
	}.model(), nil
}
